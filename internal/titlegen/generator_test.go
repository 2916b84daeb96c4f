package titlegen

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoldfed/obsidian-title-generator/internal/config"
	"github.com/jgoldfed/obsidian-title-generator/internal/ui"
	"github.com/jgoldfed/obsidian-title-generator/internal/vault"
)

// fakeCompleter scripts responses per call, in order.
type fakeCompleter struct {
	mu        sync.Mutex
	calls     int
	responses []string
	errs      []error
	delay     time.Duration

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (f *fakeCompleter) ChatCompletion(ctx context.Context, system, user string, maxTokens int) (string, error) {
	n := f.inFlight.Add(1)
	for {
		cur := f.maxInFlight.Load()
		if n <= cur || f.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	defer f.inFlight.Add(-1)

	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	f.calls++
	var resp string
	var err error
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return resp, err
}

func writeNote(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestGenerator(client Completer, settings *config.Settings) (*Generator, *bytes.Buffer) {
	if settings == nil {
		settings = config.Default()
	}
	var buf bytes.Buffer
	return New(client, settings, &ui.Notifier{Out: &buf}), &buf
}

func TestGenerateTitleRenamesDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeNote(t, dir, "draft.md", "some note content")

	gen, _ := newTestGenerator(&fakeCompleter{responses: []string{`"My New Title"`}}, nil)
	doc := &vault.Document{Path: path}

	newPath, err := gen.GenerateTitle(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "My New Title.md"), newPath)
	assert.FileExists(t, newPath)
}

func TestGenerateTitleLowerCaseOption(t *testing.T) {
	dir := t.TempDir()
	path := writeNote(t, dir, "draft.md", "content")

	settings := config.Default()
	settings.LowerCaseTitles = true
	gen, _ := newTestGenerator(&fakeCompleter{responses: []string{"My Great Title"}}, settings)

	newPath, err := gen.GenerateTitle(context.Background(), &vault.Document{Path: path})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "my great title.md"), newPath)
}

func TestGenerateTitleEmptyModelOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeNote(t, dir, "draft.md", "content")

	gen, _ := newTestGenerator(&fakeCompleter{responses: []string{"   \n "}}, nil)
	newPath, err := gen.GenerateTitle(context.Background(), &vault.Document{Path: path})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "untitled.md"), newPath)
}

func TestGenerateTitleMissingFile(t *testing.T) {
	gen, _ := newTestGenerator(&fakeCompleter{}, nil)
	_, err := gen.GenerateTitle(context.Background(), &vault.Document{Path: filepath.Join(t.TempDir(), "gone.md")})
	require.Error(t, err)
}

func TestGenerateBatchIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	a := writeNote(t, dir, "a.md", "first")
	b := writeNote(t, dir, "b.md", "second")
	c := writeNote(t, dir, "c.md", "third")

	client := &fakeCompleter{
		responses: []string{"Title A", "", "Title C"},
		errs:      []error{nil, errors.New("quota exceeded"), nil},
	}
	gen, out := newTestGenerator(client, nil)

	docs := []vault.Document{{Path: a}, {Path: b}, {Path: c}}
	res := gen.GenerateBatch(context.Background(), docs)

	assert.Equal(t, 2, res.Renamed)
	assert.Equal(t, 1, res.Failed)

	assert.FileExists(t, filepath.Join(dir, "Title A.md"))
	assert.FileExists(t, filepath.Join(dir, "Title C.md"))
	assert.FileExists(t, b, "failed document keeps its name")

	failures := 0
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.Contains(line, "quota exceeded") {
			failures++
		}
	}
	assert.Equal(t, 1, failures, "exactly one failure notification")
}

func TestGenerateBatchProcessesInOrder(t *testing.T) {
	dir := t.TempDir()
	docs := []vault.Document{
		{Path: writeNote(t, dir, "one.md", "1")},
		{Path: writeNote(t, dir, "two.md", "2")},
	}

	client := &fakeCompleter{responses: []string{"First", "Second"}}
	gen, _ := newTestGenerator(client, nil)
	res := gen.GenerateBatch(context.Background(), docs)

	require.Equal(t, 2, res.Renamed)
	assert.FileExists(t, filepath.Join(dir, "First.md"))
	assert.FileExists(t, filepath.Join(dir, "Second.md"))
}

func TestConcurrencyCeiling(t *testing.T) {
	dir := t.TempDir()
	client := &fakeCompleter{delay: 10 * time.Millisecond}
	for i := 0; i < 6; i++ {
		client.responses = append(client.responses, "untitled")
	}
	gen, _ := newTestGenerator(client, nil)

	var wg sync.WaitGroup
	names := []string{"u0.md", "u1.md", "u2.md", "u3.md", "u4.md", "u5.md"}
	for _, name := range names {
		path := writeNote(t, dir, name, "content "+name)
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			// Collisions on the shared "untitled" target are expected here;
			// only the overlap measurement matters.
			_, _ = gen.GenerateTitle(context.Background(), &vault.Document{Path: p})
		}(path)
	}
	wg.Wait()

	assert.Equal(t, int32(1), client.maxInFlight.Load(),
		"no two remote calls may be in flight simultaneously")
}
