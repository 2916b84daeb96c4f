// Package titlegen runs the title-generation cycle: read a note, ask the
// model for a title, sanitize it, rename the file. A batch applies the same
// cycle to many notes strictly one at a time.
package titlegen

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jgoldfed/obsidian-title-generator/internal/batchpool"
	"github.com/jgoldfed/obsidian-title-generator/internal/config"
	"github.com/jgoldfed/obsidian-title-generator/internal/content"
	"github.com/jgoldfed/obsidian-title-generator/internal/sanitize"
	"github.com/jgoldfed/obsidian-title-generator/internal/ui"
	"github.com/jgoldfed/obsidian-title-generator/internal/vault"
)

const (
	systemPrompt = "You generate succinct, descriptive titles for notes. " +
		"A title must be usable as a file name: never include the characters " +
		`\ / : * ? " < > | and respond with the title text only, nothing else.`

	userPromptTemplate = "Generate a succinct title for the following note content:\n\n%s"

	// maxTokens caps the generated title length; titles are short.
	maxTokens = 50
)

// Completer is the remote text-generation call the generator depends on.
// *openai.Client satisfies it.
type Completer interface {
	ChatCompletion(ctx context.Context, systemPrompt, userContent string, maxTokens int) (string, error)
}

type Generator struct {
	client   Completer
	settings *config.Settings
	pool     *batchpool.Pool
	notify   *ui.Notifier
	log      *slog.Logger
}

// New creates a generator. Settings are read-only for the generator's
// lifetime; the pool holds exactly one slot so cycles never overlap.
func New(client Completer, settings *config.Settings, notify *ui.Notifier) *Generator {
	if notify == nil {
		notify = ui.NewNotifier()
	}
	return &Generator{
		client:   client,
		settings: settings,
		pool:     batchpool.New(1),
		notify:   notify,
		log:      slog.Default(),
	}
}

// GenerateTitle runs the full cycle for one document and returns the new
// path. Read, request, sanitize and rename happen under a single pool slot.
func (g *Generator) GenerateTitle(ctx context.Context, doc *vault.Document) (string, error) {
	if err := g.pool.Acquire(ctx); err != nil {
		return "", err
	}
	defer g.pool.Release()

	status := ui.StartStatus("Generating title for " + filepath.Base(doc.Path))
	defer status.Done()

	raw, err := doc.Read()
	if err != nil {
		return "", err
	}

	text, err := content.Prepare(doc.Path, raw)
	if err != nil {
		return "", err
	}

	g.log.Debug("requesting title", slog.String("file", doc.Path), slog.Int("content_bytes", len(text)))

	title, err := g.client.ChatCompletion(ctx, systemPrompt, fmt.Sprintf(userPromptTemplate, text), maxTokens)
	if err != nil {
		return "", fmt.Errorf("title request failed for %s: %w", doc.Path, err)
	}

	if g.settings.LowerCaseTitles {
		title = strings.ToLower(title)
	}
	name := sanitize.Title(title)

	g.log.Debug("sanitized title", slog.String("file", doc.Path), slog.String("title", name))

	newPath, err := doc.RenameTo(name)
	if err != nil {
		return "", err
	}
	return newPath, nil
}

// BatchResult summarizes a batch run.
type BatchResult struct {
	Renamed int
	Failed  int
}

// GenerateBatch applies the cycle to each document in input order, one at a
// time. Per-document failures are reported through the notifier and counted;
// they never prevent the remaining documents from being attempted.
func (g *Generator) GenerateBatch(ctx context.Context, docs []vault.Document) BatchResult {
	var res BatchResult
	for i := range docs {
		doc := &docs[i]
		oldPath := doc.Path

		newPath, err := g.GenerateTitle(ctx, doc)
		if err != nil {
			g.notify.Error("%s: %v", oldPath, err)
			res.Failed++
			continue
		}

		g.notify.Success("%s %s", newPath, ui.Subtle("(was "+filepath.Base(oldPath)+")"))
		res.Renamed++
	}
	return res
}
