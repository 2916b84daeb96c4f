// Package ui renders user-facing output: transient notifications for each
// document's outcome and a scoped spinner while a cycle is running.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successColor = lipgloss.Color("42")  // Green
	errorColor   = lipgloss.Color("160") // Red
	infoColor    = lipgloss.Color("39")  // Blue

	successBadge = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true).
			SetString("✓")

	errorBadge = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true).
			SetString("✗")

	infoBadge = lipgloss.NewStyle().
			Foreground(infoColor).
			Bold(true).
			SetString("•")

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Notifier writes notifications to a terminal. The zero writer defaults to
// stderr so notices never mix with pipeable stdout.
type Notifier struct {
	Out io.Writer
}

func NewNotifier() *Notifier {
	return &Notifier{Out: os.Stderr}
}

func (n *Notifier) writer() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return os.Stderr
}

// Success reports a completed rename.
func (n *Notifier) Success(format string, args ...any) {
	fmt.Fprintf(n.writer(), "%s %s\n", successBadge, fmt.Sprintf(format, args...))
}

// Error reports a per-document failure, including the raw error detail.
func (n *Notifier) Error(format string, args ...any) {
	fmt.Fprintf(n.writer(), "%s %s\n", errorBadge, fmt.Sprintf(format, args...))
}

// Info reports neutral progress information.
func (n *Notifier) Info(format string, args ...any) {
	fmt.Fprintf(n.writer(), "%s %s\n", infoBadge, fmt.Sprintf(format, args...))
}

// Subtle renders de-emphasized detail text, e.g. old → new paths.
func Subtle(s string) string {
	return subtleStyle.Render(s)
}
