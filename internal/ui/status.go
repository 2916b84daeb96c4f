package ui

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Status is the scoped per-operation indicator: created when a document's
// cycle starts, removed when it ends, success or failure alike. Callers pair
// every Start with a deferred Done.
type Status struct {
	bar *progressbar.ProgressBar
}

// StartStatus shows an indeterminate spinner with the given description.
// When stderr is not a terminal the spinner stays silent rather than
// spraying control sequences into logs.
func StartStatus(description string) *Status {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return &Status{}
	}
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	return &Status{bar: bar}
}

// Done tears the indicator down. Safe to call on a silent status.
func (s *Status) Done() {
	if s.bar != nil {
		_ = s.bar.Finish()
		_ = s.bar.Clear()
	}
}
