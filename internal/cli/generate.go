package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jgoldfed/obsidian-title-generator/internal/ui"
	"github.com/jgoldfed/obsidian-title-generator/internal/vault"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Generate a title for one note and rename it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		gen, err := newGenerator(settings)
		if err != nil {
			return err
		}

		doc := &vault.Document{Path: args[0]}
		oldName := filepath.Base(doc.Path)

		// Errors from the single-note cycle are always surfaced, never
		// dropped: a failed run exits non-zero with the error detail.
		newPath, err := gen.GenerateTitle(cmd.Context(), doc)
		if err != nil {
			return err
		}

		notify.Success("%s %s", newPath, ui.Subtle("(was "+oldName+")"))
		return nil
	},
}
