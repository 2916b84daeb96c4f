package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgoldfed/obsidian-title-generator/internal/vault"
)

var batchCmd = &cobra.Command{
	Use:   "batch <path>...",
	Short: "Generate titles for many notes, one at a time",
	Long: `Runs the title-generation cycle for each given note, strictly one
at a time to keep load on the remote API bounded. Arguments may be note files
or directories; directories are walked for supported notes (.md, .html, .htm).
A note's failure is reported and the batch moves on to the next one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		gen, err := newGenerator(settings)
		if err != nil {
			return err
		}

		docs, err := vault.Collect(args, nil)
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			notify.Info("no notes found under the given paths")
			return nil
		}

		res := gen.GenerateBatch(cmd.Context(), docs)
		notify.Info("renamed %d of %d notes", res.Renamed, len(docs))

		if res.Failed > 0 {
			return fmt.Errorf("%d of %d notes failed", res.Failed, len(docs))
		}
		return nil
	},
}
