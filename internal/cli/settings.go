package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit the API key and title options",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		apiKey := settings.OpenAIAPIKey
		lower := settings.LowerCaseTitles

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("OpenAI API key").
					Description("Stored encrypted in "+path).
					EchoMode(huh.EchoModePassword).
					Value(&apiKey),
				huh.NewConfirm().
					Title("Lower-case generated titles").
					Value(&lower),
			),
		)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				notify.Info("settings unchanged")
				return nil
			}
			return err
		}

		settings.OpenAIAPIKey = strings.TrimSpace(apiKey)
		settings.LowerCaseTitles = lower
		if err := settings.Save(path); err != nil {
			return err
		}

		notify.Success("settings saved to %s", path)
		return nil
	},
}
