// Package cli wires the title-gen commands: single-note generation, batch
// generation, the settings form, and a models listing for checking the
// configured endpoint.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jgoldfed/obsidian-title-generator/internal/config"
	"github.com/jgoldfed/obsidian-title-generator/internal/logger"
	"github.com/jgoldfed/obsidian-title-generator/internal/openai"
	"github.com/jgoldfed/obsidian-title-generator/internal/titlegen"
	"github.com/jgoldfed/obsidian-title-generator/internal/ui"
)

var (
	cfgPath string
	verbose bool

	notify = ui.NewNotifier()
)

var rootCmd = &cobra.Command{
	Use:   "title-gen",
	Short: "Generate note titles with AI and rename the files to match",
	Long: `title-gen renames notes in an Obsidian-style vault by asking an
OpenAI-compatible chat-completions endpoint for a succinct title based on the
note's content. The generated title is sanitized for use as a file name; the
note keeps its directory and extension.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Setup(verbose)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"settings file path (default $XDG_CONFIG_HOME/title-gen/settings.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(modelsCmd)
}

// settingsPath resolves the settings file location, honoring --config.
func settingsPath() (string, error) {
	if cfgPath != "" {
		return cfgPath, nil
	}
	return config.DefaultPath()
}

func loadSettings() (*config.Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// newGenerator builds the generator for the loaded settings. A missing API
// key is a configuration error, not a request error, and is caught here.
func newGenerator(settings *config.Settings) (*titlegen.Generator, error) {
	if settings.OpenAIAPIKey == "" {
		return nil, errors.New("no API key configured; run 'title-gen settings' first")
	}
	client := openai.NewClient(settings.BaseURL, settings.OpenAIAPIKey)
	return titlegen.New(client, settings, notify), nil
}

func newClient(settings *config.Settings) (*openai.Client, error) {
	if settings.OpenAIAPIKey == "" {
		return nil, errors.New("no API key configured; run 'title-gen settings' first")
	}
	return openai.NewClient(settings.BaseURL, settings.OpenAIAPIKey), nil
}
