package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"relato/internal/adapters/content"
	"relato/internal/application"
	"relato/internal/config"
	"relato/internal/logging"
	"relato/internal/ports"
)

var (
	configPath string
	cfg        *config.Config
	src        ports.ContentSource
	closeSrc   func() error
	formatter  *application.Formatter
)

var rootCmd = &cobra.Command{
	Use:   "relato-cli",
	Short: "CLI for the coffee cisco story page",
	Long: `relato-cli is a command-line companion to the relato page.

It runs the cisco calculators, lists the page sections and gallery, and
moves page declarations between YAML files and the SQLite content index.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel)
		formatter = application.NewFormatter(cfg.Tag())

		src, closeSrc, err = content.Resolve(cfg.ContentFile, cfg.ContentDB)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeSrc == nil {
			return nil
		}
		err := closeSrc()
		closeSrc = nil
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.Path(), "path to the config file")
}

// GetSource returns the initialized content source
func GetSource() ports.ContentSource {
	return src
}

// GetFormatter returns the number formatter for the configured locale
func GetFormatter() *application.Formatter {
	return formatter
}
