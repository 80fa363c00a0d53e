// Package cli implements the themesync command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/navitone/themesync/internal/config"
	"github.com/navitone/themesync/internal/logging"
)

var (
	flagDestination string
	flagOmarchyDir  string
	flagJSON        bool
	flagVerbose     bool
	flagQuiet       bool
)

var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "themesync",
	Short: "Sync the Omarchy theme into Navitone's config",
	Long: "themesync reads the current Omarchy theme's colors and rewrites the\n" +
		"[theme] section of Navitone's config.toml, leaving everything else\n" +
		"in the file untouched.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if flagDestination != "" {
			cfg.Destination = flagDestination
		}
		if flagOmarchyDir != "" {
			cfg.OmarchyDir = flagOmarchyDir
		}

		level := cfg.LogLevel
		if flagVerbose {
			level = "debug"
		}
		if flagQuiet {
			level = "error"
		}
		logging.Setup(level, os.Stderr)

		appConfig = &cfg
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDestination, "destination", "", "destination config file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagOmarchyDir, "omarchy-dir", "", "omarchy config root (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "errors only")
}

// GetConfig returns the loaded tool configuration.
func GetConfig() *config.Config {
	return appConfig
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
