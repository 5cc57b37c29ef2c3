// Root command for the followdesk CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/followdesk/followdesk/internal/paths"
)

// Version is stamped at build time via -ldflags.
var Version = "0.1.0"

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "followdesk",
	Short:   "Followdesk is an offline-first sales follow-up desk",
	Version: Version,
	Long: `Followdesk tracks customers, dated follow-up todos, orders converted
from todos, and a product catalog, all stored locally with an automatic
fallback when the database is unavailable.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configDebounceMs = cfg.GetInt(cfgKeyDebounceMs)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.followdesk-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(customerCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(recycleCmd)
	rootCmd.AddCommand(backupCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > FOLLOWDESK_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > FOLLOWDESK_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
