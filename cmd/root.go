package cmd

import (
	"github.com/abhisek/inkwell/internal/config"
	"github.com/abhisek/inkwell/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "Daily English writing trainer",
	Long:  "Inkwell — terminal app for daily English writing practice with a spaced-repetition vocabulary deck and skill-rank tracking.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides INKWELL_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/inkwell/config.toml)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(writingCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, or the default
// location. A missing file at the default location yields an empty config.
func loadConfig(cmd *cobra.Command) (config.FileConfig, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return config.Load(p)
	}
	return config.Load(config.DefaultConfigPath())
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then INKWELL_DB env var, then the
// default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.FileConfig) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := cfg.DBPath(); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
