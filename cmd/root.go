package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/dropcheck/internal/config"
	"github.com/abhisek/dropcheck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "dropcheck",
	Short:        "Drag-and-drop answer exercises in the terminal",
	Long:         "dropcheck: pick an answer by dragging it into the answer slot, then check it.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DROPCHECK_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file (overrides DROPCHECK_CONFIG env var)")
	rootCmd.PersistentFlags().String("pack", "", "Path to a JSON exercise pack to load on top of the built-ins")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file, then DROPCHECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}
