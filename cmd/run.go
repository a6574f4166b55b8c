package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/dropcheck/internal/app"
	"github.com/abhisek/dropcheck/internal/config"
	"github.com/abhisek/dropcheck/internal/exercise"
	"github.com/abhisek/dropcheck/internal/store"
)

// loadConfig reads the config named by --config, or the default location.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// loadCatalog returns the built-in exercises plus the pack from --pack or
// the config file, if any.
func loadCatalog(cmd *cobra.Command, cfg config.Config) (*exercise.Catalog, error) {
	c := exercise.Builtin()
	pack, _ := cmd.Flags().GetString("pack")
	if pack == "" {
		pack = cfg.Exercise.Pack
	}
	if pack == "" {
		return c, nil
	}
	if err := c.LoadPack(pack); err != nil {
		return nil, fmt.Errorf("load pack: %w", err)
	}
	return c, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
// startID, when set, opens that exercise above the home screen.
func runApp(cmd *cobra.Command, startID string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cmd, cfg)
	if err != nil {
		return err
	}
	if startID != "" {
		if _, err := catalog.Get(startID); err != nil {
			return err
		}
	}

	opts := app.Options{
		Catalog:       catalog,
		StartExercise: startID,
		LogFile:       cfg.Log.File,
		Splash:        cfg.UI.Splash,
	}

	// The journal is optional; exercises work without it.
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Journal unavailable:", err)
	} else if st, err := store.Open(dbPath); err != nil {
		fmt.Fprintln(os.Stderr, "Journal unavailable:", err)
	} else {
		defer st.Close()
		opts.Journal = st.Journal()
	}

	return app.Run(opts)
}
