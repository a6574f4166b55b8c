package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [exercise-id]",
	Short: "Open an exercise directly",
	Long:  "Open an exercise directly. Without an id, the configured default exercise is played.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runApp(cmd, args[0])
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runApp(cmd, cfg.Exercise.Default)
	},
}
