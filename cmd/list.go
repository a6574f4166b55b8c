package cmd

import (
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cmd, cfg)
		if err != nil {
			return err
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", "PROMPT", "OPTIONS")
		for _, e := range catalog.All() {
			t.Row(e.ID, e.Prompt, strconv.Itoa(len(e.Options)))
		}
		_, err = lipgloss.Fprintln(cmd.OutOrStdout(), t.String())
		return err
	},
}
