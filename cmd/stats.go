package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/dropcheck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show check statistics per exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.Journal().ExerciseStats(ctx)
		if err != nil {
			return fmt.Errorf("read stats: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(stats) == 0 {
			fmt.Fprintln(out, "No checks recorded yet.")
			return nil
		}

		_, err = lipgloss.Fprintln(out, statsTable(stats).String())
		if err != nil {
			return err
		}

		recent, _ := cmd.Flags().GetInt("recent")
		if recent <= 0 {
			return nil
		}
		checks, err := st.Journal().RecentChecks(ctx, store.QueryOpts{Limit: recent})
		if err != nil {
			return fmt.Errorf("read recent checks: %w", err)
		}
		fmt.Fprintln(out)
		for _, c := range checks {
			result := "incorrect"
			if c.Correct {
				result = "correct"
			}
			fmt.Fprintf(out, "%s  %-20s %-12s %s\n",
				c.Timestamp.Local().Format("2006-01-02 15:04"), c.ExerciseID, c.AnswerID, result)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("recent", 0, "Also list the N most recent checks")
}

func statsTable(stats []store.ExerciseStat) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("EXERCISE", "SESSIONS", "CHECKS", "CORRECT", "FIRST TRY", "RESETS", "ACCURACY")
	for _, s := range stats {
		t.Row(
			s.ExerciseID,
			strconv.Itoa(s.Sessions),
			strconv.Itoa(s.Checks),
			strconv.Itoa(s.CorrectChecks),
			strconv.Itoa(s.FirstTry),
			strconv.Itoa(s.Resets),
			fmt.Sprintf("%.0f%%", s.Accuracy()*100),
		)
	}
	return t
}
