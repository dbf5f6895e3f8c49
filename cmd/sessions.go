package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dkoval/padelwiz/internal/store"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List your assessment sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		userID, err := resolveUserID(cmd)
		if err != nil {
			return err
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sessions, err := st.Repo().SessionsForUser(cmd.Context(), userID)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet. Run padelwiz to start an assessment.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NUMBER\tSTARTED\tANSWERS\tSTATUS\tLEVEL")
		for _, s := range sessions {
			status := "in progress"
			if s.Finished {
				status = "finished"
			}
			level := "-"
			if s.FinalLevel != nil {
				level = *s.FinalLevel
			}
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
				s.Number,
				s.StartedAt.Format("2006-01-02 15:04"),
				len(s.Answers),
				status,
				level,
			)
		}
		return w.Flush()
	},
}
