package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dkoval/padelwiz/internal/rating"
	"github.com/dkoval/padelwiz/internal/store"
)

var rateCmd = &cobra.Command{
	Use:   "rate <session-number>",
	Short: "Recompute the rating for a stored session",
	Long: `Replays a session's stored answers through the rating pipeline and
prints the result. Useful for checking a finished session or rating one
that was interrupted after its last answer.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid session number %q", args[0])
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rec, err := st.Repo().SessionByNumber(cmd.Context(), number)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("no session with number %d", number)
		}

		fmt.Printf("Session %d (%d answers)\n\n", rec.Number, len(rec.Answers))

		exp := rating.CalculateExperience(rec.Answers)
		if exp == nil {
			fmt.Println("Not enough answers to estimate experience.")
			return nil
		}
		fmt.Printf("Experience:  %.1f months → %s\n", exp.TotalMonths, exp.Level)

		skills := rating.DeriveSkillRatings(rec.Answers)
		printSkill := func(name string, lvl *rating.Level) {
			if lvl != nil {
				fmt.Printf("%-12s %s\n", name+":", *lvl)
			}
		}
		printSkill("Rally", skills.Reliability)
		printSkill("Net play", skills.NetPlay)
		printSkill("Back wall", skills.BackWall)
		printSkill("Strokes", skills.Strokes)

		final := rating.ResolveFinalRating(rec.Answers)
		if final == nil {
			fmt.Println("\nSession is incomplete; no final rating.")
			return nil
		}
		fmt.Printf("\nFinal level: %s (score %.3f, next stop %s)\n",
			final.Level, final.Score, rating.TargetLevel(final.Level))

		if rec.FinalLevel != nil && *rec.FinalLevel != string(final.Level) {
			fmt.Printf("Stored level %s differs from the recomputed one.\n", *rec.FinalLevel)
		}
		return nil
	},
}
