package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dkoval/padelwiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "padelwiz",
	Short: "Padel skill assessment wizard",
	Long:  "PadelWiz is a terminal questionnaire that estimates your padel level and what to train next.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// Local .env files are a convenience for API keys; absence is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PADELWIZ_DB env var)")
	rootCmd.PersistentFlags().Int64("user", 0, "Player id to act as (overrides PADELWIZ_USER env var)")

	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PADELWIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUserID returns the player id from --user, then PADELWIZ_USER,
// then 1. A single-seat install never needs to set it.
func resolveUserID(cmd *cobra.Command) (int64, error) {
	if id, _ := cmd.Flags().GetInt64("user"); id != 0 {
		return id, nil
	}
	if v := os.Getenv("PADELWIZ_USER"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid PADELWIZ_USER %q", v)
		}
		return id, nil
	}
	if uid := os.Getuid(); uid > 0 {
		return int64(uid), nil
	}
	return 1, nil
}
