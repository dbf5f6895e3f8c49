package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dkoval/padelwiz/internal/advice"
	"github.com/dkoval/padelwiz/internal/app"
	"github.com/dkoval/padelwiz/internal/flow"
	"github.com/dkoval/padelwiz/internal/logging"
	"github.com/dkoval/padelwiz/internal/store"
	"github.com/dkoval/padelwiz/internal/wizard"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	userID, err := resolveUserID(cmd)
	if err != nil {
		return err
	}

	log, err := logging.New(false)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	repo := st.Repo()
	engine := wizard.New(wizard.Options{
		Graph: flow.Default(),
		Repo:  repo,
		Log:   log,
	})

	opts := app.Options{
		Engine: engine,
		UserID: userID,
		Log:    log,
	}

	if svc, err := buildAdviceService(cmd, repo, log); err != nil {
		fmt.Fprintln(os.Stderr, "Training advice not configured:", err)
		fmt.Fprintln(os.Stderr, "The assessment works without it.")
	} else if svc != nil {
		opts.Advice = svc
	}

	return app.Run(opts)
}

// buildAdviceService wires the advice provider when an API key is
// configured. Returns (nil, nil) when advice is simply not set up.
func buildAdviceService(cmd *cobra.Command, repo store.Repo, log *zap.SugaredLogger) (*advice.Service, error) {
	cfg := advice.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := advice.DiscoverConfig()
		if !ok {
			return nil, nil
		}
		cfg = discovered
	}

	provider, err := advice.NewProvider(cmd.Context(), cfg, log)
	if err != nil {
		return nil, err
	}
	return advice.NewService(provider, repo, log, cfg.Timeout), nil
}
