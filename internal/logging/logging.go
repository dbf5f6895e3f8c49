package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. Output goes to a log file so that
// nothing is ever printed over the interactive terminal UI; headless
// commands pass console=true to mirror logs to stderr as well.
func New(console bool) (*zap.SugaredLogger, error) {
	path, err := DefaultLogPath()
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if console {
		cfg.OutputPaths = append(cfg.OutputPaths, "stderr")
		cfg.ErrorOutputPaths = append(cfg.ErrorOutputPaths, "stderr")
	}

	if lvl := os.Getenv("PADELWIZ_LOG_LEVEL"); lvl != "" {
		parsed, err := zapcore.ParseLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("parse PADELWIZ_LOG_LEVEL: %w", err)
		}
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything. Used in tests and as a
// safe fallback when the log file cannot be created.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// DefaultLogPath resolves the log file path in priority order:
// 1. PADELWIZ_LOG_FILE environment variable
// 2. $XDG_STATE_HOME/padelwiz/padelwiz.log
// 3. ~/.local/state/padelwiz/padelwiz.log
func DefaultLogPath() (string, error) {
	if p := os.Getenv("PADELWIZ_LOG_FILE"); p != "" {
		return p, ensureDir(p)
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, "padelwiz", "padelwiz.log")
	return p, ensureDir(p)
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
