package cmd

import (
	"fmt"

	"github.com/abhisek/inkwell/internal/app"
	"github.com/abhisek/inkwell/internal/config"
	"github.com/abhisek/inkwell/internal/deck"
	"github.com/abhisek/inkwell/internal/progress"
	"github.com/abhisek/inkwell/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the services, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
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

	opts := app.Options{
		Deck:         deck.NewService(st.VocabRepo(), st.EventRepo()),
		Progress:     progress.NewService(st.WritingRepo()),
		SessionLimit: cfg.SessionLimit(),
	}
	return app.Run(opts)
}

// openStore is the shared store bootstrap for the non-TUI subcommands.
func openStore(cmd *cobra.Command) (*store.Store, config.FileConfig, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cfg, fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, cfg, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, cfg, fmt.Errorf("open store: %w", err)
	}
	return st, cfg, nil
}
