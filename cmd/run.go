package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/skillforge/internal/app"
	"github.com/abhisek/skillforge/internal/content"
	"github.com/abhisek/skillforge/internal/evaluator"
	"github.com/abhisek/skillforge/internal/progress"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	catalog := content.Default()
	events := st.EventRepo()
	ledger := progress.NewStore(st.KV())

	client, mode, err := evaluator.New(ctx, evaluator.ConfigFromEnv(), events, catalog.ExerciseLookup())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Evaluator not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to the built-in mock evaluator.")
		fallback := evaluator.DefaultConfig()
		fallback.Mode = evaluator.ModeMock
		client, mode, _ = evaluator.New(ctx, fallback, events, catalog.ExerciseLookup())
	}

	return app.Run(app.Options{
		Catalog:       catalog,
		Ledger:        ledger,
		Events:        events,
		Evaluator:     client,
		EvaluatorMode: mode,
	})
}
