package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/skillforge/internal/content"
	"github.com/abhisek/skillforge/internal/evaluator"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/spf13/cobra"
)

var evaluatorCmd = &cobra.Command{
	Use:   "evaluator",
	Short: "Inspect the evaluation backend",
}

var evaluatorStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which evaluation backend would be used",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := evaluator.ConfigFromEnv()
		catalog := content.Default()

		_, mode, err := evaluator.New(context.Background(), cfg, nil, catalog.ExerciseLookup())

		fmt.Printf("Mode:     %s\n", mode)
		if cfg.BaseURL != "" {
			fmt.Printf("URL:      %s\n", cfg.BaseURL)
		}
		fmt.Printf("Timeout:  %s\n", cfg.Timeout)
		if err != nil {
			fmt.Printf("Status:   unusable (%v)\n", err)
			fmt.Println("\nThe app falls back to the mock evaluator when the configured backend cannot start.")
			return nil
		}
		fmt.Println("Status:   ok")
		return nil
	},
}

var evaluatorLogCmd = &cobra.Command{
	Use:   "log",
	Short: "List recent evaluator backend calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		recs, err := st.EventRepo().EvaluatorRequests(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query evaluator requests: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println("No evaluator calls recorded.")
			return nil
		}

		fmt.Printf("%-19s  %-6s  %-11s  %-28s  %-7s  %s\n",
			"Timestamp", "Mode", "Operation", "Target", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 90))
		for _, r := range recs {
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			fmt.Printf("%-19s  %-6s  %-11s  %-28s  %-7d  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Mode, r.Operation, clip(r.Target, 28), r.LatencyMs, ok)
			if r.ErrorMessage != "" {
				fmt.Printf("    %s\n", clip(r.ErrorMessage, 86))
			}
		}
		return nil
	},
}

func init() {
	evaluatorLogCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")

	evaluatorCmd.AddCommand(evaluatorStatusCmd)
	evaluatorCmd.AddCommand(evaluatorLogCmd)
}
