package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/skillforge/internal/content"
	"github.com/abhisek/skillforge/internal/progress"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset [path-id]",
	Short: "Reset progress for one learning path, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		catalog := content.Default()

		var targets []string
		if len(args) == 1 {
			if catalog.PathByID(args[0]) == nil {
				return fmt.Errorf("unknown path %q", args[0])
			}
			targets = []string{args[0]}
		} else {
			for _, p := range catalog.Paths() {
				targets = append(targets, p.ID)
			}
		}

		if !yes {
			what := "ALL learning paths"
			if len(targets) == 1 {
				what = fmt.Sprintf("path %q", targets[0])
			}
			fmt.Printf("This erases points, badges, and completion for %s. Continue? [y/N] ", what)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ledger := progress.NewStore(st.KV())
		ctx := context.Background()
		for _, id := range targets {
			if err := ledger.Reset(ctx, id); err != nil {
				return fmt.Errorf("reset %s: %w", id, err)
			}
			fmt.Printf("Reset %s\n", id)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
