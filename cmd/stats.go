package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/skillforge/internal/content"
	"github.com/abhisek/skillforge/internal/progress"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress and recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		catalog := content.Default()
		ledger := progress.NewStore(st.KV())

		fmt.Println("Learning Paths")
		fmt.Println(strings.Repeat("─", 78))
		fmt.Printf("%-34s  %8s  %9s  %6s  %7s\n", "Path", "Progress", "Completed", "Points", "Badges")
		fmt.Println(strings.Repeat("─", 78))

		var totalPoints int
		for _, p := range catalog.Paths() {
			rec, err := ledger.Get(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("read progress for %s: %w", p.ID, err)
			}
			fmt.Printf("%-34s  %7d%%  %6d/%-2d  %6d  %7d\n",
				clip(p.Title, 34), rec.OverallProgress, len(rec.CompletedNodes), len(p.Nodes),
				rec.TotalPointsEarned, len(rec.BadgesEarned))
			totalPoints += rec.TotalPointsEarned

			for _, b := range rec.BadgesEarned {
				fmt.Printf("    ★ %s\n", b)
			}
		}
		fmt.Println(strings.Repeat("─", 78))
		fmt.Printf("%-34s  %28d\n", "TOTAL POINTS", totalPoints)

		// Recent submissions.
		subs, err := st.EventRepo().QuizSubmissions(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			return fmt.Errorf("query quiz submissions: %w", err)
		}
		evals, err := st.EventRepo().ExerciseEvaluations(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			return fmt.Errorf("query exercise evaluations: %w", err)
		}

		if len(subs) > 0 {
			fmt.Println()
			fmt.Println("Recent Quiz Submissions")
			fmt.Println(strings.Repeat("─", 78))
			for _, s := range subs {
				verdict := "pass"
				if !s.Passed {
					verdict = "fail"
				}
				note := ""
				if s.AutoSubmitted {
					note = " (time expired)"
				}
				fmt.Printf("%-19s  %-24s  %3d%%  %-4s  %d/%d correct%s\n",
					s.Timestamp.Local().Format("2006-01-02 15:04"),
					clip(s.QuizID, 24), s.Score, verdict, s.CorrectCount, s.TotalQuestions, note)
			}
		}

		if len(evals) > 0 {
			fmt.Println()
			fmt.Println("Recent Exercise Evaluations")
			fmt.Println(strings.Repeat("─", 78))
			for _, e := range evals {
				verdict := "pass"
				if !e.Passed {
					verdict = "fail"
				}
				fmt.Printf("%-19s  %-24s  %3d%%  %-4s  %d hint(s)\n",
					e.Timestamp.Local().Format("2006-01-02 15:04"),
					clip(e.ExerciseID, 24), e.Score, verdict, e.HintsUsed)
			}
		}

		return nil
	},
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
