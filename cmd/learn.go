package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Start learning (same as running skillforge with no arguments)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	// Context for evaluator initialization.
	learnCmd.SetContext(context.Background())
}
