package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/tahfiz/internal/report"
	"github.com/abhisek/tahfiz/internal/submission"
)

var scoreCmd = &cobra.Command{
	Use:   "score <submission.json>",
	Short: "Grade an examination submission payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read submission: %w", err)
		}

		sub, err := submission.Decode(raw)
		if err != nil {
			return err
		}
		rec, err := sub.Score()
		if err != nil {
			return err
		}

		fmt.Print(report.RenderScore(rec))
		return nil
	},
}
