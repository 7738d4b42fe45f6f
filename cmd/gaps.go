package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkling-app/inkling/internal/ui/theme"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps <topic>",
	Short: "Show subtopics needing reinforcement or question coverage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close(cmd.Context())

		ctx := cmd.Context()
		topic, err := a.topicByName(ctx, args[0])
		if err != nil {
			return err
		}

		gaps, err := a.quiz.Gaps(ctx, topic.ID)
		if err != nil {
			return err
		}
		if len(gaps) == 0 {
			fmt.Println("No learning gaps detected. Nice work.")
			return nil
		}

		for _, g := range gaps {
			fmt.Printf("%s\n  %s\n", theme.Body.Render(g.Subtopic), theme.GapReason.Render(g.Reason))
		}
		return nil
	},
}
