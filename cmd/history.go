package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkling-app/inkling/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent graded answers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close(cmd.Context())

		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")

		topicID := 0
		if name, _ := cmd.Flags().GetString("topic"); name != "" {
			topic, err := a.topicByName(ctx, name)
			if err != nil {
				return err
			}
			topicID = topic.ID
		}

		entries, err := a.quiz.History(ctx, topicID, limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No quiz history yet.")
			return nil
		}

		for _, e := range entries {
			verdict := theme.Incorrect.Render("✗")
			if e.IsCorrect {
				verdict = theme.Correct.Render("✓")
			}
			score := "n/a"
			if e.UnderstandingScore != nil {
				score = fmt.Sprintf("%d/5", *e.UnderstandingScore)
			}
			fmt.Printf("%s %s  %s\n", verdict,
				theme.Body.Render(e.QuestionText),
				theme.Subtitle.Render(fmt.Sprintf("%s · %s · %s",
					e.TopicName, score, e.Timestamp.Format("2006-01-02 15:04"))))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("topic", "", "Filter by topic name")
	historyCmd.Flags().Int("limit", 10, "Maximum entries to show")
}
