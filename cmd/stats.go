package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkling-app/inkling/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats <topic>",
	Short: "Show per-question performance for a topic",
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

		questions, err := a.store.Questions().ForTopic(ctx, topic.ID)
		if err != nil {
			return err
		}
		stats, err := a.store.Answers().StatsForTopic(ctx, topic.ID)
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render(topic.Name))
		fmt.Println()

		for _, q := range questions {
			st := stats[q.ID]

			status := theme.Subtitle.Render("unanswered")
			if st.HasAnswers {
				if st.LastAnswerCorrect != nil && *st.LastAnswerCorrect {
					status = theme.Correct.Render("last correct")
				} else {
					status = theme.Incorrect.Render("last wrong")
				}
			}

			fmt.Printf("%s\n", theme.Body.Render(q.QuestionText))
			line := fmt.Sprintf("  %s · %d/%d correct", status, st.CorrectAnswers, st.TotalAnswers)
			if st.LastScore != nil {
				line += fmt.Sprintf(" · understanding %d/5", *st.LastScore)
			}
			fmt.Println(theme.Subtitle.Render(line))
		}
		return nil
	},
}
