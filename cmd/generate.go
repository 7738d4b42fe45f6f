package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkling-app/inkling/internal/ui/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate additional questions targeting your learning gaps",
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

		count, _ := cmd.Flags().GetInt("count")

		fmt.Println("Analyzing learning gaps and existing questions...")
		questions, err := a.quiz.GenerateAdditional(ctx, topic.ID, count)
		if err != nil {
			return err
		}

		fmt.Printf("Generated %d new questions:\n", len(questions))
		for _, q := range questions {
			fmt.Printf("  %s", theme.Body.Render(q.QuestionText))
			if q.Subtopic != "" {
				fmt.Printf(" %s", theme.Subtitle.Render("["+q.Subtopic+"]"))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("count", 0, "Number of questions to generate (default from config)")
}
