package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	quiztui "github.com/inkling-app/inkling/internal/tui/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <topic>",
	Short: "Start an adaptive quiz session",
	Long: "Starts a quiz over the topic's question bank. Unanswered questions\n" +
		"come first, then questions you last got wrong, then the rest.",
	Args: cobra.ExactArgs(1),
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

		count, _ := cmd.Flags().GetInt("questions")
		questions, err := a.quiz.StartQuiz(ctx, topic.ID, count)
		if err != nil {
			return err
		}

		model := quiztui.New(a.quiz, topic, questions)
		p := tea.NewProgram(model)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run quiz session: %w", err)
		}
		return nil
	},
}

func init() {
	quizCmd.Flags().Int("questions", 0, "Number of questions (default from config)")
}
