package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkling-app/inkling/internal/ui/theme"
)

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Create and inspect topics",
}

var topicCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a topic with a generated knowledge graph and question bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close(cmd.Context())

		description, _ := cmd.Flags().GetString("description")
		count, _ := cmd.Flags().GetInt("questions")

		fmt.Println("Generating knowledge graph and questions...")
		result, err := a.topics.Create(cmd.Context(), args[0], description, count)
		if err != nil {
			return err
		}

		fmt.Printf("Created topic %s with %d subtopics and %d questions.\n",
			theme.Title.Render(result.Topic.Name),
			len(result.Subtopics), len(result.Questions))

		for _, s := range result.Subtopics {
			fmt.Printf("  %s %s\n", theme.Body.Render(s.Name), theme.Subtitle.Render(s.Description))
		}
		return nil
	},
}

var topicListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all topics, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close(cmd.Context())

		all, err := a.topics.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Println("No topics yet. Create one with: inkling topic create <name>")
			return nil
		}

		for _, t := range all {
			fmt.Printf("%s  %s\n", theme.Body.Render(t.Name),
				theme.Subtitle.Render(t.CreatedAt.Format("2006-01-02")))
			if t.Description != "" {
				fmt.Printf("  %s\n", theme.Subtitle.Render(t.Description))
			}
		}
		return nil
	},
}

var topicShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a topic's knowledge graph",
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

		subtopics, err := a.topics.Subtopics(ctx, topic.ID)
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render(topic.Name))
		if topic.Description != "" {
			fmt.Println(theme.Subtitle.Render(topic.Description))
		}
		fmt.Println()

		for _, s := range subtopics {
			fmt.Printf("%s\n", theme.Body.Render(s.Name))
			if s.Description != "" {
				fmt.Printf("  %s\n", theme.Subtitle.Render(s.Description))
			}

			prereqs, err := a.topics.Prerequisites(ctx, topic.ID, s.Name)
			if err != nil {
				return err
			}
			if len(prereqs) > 0 {
				fmt.Printf("  %s\n", theme.Hint.Render("requires: "+strings.Join(prereqs, ", ")))
			}

			related, err := a.topics.Related(ctx, topic.ID, s.Name)
			if err != nil {
				return err
			}
			if len(related) > 0 {
				fmt.Printf("  %s\n", theme.Hint.Render("related: "+strings.Join(related, ", ")))
			}
		}
		return nil
	},
}

func init() {
	topicCreateCmd.Flags().String("description", "", "Optional topic description")
	topicCreateCmd.Flags().Int("questions", 0, "Number of questions to generate (default from config)")

	topicCmd.AddCommand(topicCreateCmd)
	topicCmd.AddCommand(topicListCmd)
	topicCmd.AddCommand(topicShowCmd)
}
