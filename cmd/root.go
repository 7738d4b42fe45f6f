package cmd

import (
	"github.com/spf13/cobra"

	"github.com/inkling-app/inkling/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "inkling",
	Short: "Adaptive quiz app that learns what you don't know",
	Long: "Inkling generates a knowledge graph and question bank for any topic,\n" +
		"quizzes you with LLM-graded free-text answers, and targets follow-up\n" +
		"questions at your weakest subtopics.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides INKLING_DB env var)")

	rootCmd.AddCommand(topicCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(gapsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then INKLING_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
