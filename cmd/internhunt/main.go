// Package main provides the entry point for the InternHunt resume analyzer.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "internhunt",
	Short: "InternHunt resume analyzer",
	Long:  "InternHunt analyzes uploaded resumes for ATS readiness, predicts the candidate's career field, recommends courses, and aggregates matching internship listings from multiple job boards.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
