package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shubham/internhunt/internal/analysis"
	"github.com/shubham/internhunt/internal/observability"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.pdf>",
	Short: "Analyze a resume PDF from the command line",
	Long:  `Parse a resume PDF and print its ATS score breakdown, grouped skills, predicted career field, role alignment and course recommendations.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeConfigPath  string
	analyzeTargetRole  string
	analyzeCourseCount int
	analyzeJSON        bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file")
	analyzeCmd.Flags().StringVarP(&analyzeTargetRole, "target-role", "t", "", "Target role to score alignment against (auto-detected if not provided)")
	analyzeCmd.Flags().IntVar(&analyzeCourseCount, "courses", 0, "Number of course recommendations")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the full analysis result as JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	cfg, err := resolveConfig(analyzeConfigPath)
	if err != nil {
		return err
	}

	ctx := context.Background()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	analyzer, err := buildAnalyzer(store)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	result, err := analyzer.Analyze(ctx, data, filepath.Base(args[0]), analysis.Options{
		TargetRole:  analyzeTargetRole,
		CourseCount: analyzeCourseCount,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResume(result.Resume)
	printer.PrintScore(result.Score)
	printer.PrintSkillGroups(result.SkillGroups)
	printer.PrintCategory(result.Category)
	printer.PrintRoleAlignment(result.RoleAlignment)
	printer.PrintCourses(result.Courses)
	return nil
}
