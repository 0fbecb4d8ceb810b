package main

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/shubham/internhunt/internal/jobs"
	"github.com/shubham/internhunt/internal/observability"
	"github.com/shubham/internhunt/internal/types"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Search job boards for matching internships",
	Long:  `Fetch internship listings from the configured job boards, merge and deduplicate them, and rank them by relevance to a career field.`,
	RunE:  runJobs,
}

var (
	jobsConfigPath string
	jobsSkills     []string
	jobsLocation   string
	jobsCategory   string
	jobsJSON       bool
)

func init() {
	jobsCmd.Flags().StringVar(&jobsConfigPath, "config", "", "Path to config.json file")
	jobsCmd.Flags().StringSliceVarP(&jobsSkills, "skills", "s", nil, "Skill keywords to search for (comma separated)")
	jobsCmd.Flags().StringVarP(&jobsLocation, "location", "l", "", "Preferred job location")
	jobsCmd.Flags().StringVar(&jobsCategory, "category", "", "Career field to rank listings against (e.g. \"Data Science\")")
	jobsCmd.Flags().BoolVar(&jobsJSON, "json", false, "Emit the listings as JSON")
	_ = jobsCmd.MarkFlagRequired("skills")

	rootCmd.AddCommand(jobsCmd)
}

func runJobs(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(jobsConfigPath)
	if err != nil {
		return err
	}

	ranker, err := buildRanker(cfg)
	if err != nil {
		return err
	}

	var keywords []string
	for _, s := range jobsSkills {
		if s = strings.TrimSpace(s); s != "" {
			keywords = append(keywords, s)
		}
	}

	merger := jobs.NewMerger(buildSources(cfg)...)
	merged := merger.Merge(context.Background(), keywords, jobsLocation)
	ranked, filtered := ranker.Rank(merged, jobsCategory)

	result := &types.JobSearchResult{
		Jobs:         ranked,
		Filtered:     filtered,
		TotalFetched: len(merged),
	}

	if jobsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	observability.NewPrinter(os.Stdout).PrintJobs(result)
	return nil
}
