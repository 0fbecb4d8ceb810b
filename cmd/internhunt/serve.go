package main

import (
	"context"
	"fmt"

	"github.com/shubham/internhunt/internal/jobs"
	"github.com/shubham/internhunt/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveConfigPath string
	servePort       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume analysis, job search and the career chat assistant.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by environment variables)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	ctx := context.Background()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	analyzer, err := buildAnalyzer(store)
	if err != nil {
		return err
	}

	ranker, err := buildRanker(cfg)
	if err != nil {
		return err
	}

	assistant, err := buildAssistant(ctx, cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, server.Deps{
		DB:        store,
		Analyzer:  analyzer,
		Merger:    jobs.NewMerger(buildSources(cfg)...),
		Ranker:    ranker,
		Assistant: assistant,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
