package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shubham/internhunt/internal/analysis"
	"github.com/shubham/internhunt/internal/chat"
	"github.com/shubham/internhunt/internal/config"
	"github.com/shubham/internhunt/internal/db"
	"github.com/shubham/internhunt/internal/jobs"
	"github.com/shubham/internhunt/internal/keywords"
	"github.com/shubham/internhunt/internal/ranking"
)

// resolveConfig builds the effective configuration: JSON file (if given),
// then environment variables for anything unset, then built-in defaults.
func resolveConfig(configPath string) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildSources assembles the job fetchers the configuration enables.
// Internshala and TimesJobs need no credentials; Jooble joins only when an
// API key is present.
func buildSources(cfg config.Config) []jobs.Fetcher {
	sources := []jobs.Fetcher{
		jobs.NewInternshalaClient(),
		jobs.NewTimesJobsScraper().WithBrowserFallback(cfg.UseBrowser),
	}
	if cfg.JoobleAPIKey != "" {
		sources = append([]jobs.Fetcher{jobs.NewJoobleClient(cfg.JoobleAPIKey)}, sources...)
	} else {
		log.Println("JOOBLE_API_KEY not set; skipping Jooble as a job source")
	}
	return sources
}

// buildRanker constructs the job ranker with the configured fallback floor.
func buildRanker(cfg config.Config) (*ranking.Ranker, error) {
	tables, err := keywords.LoadTables()
	if err != nil {
		return nil, fmt.Errorf("load keyword tables: %w", err)
	}
	return ranking.NewRanker(tables, keywords.NewMatcher()).
		WithFallbackFloor(ranking.FallbackFloor{
			MinKept:  cfg.FallbackMinKept,
			Fraction: cfg.FallbackFraction,
		}), nil
}

// buildAssistant connects the Gemini-backed chat assistant, or returns nil
// when no API key is configured.
func buildAssistant(ctx context.Context, cfg config.Config) (*chat.Assistant, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, nil
	}
	client, err := chat.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("connect Gemini client: %w", err)
	}
	return chat.NewAssistant(client), nil
}

// buildStore connects to Postgres, or returns nil when no database is
// configured. Analyses then simply are not persisted.
func buildStore(ctx context.Context, cfg config.Config) (*db.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return store, nil
}

// buildAnalyzer constructs the resume analyzer over the given store.
func buildAnalyzer(store *db.DB) (*analysis.Analyzer, error) {
	analyzer, err := analysis.New(store)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}
	return analyzer, nil
}
