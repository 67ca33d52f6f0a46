package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/budgetbuddy/internal/config"
	"github.com/Veraticus/budgetbuddy/internal/engine"
	"github.com/Veraticus/budgetbuddy/internal/llm"
	"github.com/Veraticus/budgetbuddy/internal/storage"
)

// buildAgent wires the full pipeline: config, storage (migrated), LLM
// client, and the agent itself. The returned cleanup closes the store.
func buildAgent(ctx context.Context) (*engine.Agent, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	client, err := llm.NewClient(llm.Config{
		Provider:  cfg.LLM.Provider,
		APIKey:    cfg.LLM.APIKey,
		Model:     cfg.LLM.Model,
		RateLimit: cfg.LLM.RateLimit,
		CacheTTL:  cfg.LLM.CacheTTL,
	})
	if err != nil {
		_ = store.Close()
		return nil, nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	agent := engine.New(client, store, engine.Config{
		Prompts:     cfg.Prompts,
		Categories:  cfg.Categories,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
	})

	cleanup := func() { _ = store.Close() }
	return agent, cfg, cleanup, nil
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}
