package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ourstudio-se/phonehub"
	"github.com/ourstudio-se/phonehub/config"
	"github.com/ourstudio-se/phonehub/knowledge"
	"github.com/ourstudio-se/phonehub/llm"
	"github.com/ourstudio-se/phonehub/llm/anthropic"
	"github.com/ourstudio-se/phonehub/llm/openai"
	"github.com/ourstudio-se/phonehub/session"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func newProvider(cfg *config.Config, logger *slog.Logger) (llm.Provider, error) {
	var (
		p   llm.Provider
		err error
	)
	switch cfg.LLM.Provider {
	case config.ProviderAnthropic:
		p, err = anthropic.New(anthropic.Config{APIKey: cfg.LLM.AnthropicKey})
	default:
		p, err = openai.New(openai.Config{
			APIKey:  cfg.LLM.OpenAIKey,
			BaseURL: cfg.LLM.OpenAIBaseURL,
			Logger:  logger,
		})
	}
	if err != nil {
		return nil, err
	}

	return llm.NewResilient(p, llm.ResilientConfig{
		Timeout:       cfg.LLM.Timeout,
		MaxRetries:    cfg.LLM.MaxRetries,
		RatePerSecond: cfg.LLM.RatePerSecond,
		Logger:        logger,
	}), nil
}

func newStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	if cfg.SessionStore != config.StoreCache {
		return session.NewMemoryStore(), func() {}, nil
	}
	cs, err := session.NewCacheStore(ctx, cfg.SessionTTL)
	if err != nil {
		return nil, nil, err
	}
	return cs, func() { cs.Close() }, nil
}

// buildBot wires a Bot from configuration. The returned func releases the
// session store.
func buildBot(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*phonehub.Bot, func(), error) {
	kb, err := knowledge.Default()
	if cfg.KnowledgeFile != "" {
		kb, err = knowledge.LoadFile(cfg.KnowledgeFile)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("knowledge: %w", err)
	}

	provider, err := newProvider(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("llm: %w", err)
	}

	store, release, err := newStore(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("sessions: %w", err)
	}

	temperature := cfg.LLM.Temperature
	bot, err := phonehub.New(phonehub.Config{
		Knowledge:   kb,
		Provider:    provider,
		Store:       store,
		Logger:      logger,
		Model:       cfg.LLM.Model,
		Temperature: &temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	if err != nil {
		release()
		return nil, nil, err
	}
	return bot, release, nil
}
