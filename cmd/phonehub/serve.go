package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ourstudio-se/phonehub/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chat API over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot, release, err := buildBot(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer release()

	srv := server.New(bot, server.Config{CORSOrigins: cfg.CORSOrigins, Logger: logger})

	logger.Info("starting server",
		slog.String("addr", cfg.HTTPAddr),
		slog.String("llm_provider", cfg.LLM.Provider),
		slog.String("session_store", cfg.SessionStore),
	)

	err = srv.ListenAndServe(ctx, cfg.HTTPAddr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("server stopped")
	return nil
}
