package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/3-lines-studio/vitrine"
	"github.com/3-lines-studio/vitrine/internal/adapters/env"
	"github.com/3-lines-studio/vitrine/internal/adapters/fs"
)

func main() {
	cfg, err := env.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.EffectiveLevel()}))
	slog.SetDefault(logger)

	contentFS, err := fs.NewOSFileSystem().DirFS(cfg.ContentDir)
	if err != nil {
		logger.Error("open content dir", "dir", cfg.ContentDir, "error", err)
		os.Exit(1)
	}

	app := vitrine.New(contentFS,
		vitrine.WithLogger(logger),
		vitrine.WithDev(cfg.Dev),
		vitrine.WithOnline(cfg.Online),
		vitrine.WithStylesheet(cfg.Stylesheet),
	)
	if err := app.Reload(); err != nil {
		logger.Error("load content", "dir", cfg.ContentDir, "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Handler(),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", cfg.Addr, "content", cfg.ContentDir, "dev", cfg.Dev)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("stopped")
}
