// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"

	"github.com/danielhkuo/camp-apply/cliparse"
	"github.com/danielhkuo/camp-apply/db"
	"github.com/danielhkuo/camp-apply/lifecycle"
	"github.com/danielhkuo/camp-apply/router"
	"github.com/danielhkuo/camp-apply/views"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return 1
	}

	opts := slogcolor.DefaultOptions
	opts.Level = cfg.LogLevel
	opts.MsgColor = color.New(color.FgMagenta)
	opts.SrcFileMode = slogcolor.Nop
	slog.SetDefault(slog.New(slogcolor.NewHandler(os.Stderr, opts)))

	// Connect to the store
	openCtx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	store, err := db.Open(openCtx, cfg)
	cancel()
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		return 1
	}
	slog.Info("Database ready", "type", cfg.DatabaseType)

	renderer, err := views.NewRenderer()
	if err != nil {
		slog.Error("template parsing failed", "error", err)
		store.Close(context.Background())
		return 1
	}

	mux := router.NewRouter(store, renderer, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The controller closes the store on every exit path
	ctrl := lifecycle.New(mux, store, cfg, os.Stdin, os.Stdout)
	if err := ctrl.Run(ctx); err != nil {
		slog.Error("Server closed", "error", err)
		return 1
	}
	return 0
}
