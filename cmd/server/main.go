package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/roster/internal/config"
	"github.com/iudanet/roster/internal/server"
	"github.com/iudanet/roster/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	showVersion := flag.Bool("version", false, "Show version information")
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to SQLite database")
	flag.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")
	flag.IntVar(&cfg.WriteRate, "write-rate", cfg.WriteRate, "Write requests allowed per client per window, 0 disables the limit")
	flag.DurationVar(&cfg.WriteWindow, "write-window", cfg.WriteWindow, "Write rate limit window")
	flag.BoolVar(&cfg.TrustProxy, "trust-proxy", cfg.TrustProxy, "Take client address from X-Forwarded-For / X-Real-IP (only behind a proxy)")
	flag.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: DEBUG, INFO, WARN or ERROR")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		return 0
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Roster server starting", "version", Version, "db", cfg.DBPath)

	store, err := sqlite.New(ctx, cfg.DBPath, logger)
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	router := server.NewRouter(ctx, logger, store, server.Options{
		DB:          store,
		Version:     Version,
		WriteRate:   cfg.WriteRate,
		WriteWindow: cfg.WriteWindow,
		TrustProxy:  cfg.TrustProxy,
	})

	srv := server.New(cfg.Addr, router, cfg.ShutdownTimeout, logger)
	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error("Server stopped with error", "error", err)
		return 1
	}

	logger.Info("Server stopped")
	return 0
}

func printVersion() {
	fmt.Printf("Roster Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
