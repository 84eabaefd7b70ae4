package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/roster/internal/client/api"
	"github.com/iudanet/roster/internal/client/cache"
	"github.com/iudanet/roster/internal/client/cli"
	"github.com/iudanet/roster/internal/client/iocli"
	"github.com/iudanet/roster/internal/client/storage/boltdb"
	"github.com/iudanet/roster/internal/config"
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
	// Окружение задает значения по умолчанию, флаги их переопределяют
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	showVersion := flag.Bool("version", false, "Show version information")
	flag.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "API base URL")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to local mutation journal")
	flag.DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout")
	flag.TextVar(&cfg.Color, "color", cfg.Color, "Colorize output: auto, always or never")
	flag.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: DEBUG, INFO, WARN or ERROR")
	flag.Usage = func() {
		cli.PrintUsage(os.Stderr)
	}

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		return 0
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(os.Stderr)
		return 1
	}
	command := args[0]

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// Ctrl+C отменяет текущий запрос и завершает watch
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем журнал мутаций
	journal, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := journal.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.ServerURL, cfg.HTTPTimeout)
	collection := cache.New(apiClient, journal, logger)

	console := iocli.NewStdio()
	app := cli.New(console, collection, journal, cli.ColorEnabled(cfg.Color, console))

	logger.Debug("Running command", "command", command, "server", cfg.ServerURL)

	if err := app.Run(ctx, command, args[1:]); err != nil {
		if errors.Is(err, cli.ErrUnknownCommand) {
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
			cli.PrintUsage(os.Stderr)
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func printVersion() {
	fmt.Printf("Roster Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
