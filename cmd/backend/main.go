package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"
	cli "github.com/urfave/cli/v3"

	configloader "github.com/numanijaz119/Foxingfit-Smart-generator/external/config"
	"github.com/numanijaz119/Foxingfit-Smart-generator/external/httpapi"
	repositoryimpl "github.com/numanijaz119/Foxingfit-Smart-generator/external/repository"
	"github.com/numanijaz119/Foxingfit-Smart-generator/external/seed"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/config"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/generator"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

func main() {
	app := &cli.Command{
		Name:  "backend",
		Usage: "Foxing Fit workout generation backend",
		Commands: []*cli.Command{
			serveCmd(),
			seedCmd(),
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API server",
		Action: func(ctx context.Context, _ *cli.Command) error {
			cfg := mustLoadConfig()
			initLogger(cfg)
			slog.Info("startup: configuration loaded", "env", cfg.Env)

			injector := setupDI(cfg)
			server, err := do.Invoke[*httpapi.Server](injector)
			if err != nil {
				return fmt.Errorf("failed to build server: %w", err)
			}

			runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Run(runCtx)
		},
	}
}

func seedCmd() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load content fixtures into the database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Usage: "Path to a YAML fixture file", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := mustLoadConfig()
			initLogger(cfg)

			injector := setupDI(cfg)
			repo, err := do.Invoke[repository.Repository](injector)
			if err != nil {
				return fmt.Errorf("failed to connect database: %w", err)
			}

			return seed.NewLoader(repo).ApplyFile(ctx, cmd.String("file"))
		},
	}
}

func mustLoadConfig() *config.Config {
	cfg, err := configloader.Load()
	if err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	repositoryimpl.RegisterDI(injector)
	generator.RegisterDI(injector)
	httpapi.RegisterDI(injector)

	return injector
}
