// Command useai-mcp serves the use-ai operations as MCP tools over stdio.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nailen1/use-ai/pkg/config"
	"github.com/nailen1/use-ai/pkg/mcpserver"
	"github.com/nailen1/use-ai/pkg/useai"
)

const version = "0.1.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: useai-mcp [flags]\n\nServe list_models, test_connectivity and send_prompt as MCP tools on stdin/stdout.\n\nFlags:\n")
		flag.PrintDefaults()
	}

	configPath := flag.String("config", "", "path to configuration file (default: useai.yaml if present)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	verbose := flag.Bool("verbose", false, "log debug output to stderr")
	flag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(os.Stderr, *verbose)

	if err := run(*configPath, log); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes text logs to w. Verbose enables debug records such as
// the remaining rate limit quota after each completion.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(configPath string, log *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := useai.NewClient(cfg, nil)
	if err != nil {
		return err
	}

	svc := useai.NewService(client, useai.ServiceOptions{
		DefaultModel: cfg.DefaultModel,
		Log:          log,
	})

	log.Info("serving MCP on stdio", "base_url", cfg.BaseURL, "default_model", cfg.DefaultModel)

	err = mcpserver.New("use-ai", version, svc).Serve(ctx, os.Stdin, os.Stdout)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadConfig resolves the config file: an explicit path must exist,
// otherwise useai.yaml is used when present, else built-in defaults.
func loadConfig(explicit string) (config.Config, error) {
	if explicit != "" {
		return config.LoadConfig(explicit)
	}

	if _, err := os.Stat("useai.yaml"); err == nil {
		return config.LoadConfig("useai.yaml")
	}

	return config.Default(), nil
}
