package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/simplemsg-hq/simplemsg-go/internal/app"
	"github.com/simplemsg-hq/simplemsg-go/internal/config"
	"github.com/simplemsg-hq/simplemsg-go/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "webhookd start failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := logger.Init(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	// Secrets (api_key, webhook_secret) stay out of the logs.
	logger.InfoObj("webhookd starting", "config", map[string]any{
		"app_name":        cfg.AppName,
		"app_env":         cfg.Env,
		"listen_addr":     cfg.ListenAddr,
		"forwarders_file": cfg.ForwardersFile,
		"storage_type":    cfg.StorageType,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	receiver, err := app.NewReceiver(ctx, cfg, logger.ZapAdapter{})
	if err != nil {
		logger.ErrorObj("failed to initialize receiver", "error", err)
		return err
	}

	if err := receiver.Run(ctx); err != nil {
		return fmt.Errorf("receiver run: %w", err)
	}

	return nil
}
