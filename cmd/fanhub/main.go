package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/fanhubapp/fanhub-client/internal/app"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
)

func main() {
	log := logger.New(logger.Opts{})

	client := fx.New(
		fx.Logger(log),
		app.App,
	)

	if err := client.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
	case <-client.Done():
	}

	if err := client.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}
}
