package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rogerio-castellano/employee-portal/internal/config"
	"github.com/rogerio-castellano/employee-portal/internal/logging"
	"github.com/rogerio-castellano/employee-portal/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Employee Portal API
// @version 3.0.0
// @description Demo employee management service: health check, product listing and a demo login.
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "employee-portal",
		Short:         "Employee management demo HTTP service",
		Long:          "Serves the employee portal pages, the product listing and the demo login API.\nSettings are read from the environment (PORT, APP_VERSION, LOG_LEVEL, ...).",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServer,
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		return err
	}
	defer func() { _ = logger.Sync() }()

	app, err := server.NewApp(cfg, logger)
	if err != nil {
		logger.Error("could not initialize app", zap.Error(err))
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return err
	}

	logger.Info("server stopped")
	return nil
}
