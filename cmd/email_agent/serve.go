package main

import (
	"context"
	"fmt"

	"github.com/jonathan/interview-mailer/internal/composer"
	"github.com/jonathan/interview-mailer/internal/config"
	"github.com/jonathan/interview-mailer/internal/llm"
	"github.com/jonathan/interview-mailer/internal/logging"
	"github.com/jonathan/interview-mailer/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes POST /generate_email/ along with health and metrics endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client, err := llm.NewClient(context.Background(), cfg.ModelConfig())
	if err != nil {
		return fmt.Errorf("failed to create llm client: %w", err)
	}
	defer func() { _ = client.Close() }()

	c, err := composer.New(client, logger.Named("composer"))
	if err != nil {
		return fmt.Errorf("failed to create composer: %w", err)
	}

	logger.Info("model client ready",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
	)

	srv := server.New(server.Config{Port: cfg.Server.Port}, c, logger.Named("server"))
	return srv.Start()
}
