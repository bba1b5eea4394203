package main

import (
	"fmt"

	"github.com/melissa/door-compliance/internal/config"
	"github.com/melissa/door-compliance/internal/schemas"
	"github.com/melissa/door-compliance/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for evaluating doors.

Operator accounts for /auth/login come from the config file; JWT_SECRET must be set in the environment.`,
	RunE: runServeCmd,
}

var (
	serveConfigPath string
	servePort       int
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file with operator accounts")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	port := servePort
	if !cmd.Flags().Changed("port") && cfg.Port != 0 {
		port = cfg.Port
	}

	schemaPath := cfg.SchemaPath
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.DoorParametersSchema)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	srv, err := server.New(server.Config{
		Port:        port,
		SchemaPath:  schemaPath,
		Concurrency: cfg.Concurrency,
		Accounts:    cfg.Accounts,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
