package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"call-scripter/internal/app"
	"call-scripter/internal/config"
	"call-scripter/internal/logging"
)

const shutdownTimeout = 30 * time.Second

var port string

func init() {
	Cmd.Flags().StringVarP(&port, "port", "p", "", "Listen port, overrides server.port")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP relay",
	Long: `Start the HTTP relay

- POST /api/upload_record stores a recording
- POST /api/get_transcript transcribes it
- POST /api/get_script, /api/get_script_v2 and /api/get_reformatted_script generate text`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")

		cfg, keys, err := config.InitializeConfig(configFile)
		if err != nil {
			return err
		}
		if port != "" {
			cfg.Server.Port = port
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		if err := keys.RequireFor(cfg); err != nil {
			return err
		}

		logger, err := logging.NewLogger(cfg.Logging.Development, cfg.Logging.Level)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv, err := app.InitializeServer(ctx, cfg, keys, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize server: %w", err)
		}

		logger.Info("Starting call scripter",
			zap.String("address", srv.Addr()),
			zap.String("transcription_provider", cfg.Transcription.Provider),
			zap.String("generation_provider", cfg.Generation.Provider),
			zap.String("storage_backend", cfg.Storage.Backend),
		)

		select {
		case err := <-srv.Start():
			if err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
