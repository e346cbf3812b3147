// Package root provides the root command for the protettorato server
package root

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"protettorato/internal/app"
	"protettorato/internal/config"
	"protettorato/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var port uint16

var rootCmd = &cobra.Command{
	Use:   "protettorato",
	Short: "Protettorato web backend",
	Long: `Serves the Protettorato landing page, health probes and the
Auth0 login redirect. Configuration is read from the environment.`,
	Args: cobra.NoArgs,
	Run:  runServer,
}

func init() {
	rootCmd.Flags().Uint16VarP(&port, "port", "p", 8080, "Server port (overrides PORT)")
}

func Execute() error {
	return rootCmd.Execute()
}

func runServer(cmd *cobra.Command, _ []string) {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", map[string]any{
			"error": err.Error(),
		})
	}
	logger.SetLevel(cfg.LogLevel)

	if cmd.Flags().Changed("port") {
		cfg.AppPort = port
	}

	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize app", map[string]any{
			"error": err.Error(),
		})
	}

	go func() {
		if err := application.Run(); err != nil {
			logger.Fatal("http server failed", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	logger.Info("protettorato listening", map[string]any{
		"port": cfg.AppPort,
	})

	<-ctx.Done()

	logger.Info("shutdown signal received", nil)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("graceful shutdown failed", map[string]any{
			"error": err.Error(),
		})
	}

	logger.Info("protettorato stopped cleanly", nil)
}
