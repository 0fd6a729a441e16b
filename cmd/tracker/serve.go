package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/twstock/tracker/internal/api"
	"github.com/twstock/tracker/internal/logger"
	"github.com/twstock/tracker/internal/metrics"
	"github.com/twstock/tracker/internal/series"
	"github.com/twstock/tracker/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tracker HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Initialize logger
	log := logger.Must(debug)
	defer log.Sync()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	log.Info("starting tracker server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	sess := session.New(log)
	if cfg.Proxy.BaseURL != "" {
		sess.SetProxyURL(cfg.Proxy.BaseURL)

		// An unreachable proxy at startup is not fatal; clients can
		// re-probe through the API once the proxy comes up.
		switch {
		case cfg.Proxy.Manual:
			if err := sess.ForceManual(); err != nil {
				return err
			}
		default:
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			if err := sess.Probe(ctx); err != nil {
				log.Warn("startup probe failed", zap.Error(err))
			}
			cancel()
		}
	} else {
		log.Warn("no proxy base URL configured")
	}

	agg := series.New(series.Config{
		CandidateDays: cfg.Series.CandidateDays,
		ResolveDays:   cfg.Series.ResolveDays,
		FetchInterval: cfg.Series.FetchInterval,
	}, sess, log)

	var reg *metrics.Registry
	metricsPath := ""
	if cfg.Metrics.Enabled {
		reg = metrics.NewRegistry()
		metricsPath = cfg.Metrics.Path
	}

	server, err := api.NewServer(api.Config{
		Host:        cfg.Server.Host,
		Port:        cfg.Server.Port,
		APIKey:      cfg.Server.APIKey,
		MetricsPath: metricsPath,
	}, api.Dependencies{
		Session:    sess,
		Aggregator: agg,
		Metrics:    reg,
	}, log)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Error("server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down tracker server")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}
