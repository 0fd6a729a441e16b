package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/twstock/tracker/internal/logger"
	"github.com/twstock/tracker/internal/session"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Test connectivity to the backend proxy",
	Long:  "Walk the proxy's health endpoints and report whether it is reachable.",
	RunE:  runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	log := logger.Must(debug)
	defer log.Sync()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sess := session.New(log)
	sess.SetProxyURL(cfg.Proxy.BaseURL)

	if err := sess.Probe(ctx); err != nil {
		return err
	}

	fmt.Printf("Proxy OK: %s\n", sess.Client().BaseURL())
	return nil
}
