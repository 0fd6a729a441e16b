package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/twstock/tracker/internal/config"
	"github.com/twstock/tracker/internal/core"
	"github.com/twstock/tracker/internal/session"
)

var (
	cfgFile  string
	debug    bool
	proxyURL string
	manual   bool
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "tracker - Taiwan stock price series tracker",
	Long: `tracker fetches real-time and historical Taiwan stock quotes through a
backend proxy and assembles short tracked price series around an anchor date.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
	rootCmd.PersistentFlags().StringVar(&proxyURL, "proxy", "", "proxy base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&manual, "manual", false, "skip the probe and force manual mode")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration for a command run,
// applying the --proxy and --manual overrides on top of the file or defaults.
func loadConfig(log *zap.Logger) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.Defaults()
		log.Debug("no config file specified, using defaults")
	}

	if proxyURL != "" {
		cfg.Proxy.BaseURL = proxyURL
	}
	if manual {
		cfg.Proxy.Manual = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// connect prepares a session against the configured proxy: probe by
// default, or skip straight to manual mode when requested.
func connect(ctx context.Context, cfg *config.Config, log *zap.Logger) (*session.Session, error) {
	sess := session.New(log)
	if cfg.Proxy.BaseURL == "" {
		return nil, core.ErrProxyUnset
	}
	sess.SetProxyURL(cfg.Proxy.BaseURL)

	if cfg.Proxy.Manual {
		if err := sess.ForceManual(); err != nil {
			return nil, err
		}
		return sess, nil
	}

	if err := sess.Probe(ctx); err != nil {
		return nil, err
	}
	return sess, nil
}
