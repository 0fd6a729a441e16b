package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/twstock/tracker/internal/calendar"
	"github.com/twstock/tracker/internal/logger"
	"github.com/twstock/tracker/internal/series"
)

var trackDate string

var trackCmd = &cobra.Command{
	Use:   "track SYMBOL",
	Short: "Build a tracked price series around an anchor date",
	Long: `Fetch the realtime quote for a symbol and resolve daily closes for the
business days following the anchor date, then print the assembled series.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().StringVar(&trackDate, "date", "", "anchor date YYYY-MM-DD (default today)")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	log := logger.Must(debug)
	defer log.Sync()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	anchor := time.Now()
	if trackDate != "" {
		anchor, err = time.Parse(calendar.DateFormat, trackDate)
		if err != nil {
			return fmt.Errorf("invalid anchor date (expected YYYY-MM-DD): %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sess, err := connect(ctx, cfg, log)
	if err != nil {
		return err
	}

	agg := series.New(series.Config{
		CandidateDays: cfg.Series.CandidateDays,
		ResolveDays:   cfg.Series.ResolveDays,
		FetchInterval: cfg.Series.FetchInterval,
	}, sess, log)

	s, err := agg.BuildSeries(ctx, args[0], anchor)
	if err != nil {
		return err
	}

	fmt.Printf("=== %s %s (%s) ===\n", s.Symbol, s.Name, s.Market)
	fmt.Printf("Anchor: %s  Source: %s\n", anchor.Format(calendar.DateFormat), s.Source)
	fmt.Println()
	for _, p := range s.Points {
		fmt.Printf("%-14s %-10s %10.2f %12d\n", p.Label, p.DisplayDate, p.Close, p.Volume)
	}
	fmt.Println()
	fmt.Printf("Points: %d valid\n", s.ValidCount)
	fmt.Printf("Start:  %.2f (%s)\n", s.StartPrice, s.StartDate)
	fmt.Printf("End:    %.2f (%s)\n", s.EndPrice, s.EndDate)
	fmt.Printf("Change: %+.2f (%+.2f%%)\n", s.Change, s.ChangePercent)

	return nil
}
