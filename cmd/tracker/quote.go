package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/twstock/tracker/internal/logger"
)

var quoteCmd = &cobra.Command{
	Use:   "quote SYMBOL",
	Short: "Fetch the current quote for a stock",
	Long:  "Look the symbol up on the listed market first, then the over-the-counter market.",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	log := logger.Must(debug)
	defer log.Sync()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sess, err := connect(ctx, cfg, log)
	if err != nil {
		return err
	}

	q, err := sess.Client().FetchQuote(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("=== %s %s (%s) ===\n", q.Symbol, q.Name, q.Market)
	fmt.Printf("Price:  %.2f\n", q.Price)
	fmt.Printf("Change: %+.2f (%+.2f%%)\n", q.Change, q.ChangePercent)
	fmt.Printf("Open:   %.2f  High: %.2f  Low: %.2f\n", q.Open, q.High, q.Low)
	fmt.Printf("Volume: %d\n", q.Volume)
	fmt.Printf("Source: %s\n", q.Source)
	if q.UpdateTime != "" {
		fmt.Printf("Time:   %s\n", q.UpdateTime)
	}

	return nil
}
