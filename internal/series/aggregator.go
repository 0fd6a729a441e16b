// Package series assembles a tracked price series from the live quote
// and a handful of historical business days, then derives its change
// analytics. This is the pipeline's only component with sequencing and
// timing responsibility.
package series

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/twstock/tracker/internal/calendar"
	"github.com/twstock/tracker/internal/core"
	"github.com/twstock/tracker/internal/session"
)

// Point labels, matching what the exchange-facing UI shows.
const (
	LabelAnchor  = "指定日"
	LabelCurrent = "當前"
)

// Config holds aggregator tuning.
type Config struct {
	CandidateDays int           // business days generated from the anchor
	ResolveDays   int           // leading candidates actually fetched
	FetchInterval time.Duration // spacing between history calls
}

// DefaultConfig returns the production tuning: 21 candidates, the
// first 5 resolved, one second between history calls.
func DefaultConfig() Config {
	return Config{
		CandidateDays: 21,
		ResolveDays:   5,
		FetchInterval: time.Second,
	}
}

// Aggregator orchestrates quote fetch, business-day scheduling and
// rate-limited history fetches into a finished Series.
type Aggregator struct {
	cfg    Config
	sess   *session.Session
	logger *zap.Logger
	now    func() time.Time
}

// New creates an aggregator bound to a session.
func New(cfg Config, sess *session.Session, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		cfg:    cfg,
		sess:   sess,
		logger: logger,
		now:    time.Now,
	}
}

// BuildSeries assembles the series for a symbol anchored at the given
// date. The quote fetch and an empty final series are fatal; an
// individual missing history day only thins the series out.
func (a *Aggregator) BuildSeries(ctx context.Context, symbol string, anchor time.Time) (*core.Series, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	if !a.sess.State().Ready() {
		return nil, core.ErrNotConnected
	}
	client := a.sess.Client()
	if client == nil {
		return nil, core.ErrProxyUnset
	}

	start := time.Now()
	a.logger.Info("building series",
		zap.String("symbol", symbol),
		zap.String("anchor", anchor.Format(calendar.DateFormat)),
	)

	quote, err := client.FetchQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	candidates := calendar.Generate(anchor, a.cfg.CandidateDays)
	if len(candidates) > a.cfg.ResolveDays {
		candidates = candidates[:a.cfg.ResolveDays]
	}

	points := make([]core.SeriesPoint, 0, len(candidates)+1)
	gate := NewGate(a.cfg.FetchInterval)

	for i, date := range candidates {
		if err := gate.Wait(ctx); err != nil {
			return nil, err
		}

		point, ok := client.FetchDay(ctx, symbol, date)
		if !ok || point.Close <= 0 {
			a.logger.Debug("history day unavailable",
				zap.String("symbol", symbol),
				zap.String("date", date),
			)
			continue
		}

		points = append(points, core.SeriesPoint{
			HistoryPoint: *point,
			Label:        dayLabel(i),
			DisplayDate:  displayDate(date),
			Index:        i,
		})
	}

	// The exchange publishes history with a lag; append the live price
	// as its own point unless a resolved day already covers today.
	today := a.today()
	if !hasDate(points, today) {
		points = append(points, core.SeriesPoint{
			HistoryPoint: core.HistoryPoint{
				Date:   today,
				Close:  quote.Price,
				Source: quote.Source,
			},
			Label:       LabelCurrent,
			DisplayDate: displayDate(today),
			Index:       len(points),
		})
	}

	if len(points) == 0 {
		return nil, core.ErrNoData
	}

	result := &core.Series{
		Symbol:     symbol,
		Name:       quote.Name,
		Market:     quote.Market,
		Source:     quote.Source,
		UpdateTime: quote.UpdateTime,
		Points:     points,
	}

	if err := finalize(result); err != nil {
		return nil, err
	}

	a.logger.Info("series built",
		zap.String("symbol", symbol),
		zap.Int("points", len(result.Points)),
		zap.Int("valid", result.ValidCount),
		zap.Float64("change_percent", result.ChangePercent),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

// finalize derives the change analytics from the valid points. With a
// single valid point it doubles as both endpoints and the change is
// zero, which is accepted rather than an error.
func finalize(s *core.Series) error {
	var first, last *core.SeriesPoint
	for i := range s.Points {
		p := &s.Points[i]
		if !p.IsValid() {
			continue
		}
		if first == nil {
			first = p
		}
		last = p
		s.ValidCount++
	}

	if first == nil {
		return core.ErrNoData
	}

	s.StartPrice = first.Close
	s.EndPrice = last.Close
	s.Change = last.Close - first.Close
	s.ChangePercent = (last.Close - first.Close) / first.Close * 100
	s.StartDate = first.DisplayDate
	s.EndDate = last.DisplayDate
	return nil
}

func dayLabel(i int) string {
	if i == 0 {
		return LabelAnchor
	}
	return fmt.Sprintf("第%d個營業日", i)
}

func hasDate(points []core.SeriesPoint, date string) bool {
	for _, p := range points {
		if p.Date == date {
			return true
		}
	}
	return false
}

// today returns the current calendar date in the exchange's timezone;
// the exchange publishes against its own clock, not the host's.
func (a *Aggregator) today() string {
	return a.now().In(taipei).Format(calendar.DateFormat)
}

// displayDate renders an ISO date the way the zh-TW locale does
// (no zero padding).
func displayDate(date string) string {
	t, err := time.Parse(calendar.DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format("2006/1/2")
}

var taipei = loadTaipei()

func loadTaipei() *time.Location {
	loc, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		return time.Local
	}
	return loc
}
