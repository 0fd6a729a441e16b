package twse

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/twstock/tracker/internal/core"
)

// Daily table column offsets, per the exchange's published layout.
const (
	colSymbol = 0
	colVolume = 2
	colOpen   = 3
	colHigh   = 4
	colLow    = 5
	colClose  = 8
	minCols   = 9
)

// FetchDay fetches one day's published record for a symbol. All
// failure modes (transport error, non-2xx status, malformed body,
// missing symbol row, short row) resolve to ok=false rather than an
// error: a missing day is recoverable and the caller decides whether
// it matters.
func (c *Client) FetchDay(ctx context.Context, symbol, date string) (*core.HistoryPoint, bool) {
	compact := strings.ReplaceAll(date, "-", "")
	url := fmt.Sprintf("%s/api/twse/stock/daily/%s?date=%s", c.baseURL, symbol, compact)

	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false
	}

	var result dailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, false
	}
	if !result.Success {
		return nil, false
	}

	for _, row := range result.Data {
		if len(row) < minCols || row[colSymbol] != symbol {
			continue
		}
		return &core.HistoryPoint{
			Date:   date,
			Close:  parseFloat(row[colClose]),
			Open:   parseFloat(row[colOpen]),
			High:   parseFloat(row[colHigh]),
			Low:    parseFloat(row[colLow]),
			Volume: parseInt64(row[colVolume]),
			Source: "TWSE-歷史",
		}, true
	}

	return nil, false
}

// Wire type for the daily endpoint: a table of per-symbol rows with
// locale-formatted numeric strings.
type dailyResponse struct {
	Success bool       `json:"success"`
	Data    [][]string `json:"data"`
}
