// internal/api/handler/api/series.go
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/twstock/tracker/internal/api/response"
	"github.com/twstock/tracker/internal/calendar"
	"github.com/twstock/tracker/internal/core"
	"github.com/twstock/tracker/internal/metrics"
	"github.com/twstock/tracker/internal/series"
)

// SeriesHandler handles tracked series requests
type SeriesHandler struct {
	agg *series.Aggregator
	reg *metrics.Registry
}

// NewSeriesHandler creates a new series handler
func NewSeriesHandler(agg *series.Aggregator, reg *metrics.Registry) *SeriesHandler {
	return &SeriesHandler{agg: agg, reg: reg}
}

// Get handles GET /api/v1/series/{symbol}?date=YYYY-MM-DD
func (h *SeriesHandler) Get(w http.ResponseWriter, r *http.Request, symbol string) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		response.Error(w, http.StatusBadRequest, core.WrapError(core.ErrConfigMissing,
			fmt.Errorf("date query parameter is required")))
		return
	}

	anchor, err := time.Parse(calendar.DateFormat, dateParam)
	if err != nil {
		response.Error(w, http.StatusBadRequest, core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("date must be YYYY-MM-DD, got %q", dateParam)))
		return
	}

	start := time.Now()
	result, err := h.agg.BuildSeries(r.Context(), symbol, anchor)
	if err != nil {
		if h.reg != nil {
			h.reg.RecordSeries("error", 0, 0)
		}
		response.Error(w, response.Status(err), err)
		return
	}

	if h.reg != nil {
		h.reg.RecordSeries("success", len(result.Points), time.Since(start).Seconds())
	}
	response.JSON(w, http.StatusOK, map[string]any{
		"series": result,
	})
}
