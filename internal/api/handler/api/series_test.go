// internal/api/handler/api/series_test.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/twstock/tracker/internal/api/response"
	"github.com/twstock/tracker/internal/metrics"
	"github.com/twstock/tracker/internal/series"
)

func seriesHandlerForProxy(t *testing.T, proxyHandler http.HandlerFunc) *SeriesHandler {
	t.Helper()
	sess := connectedSession(t, proxyHandler)

	cfg := series.DefaultConfig()
	cfg.FetchInterval = 0
	agg := series.New(cfg, sess, zap.NewNop())
	return NewSeriesHandler(agg, metrics.NewRegistry())
}

func TestSeriesHandler_Get(t *testing.T) {
	h := seriesHandlerForProxy(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/realtime/") {
			fmt.Fprint(w, `{"success":true,"data":{"msgArray":[{"c":"2330","n":"台積電","z":"608.50","y":"600.00"}]}}`)
			return
		}
		fmt.Fprint(w, `{"success":true,"data":[]}`)
	})

	req := httptest.NewRequest("GET", "/api/v1/series/2330?date=2026-08-28", nil)
	w := httptest.NewRecorder()
	h.Get(w, req, "2330")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp response.SuccessResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	data := resp.Data.(map[string]any)
	s := data["series"].(map[string]any)
	if s["Symbol"] != "2330" {
		t.Errorf("expected symbol 2330, got %v", s["Symbol"])
	}
	points := s["Points"].([]any)
	if len(points) != 1 {
		t.Errorf("expected the synthetic current point only, got %d points", len(points))
	}
}

func TestSeriesHandler_Get_MissingDate(t *testing.T) {
	h := seriesHandlerForProxy(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("GET", "/api/v1/series/2330", nil)
	w := httptest.NewRecorder()
	h.Get(w, req, "2330")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSeriesHandler_Get_BadDate(t *testing.T) {
	h := seriesHandlerForProxy(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("GET", "/api/v1/series/2330?date=28-08-2026", nil)
	w := httptest.NewRecorder()
	h.Get(w, req, "2330")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp response.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error.Code != "CONFIG_INVALID" {
		t.Errorf("expected CONFIG_INVALID, got %s", resp.Error.Code)
	}
}

func TestSeriesHandler_Get_UnknownSymbol(t *testing.T) {
	h := seriesHandlerForProxy(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/realtime/") {
			fmt.Fprint(w, `{"success":true,"data":{"msgArray":[]}}`)
			return
		}
		fmt.Fprint(w, `{"success":true,"data":[]}`)
	})

	req := httptest.NewRequest("GET", "/api/v1/series/9999?date=2026-08-28", nil)
	w := httptest.NewRecorder()
	h.Get(w, req, "9999")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
