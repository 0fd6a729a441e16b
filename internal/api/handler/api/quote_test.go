// internal/api/handler/api/quote_test.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/twstock/tracker/internal/api/response"
	"github.com/twstock/tracker/internal/session"
)

func connectedSession(t *testing.T, proxyHandler http.HandlerFunc) *session.Session {
	t.Helper()
	proxy := httptest.NewServer(proxyHandler)
	t.Cleanup(proxy.Close)

	sess := session.New(zap.NewNop())
	sess.SetProxyURL(proxy.URL)
	if err := sess.ForceManual(); err != nil {
		t.Fatal(err)
	}
	return sess
}

func TestQuoteHandler_Get(t *testing.T) {
	sess := connectedSession(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"data":{"msgArray":[{"c":"2330","n":"台積電","z":"608.50","y":"600.00"}]}}`)
	})

	h := NewQuoteHandler(sess, nil)

	req := httptest.NewRequest("GET", "/api/v1/quote/2330", nil)
	w := httptest.NewRecorder()
	h.Get(w, req, "2330")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp response.SuccessResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	data := resp.Data.(map[string]any)
	quote := data["quote"].(map[string]any)
	if quote["Symbol"] != "2330" {
		t.Errorf("expected symbol 2330, got %v", quote["Symbol"])
	}
}

func TestQuoteHandler_Get_NotConnected(t *testing.T) {
	sess := session.New(zap.NewNop())
	h := NewQuoteHandler(sess, nil)

	req := httptest.NewRequest("GET", "/api/v1/quote/2330", nil)
	w := httptest.NewRecorder()
	h.Get(w, req, "2330")

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestQuoteHandler_Get_SymbolNotFound(t *testing.T) {
	sess := connectedSession(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"data":{"msgArray":[]}}`)
	})

	h := NewQuoteHandler(sess, nil)

	req := httptest.NewRequest("GET", "/api/v1/quote/9999", nil)
	w := httptest.NewRecorder()
	h.Get(w, req, "9999")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var resp response.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error.Code != "SYMBOL_NOT_FOUND" {
		t.Errorf("expected SYMBOL_NOT_FOUND, got %s", resp.Error.Code)
	}
}
