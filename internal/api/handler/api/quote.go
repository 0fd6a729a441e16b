// internal/api/handler/api/quote.go
package api

import (
	"net/http"

	"github.com/twstock/tracker/internal/api/response"
	"github.com/twstock/tracker/internal/core"
	"github.com/twstock/tracker/internal/metrics"
	"github.com/twstock/tracker/internal/session"
)

// QuoteHandler handles real-time quote requests
type QuoteHandler struct {
	sess *session.Session
	reg  *metrics.Registry
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(sess *session.Session, reg *metrics.Registry) *QuoteHandler {
	return &QuoteHandler{sess: sess, reg: reg}
}

// Get handles GET /api/v1/quote/{symbol}
func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request, symbol string) {
	if !h.sess.State().Ready() {
		response.Error(w, response.Status(core.ErrNotConnected), core.ErrNotConnected)
		return
	}
	client := h.sess.Client()
	if client == nil {
		response.Error(w, response.Status(core.ErrProxyUnset), core.ErrProxyUnset)
		return
	}

	quote, err := client.FetchQuote(r.Context(), symbol)
	if err != nil {
		if h.reg != nil {
			h.reg.RecordQuote("error")
		}
		response.Error(w, response.Status(err), err)
		return
	}

	if h.reg != nil {
		h.reg.RecordQuote("success")
	}
	response.JSON(w, http.StatusOK, map[string]any{
		"quote": quote,
	})
}
