// internal/api/handler/api/probe.go
package api

import (
	"net/http"

	"github.com/twstock/tracker/internal/api/response"
	"github.com/twstock/tracker/internal/metrics"
	"github.com/twstock/tracker/internal/session"
)

// ProbeHandler handles connection probe requests
type ProbeHandler struct {
	sess *session.Session
	reg  *metrics.Registry
}

// NewProbeHandler creates a new probe handler
func NewProbeHandler(sess *session.Session, reg *metrics.Registry) *ProbeHandler {
	return &ProbeHandler{sess: sess, reg: reg}
}

// Trigger handles POST /api/v1/probe
func (h *ProbeHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := h.sess.Probe(r.Context()); err != nil {
		if h.reg != nil {
			h.reg.RecordProbe("failure")
		}
		response.Error(w, response.Status(err), err)
		return
	}

	if h.reg != nil {
		h.reg.RecordProbe("success")
	}
	response.JSON(w, http.StatusOK, map[string]any{
		"state": h.sess.State(),
	})
}

// State handles GET /api/v1/probe
func (h *ProbeHandler) State(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"state": h.sess.State(),
	}
	if err := h.sess.LastError(); err != nil {
		data["last_error"] = err.Error()
	}
	response.JSON(w, http.StatusOK, data)
}
