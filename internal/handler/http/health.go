package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/grid-daemon/internal/logger"
)

const (
	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
)

// healthResponse is the body of GET /api/health.
type healthResponse struct {
	Status    string `json:"status"`
	Validator string `json:"validator"`
	Error     string `json:"error,omitempty"`
}

// getHealth reports 200 when the validator is reachable and 503 otherwise.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	resp := healthResponse{
		Status:    healthStatusOK,
		Validator: h.prober.Endpoint(),
	}
	status := http.StatusOK

	if err := h.prober.Probe(r.Context()); err != nil {
		log.Warn().Err(err).Str("validator", resp.Validator).Msg("validator is not reachable")
		resp.Status = healthStatusUnavailable
		resp.Error = err.Error()
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("error encoding health response")
	}
}
