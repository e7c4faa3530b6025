package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pinkpay/offlinepay/pkg/api"
)

// HealthHandler answers liveness probes. Wallets also hit this endpoint
// to decide whether they are online.
type HealthHandler struct {
	logger *slog.Logger
}

// NewHealthHandler creates a new handler for health checks.
func NewHealthHandler(logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		logger: logger,
	}
}

// Health handles GET /healthz
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthResponse{
		Status: "ok",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode health response", slog.Any("error", err))
	}
}
