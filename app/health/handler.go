package health

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mytheresa/go-catalog-service/app/api"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether the store answers.
type Pinger func(ctx context.Context) error

type Response struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthHandler struct {
	ping Pinger
	log  *zap.Logger
}

func NewHealthHandler(ping Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, log: log}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	response := Response{Status: "healthy", Database: "up", Timestamp: time.Now().UTC()}
	status := http.StatusOK

	if err := h.ping(ctx); err != nil {
		h.log.Warn("database ping failed", zap.Error(err))
		response.Status = "unhealthy"
		response.Database = "down"
		status = http.StatusServiceUnavailable
	}

	api.WriteJSON(w, status, response)
}
