package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"go.uber.org/zap"
)

// HealthCheck is a named dependency probe.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthHandler struct {
	logger  *logger.Logger
	checks  []HealthCheck
	timeout time.Duration
}

func NewHealthHandler(log *logger.Logger, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{logger: log.Named("HealthHandler"), checks: checks, timeout: 3 * time.Second}
}

// HandleHealth runs every check and answers 503 if any fails.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	code := http.StatusOK
	for _, c := range h.checks {
		if err := c.Check(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("check", c.Name), zap.Error(err))
			status[c.Name] = "down"
			code = http.StatusServiceUnavailable
			continue
		}
		status[c.Name] = "up"
	}

	message := "Service is healthy"
	if code != http.StatusOK {
		message = "Service is unhealthy"
	}
	respondWithJSON(w, code, APIResponse{StatusCode: code, Data: status, Message: message, Success: code == http.StatusOK})
}
