package handler

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/adapter/http/middleware"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/metrics"
)

type DashboardHandler struct {
	responder
	dashboard DashboardService
}

func NewDashboardHandler(dashboard DashboardService, log *logger.Logger, m *metrics.MetricsManager) *DashboardHandler {
	return &DashboardHandler{
		responder: responder{logger: log.Named("DashboardHTTPHandler"), metrics: m},
		dashboard: dashboard,
	}
}

func (h *DashboardHandler) HandleChannelStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.ChannelStats(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		h.respondWithError(w, r, err, "Failed to fetch channel stats")
		return
	}
	respondOK(w, http.StatusOK, stats, "Channel stats fetched successfully")
}

func (h *DashboardHandler) HandleChannelVideos(w http.ResponseWriter, r *http.Request) {
	ids, err := h.dashboard.ChannelVideos(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		h.respondWithError(w, r, err, "Failed to fetch channel videos")
		return
	}
	respondOK(w, http.StatusOK, ids, "Channel videos fetched successfully")
}
