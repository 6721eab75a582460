package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/adapter/http/middleware"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/metrics"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// APIResponse is the envelope of every response body. Data is omitted on errors.
type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

func newAPIResponse(code int, data interface{}, message string) APIResponse {
	return APIResponse{
		StatusCode: code,
		Data:       data,
		Message:    message,
		Success:    code < http.StatusBadRequest,
	}
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondOK(w http.ResponseWriter, code int, data interface{}, message string) {
	respondWithJSON(w, code, newAPIResponse(code, data, message))
}

// errorStatus maps a usecase error onto an HTTP status and a metrics label.
// Unknown errors are internal.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrStorage):
		return http.StatusInternalServerError, "storage"
	case errors.Is(err, domain.ErrRepository):
		return http.StatusInternalServerError, "repository"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// responder carries what every handler needs to answer errors.
type responder struct {
	logger  *logger.Logger
	metrics *metrics.MetricsManager
}

// respondWithError writes the error envelope. Client errors keep their own
// message; internal errors answer with defaultMessage and log the cause.
func (h responder) respondWithError(w http.ResponseWriter, r *http.Request, err error, defaultMessage string) {
	code, errType := errorStatus(err)
	route := routeOf(r)
	h.metrics.APIError(route, errType)

	message := err.Error()
	if code >= http.StatusInternalServerError {
		h.logger.Error(defaultMessage,
			zap.String("route", route),
			zap.String("user_id", middleware.UserIDFromContext(r.Context())),
			zap.Error(err))
		message = defaultMessage
	} else {
		h.logger.Debug("Request rejected", zap.String("route", route), zap.Int("status", code), zap.Error(err))
	}
	respondWithJSON(w, code, newAPIResponse(code, nil, message))
}

// badRequest reports malformed request bodies that never reach a usecase.
func (h responder) badRequest(w http.ResponseWriter, r *http.Request, message string) {
	h.metrics.APIError(routeOf(r), "invalid_input")
	respondWithJSON(w, http.StatusBadRequest, newAPIResponse(http.StatusBadRequest, nil, message))
}

func routeOf(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		return rctx.RoutePattern()
	}
	return r.URL.Path
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func parseIntQueryParam(r *http.Request, key string, defaultValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	valInt, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return valInt
}

func pageFromQuery(r *http.Request) domain.Page {
	return domain.Page{
		Page:  parseIntQueryParam(r, "page", 1),
		Limit: parseIntQueryParam(r, "limit", domain.DefaultPageLimit),
	}.Normalize()
}

// PagedResult is the data of paginated list responses.
type PagedResult struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}
