package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/acmecorp/finboard/internal/config"
	"github.com/acmecorp/finboard/internal/domain"

	"go.uber.org/zap"
)

// ============================================================
// Shared helper functions
// ============================================================

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePagination reads ?page= and ?page_size= with the configured defaults.
// Out-of-range values fall back rather than erroring; the service still
// validates what it receives.
func parsePagination(r *http.Request, cfg *config.Config) (page, pageSize int) {
	page = 1
	pageSize = cfg.PageSize
	if v := r.URL.Query().Get("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= cfg.MaxPageSize {
			pageSize = ps
		}
	}
	return
}

// handleServiceError maps domain errors to HTTP responses. Raw store/driver
// detail never reaches the response body.
func handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	var notFound *domain.ErrNotFound
	var unavailable *domain.ErrStoreUnavailable
	var query *domain.ErrQuery
	var validation *domain.ErrValidation

	switch {
	case errors.As(err, &notFound):
		logger.Debug("not found", zap.String("error", err.Error()))
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &unavailable):
		logger.Error("store unavailable", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "document store unavailable")
	case errors.As(err, &query):
		logger.Error("query failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, query.Error())
	case errors.As(err, &validation):
		logger.Debug("validation error", zap.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("unhandled error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
