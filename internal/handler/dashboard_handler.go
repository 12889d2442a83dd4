package handler

import (
	"net/http"
	"strconv"

	"github.com/acmecorp/finboard/internal/config"
	"github.com/acmecorp/finboard/internal/infra/observability"
	"github.com/acmecorp/finboard/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Dashboard — GET /v1/dashboard/*
// ============================================================

func summaryHandler(svc *service.DashboardService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/dashboard/summary")
		defer span.End()

		summary, err := svc.Summary(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

func revenueHandler(svc *service.DashboardService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/dashboard/revenue")
		defer span.End()

		points, err := svc.Revenue(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, points)
	}
}

func latestInvoicesHandler(svc *service.DashboardService, cfg *config.Config, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/dashboard/latest-invoices")
		defer span.End()

		limit := cfg.LatestLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= cfg.MaxPageSize {
				limit = n
			}
		}

		latest, err := svc.LatestInvoices(ctx, limit)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, latest)
	}
}

// queryMetricsHandler serves the ops snapshot of query counters.
func queryMetricsHandler(metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.QuerySnapshot())
	}
}
