package handler

import (
	"net/http"

	"github.com/acmecorp/finboard/internal/config"
	"github.com/acmecorp/finboard/internal/search"
	"github.com/acmecorp/finboard/internal/service"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Invoices table — GET /v1/invoices*
// ============================================================

func listInvoicesHandler(svc *service.DashboardService, cfg *config.Config, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/invoices")
		defer span.End()

		query := r.URL.Query().Get("query")
		page, pageSize := parsePagination(r, cfg)
		span.SetAttributes(attribute.String("query", query), attribute.Int("page", page))

		pred := search.NewInvoicePredicate(query)
		rows, err := svc.ListInvoicesPage(ctx, pred, page, pageSize)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

func invoicePagesHandler(svc *service.DashboardService, cfg *config.Config, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/invoices/pages")
		defer span.End()

		query := r.URL.Query().Get("query")
		_, pageSize := parsePagination(r, cfg)

		pred := search.NewInvoicePredicate(query)
		pages, err := svc.TotalPages(ctx, pred, pageSize)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"total_pages": pages})
	}
}

func getInvoiceHandler(svc *service.DashboardService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/invoices/{invoiceID}")
		defer span.End()

		id := chi.URLParam(r, "invoiceID")
		span.SetAttributes(attribute.String("invoice.id", id))

		detail, err := svc.FindInvoiceByID(ctx, id)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}
