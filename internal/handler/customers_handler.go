package handler

import (
	"net/http"

	"github.com/acmecorp/finboard/internal/search"
	"github.com/acmecorp/finboard/internal/service"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Customers — GET /v1/customers*
// ============================================================

func listCustomersHandler(svc *service.CustomerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/customers")
		defer span.End()

		names, err := svc.ListAllCustomers(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, names)
	}
}

func customerTableHandler(svc *service.CustomerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/customers/table")
		defer span.End()

		query := r.URL.Query().Get("query")
		span.SetAttributes(attribute.String("query", query))

		pred := search.NewCustomerPredicate(query)
		rows, err := svc.CustomerSummaries(ctx, pred)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}
