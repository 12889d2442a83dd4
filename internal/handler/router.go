package handler

import (
	"context"
	"net/http"

	"github.com/acmecorp/finboard/internal/config"
	"github.com/acmecorp/finboard/internal/infra/observability"
	"github.com/acmecorp/finboard/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// Pinger reports document-store reachability for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(
	dashSvc *service.DashboardService,
	custSvc *service.CustomerService,
	seedSvc *service.SeedService,
	store Pinger,
	cfg *config.Config,
	metrics *observability.Metrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler())
	r.Get("/readyz", readyzHandler(store, logger))
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {

		// Dashboard cards and chart
		r.Get("/dashboard/summary", summaryHandler(dashSvc, logger))
		r.Get("/dashboard/revenue", revenueHandler(dashSvc, logger))
		r.Get("/dashboard/latest-invoices", latestInvoicesHandler(dashSvc, cfg, logger))

		// Invoices table
		r.Get("/invoices", listInvoicesHandler(dashSvc, cfg, logger))
		r.Get("/invoices/pages", invoicePagesHandler(dashSvc, cfg, logger))
		r.Get("/invoices/{invoiceID}", getInvoiceHandler(dashSvc, logger))

		// Customers
		r.Get("/customers", listCustomersHandler(custSvc, logger))
		r.Get("/customers/table", customerTableHandler(custSvc, logger))

		// Ops
		r.Get("/metrics/queries", queryMetricsHandler(metrics))

		// Dev bootstrap
		if cfg.SeedEnabled {
			r.Post("/seed", seedHandler(seedSvc, logger))
		}
	})

	return r
}
