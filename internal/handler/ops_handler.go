package handler

import (
	"net/http"

	"github.com/acmecorp/finboard/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Operational endpoints + dev bootstrap
// ============================================================

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// readyzHandler pings the document store; the service is not ready to serve
// queries while the store is unreachable.
func readyzHandler(store Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
			return
		}
		if err := store.Ping(r.Context()); err != nil {
			logger.Warn("readiness ping failed", zap.Error(err))
			writeError(w, http.StatusServiceUnavailable, "document store unreachable")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// seedHandler resets the store to fixture data. Route is registered only
// when seeding is enabled.
func seedHandler(svc *service.SeedService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/seed")
		defer span.End()

		result, err := svc.Reset(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
