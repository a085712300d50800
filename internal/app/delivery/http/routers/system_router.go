package routers

import (
	"hospital-service/internal/app/services/core/system"

	"github.com/go-chi/chi/v5"
)

func attachSystemRoutes(router chi.Router, systemController *system.SystemController) {
	router.Get("/", systemController.Home)
	router.Get("/test", systemController.GetDiagnostics)
	router.Get("/stats", systemController.GetStats)
}
