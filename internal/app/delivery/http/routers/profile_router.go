package routers

import (
	"clinic-dashboard/internal/app/delivery/http/controllers"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, exportLimiter func(http.Handler) http.Handler, profileController *controllers.ProfileController) {
	router.Get("/", profileController.Index)
	router.Get("/{id}", profileController.Show)
	router.Get("/{id}/version", profileController.Version)
	router.Post("/{id}/delete", profileController.Delete)
	router.With(exportLimiter).Get("/{id}/export/{format}", profileController.Export)
}

func attachAPIRoutes(router chi.Router, exportLimiter func(http.Handler) http.Handler, apiController *controllers.APIController) {
	router.Get("/profiles/{id}", apiController.GetProfile)
	router.With(exportLimiter).Post("/profiles/{id}/export/{format}/archive", apiController.ArchiveExport)
}
