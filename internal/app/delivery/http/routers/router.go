package routers

import (
	"clinic-dashboard/internal/app/config"
	"clinic-dashboard/internal/app/delivery/http/controllers"
	"clinic-dashboard/internal/app/delivery/http/middlewares"
	"clinic-dashboard/internal/pkg/constvars"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Patient *controllers.PatientController
	Doctor  *controllers.DoctorController
	Invoice *controllers.InvoiceController
	Profile *controllers.ProfileController
	API     *controllers.APIController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	normalLimiter, exportLimiter := middlewares.CreateRateLimiters()
	router.Use(normalLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/patients", constvars.StatusSeeOther)
	})
	router.Get("/health", ctrls.API.Health)

	router.Route("/patients", func(r chi.Router) {
		attachPatientRoutes(r, ctrls.Patient)
	})
	router.Route("/doctors", func(r chi.Router) {
		attachDoctorRoutes(r, ctrls.Doctor)
	})
	router.Route("/invoices", func(r chi.Router) {
		attachInvoiceRoutes(r, ctrls.Invoice)
	})
	router.Route("/profiles", func(r chi.Router) {
		attachProfileRoutes(r, exportLimiter, ctrls.Profile)
	})

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		attachAPIRoutes(r, exportLimiter, ctrls.API)
	})
}
