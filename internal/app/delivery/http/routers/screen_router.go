package routers

import (
	"clinic-dashboard/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.Index)
	router.Post("/", patientController.Submit)
	router.Post("/cancel", patientController.Cancel)
	router.Post("/{id}/edit", patientController.Edit)
	router.Post("/{id}/delete", patientController.Delete)
}

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.Index)
	router.Post("/", doctorController.Submit)
	router.Post("/cancel", doctorController.Cancel)
	router.Post("/{id}/edit", doctorController.Edit)
	router.Post("/{id}/delete", doctorController.Delete)
}

func attachInvoiceRoutes(router chi.Router, invoiceController *controllers.InvoiceController) {
	router.Get("/", invoiceController.Index)
	router.Post("/", invoiceController.Submit)
	router.Post("/cancel", invoiceController.Cancel)
	router.Post("/{id}/edit", invoiceController.Edit)
	router.Post("/{id}/delete", invoiceController.Delete)
}
