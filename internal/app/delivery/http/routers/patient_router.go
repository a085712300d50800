package routers

import (
	"hospital-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *patients.PatientController) {
	router.Post("/", patientController.CreatePatient)
	router.Get("/", patientController.ListPatients)
}
