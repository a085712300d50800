package routers

import (
	"hospital-service/internal/app/services/core/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *doctors.DoctorController) {
	router.Post("/", doctorController.CreateDoctor)
	router.Get("/", doctorController.ListDoctors)
}
