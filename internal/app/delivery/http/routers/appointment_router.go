package routers

import (
	"hospital-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *appointments.AppointmentController) {
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/", appointmentController.ListAppointments)
}
