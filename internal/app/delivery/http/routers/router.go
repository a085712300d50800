package routers

import (
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/services/core/appointments"
	"hospital-service/internal/app/services/core/doctors"
	"hospital-service/internal/app/services/core/patients"
	"hospital-service/internal/app/services/core/system"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLog *logrus.Logger,
	middlewares *middlewares.Middlewares,
	systemController *system.SystemController,
	patientController *patients.PatientController,
	doctorController *doctors.DoctorController,
	appointmentController *appointments.AppointmentController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.AccessLog(accessLog))

	attachSystemRoutes(router, systemController)

	router.Route("/patients", func(r chi.Router) {
		attachPatientRoutes(r, patientController)
	})

	router.Route("/doctors", func(r chi.Router) {
		attachDoctorRoutes(r, doctorController)
	})

	router.Route("/appointments", func(r chi.Router) {
		attachAppointmentRoutes(r, appointmentController)
	})
}
