package main

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/delivery/http/routers"
	"hospital-service/internal/app/drivers/database"
	"hospital-service/internal/app/drivers/logger"
	"hospital-service/internal/app/services/core/appointments"
	"hospital-service/internal/app/services/core/doctors"
	"hospital-service/internal/app/services/core/patients"
	"hospital-service/internal/app/services/core/system"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: " + err.Error())
		}
	}()
	log.Info("Server listening on " + internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown: " + err.Error())
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	accessLog := logrus.New()

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, patientMongoRepository, doctorMongoRepository)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// System
	systemUsecase := system.NewSystemUsecase(bootstrap.MongoDB, bootstrap.DriverConfig, patientMongoRepository, doctorMongoRepository, appointmentMongoRepository)
	systemController := system.NewSystemController(bootstrap.Logger, systemUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, accessLog, middlewares, systemController, patientController, doctorController, appointmentController)
}
