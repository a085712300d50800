package system

import (
	"context"
	"fmt"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/services/core/appointments"
	"hospital-service/internal/app/services/core/doctors"
	"hospital-service/internal/app/services/core/patients"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const maxDiagnosticsCollections = 10

type systemUsecase struct {
	MongoClient           *mongo.Client
	DriverConfig          *config.DriverConfig
	PatientRepository     patients.PatientRepository
	DoctorRepository      doctors.DoctorRepository
	AppointmentRepository appointments.AppointmentRepository
}

func NewSystemUsecase(
	mongoClient *mongo.Client,
	driverConfig *config.DriverConfig,
	patientMongoRepository patients.PatientRepository,
	doctorMongoRepository doctors.DoctorRepository,
	appointmentMongoRepository appointments.AppointmentRepository,
) SystemUsecase {
	return &systemUsecase{
		MongoClient:           mongoClient,
		DriverConfig:          driverConfig,
		PatientRepository:     patientMongoRepository,
		DoctorRepository:      doctorMongoRepository,
		AppointmentRepository: appointmentMongoRepository,
	}
}

// GetDiagnostics never fails; a broken store connection is reported in the
// payload instead.
func (uc *systemUsecase) GetDiagnostics(ctx context.Context) *responses.Diagnostics {
	diagnostics := &responses.Diagnostics{
		Backend:          constvars.DiagnosticsBackendRunning,
		Database:         constvars.DiagnosticsStatusNotAvailable,
		DatabaseURLSet:   utils.EnvIsSet("DATABASE_URL"),
		DatabaseNameSet:  utils.EnvIsSet("DATABASE_NAME"),
		ConnectionStatus: constvars.DiagnosticsStatusNotConnected,
		Collections:      []string{},
	}

	if err := uc.MongoClient.Ping(ctx, nil); err != nil {
		return diagnostics
	}
	diagnostics.Database = constvars.DiagnosticsStatusAvailable
	diagnostics.ConnectionStatus = constvars.DiagnosticsStatusConnected

	collections, err := uc.MongoClient.Database(uc.DriverConfig.MongoDB.DbName).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		diagnostics.Database = fmt.Sprintf(constvars.DiagnosticsStatusConnectedWithError, exceptions.TruncateDevMessage(err.Error()))
		return diagnostics
	}
	if len(collections) > maxDiagnosticsCollections {
		collections = collections[:maxDiagnosticsCollections]
	}
	diagnostics.Collections = collections
	return diagnostics
}

func (uc *systemUsecase) GetStats(ctx context.Context) (*responses.Stats, error) {
	patientCount, err := uc.PatientRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	doctorCount, err := uc.DoctorRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	appointmentCount, err := uc.AppointmentRepository.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.Stats{
		Patients:     patientCount,
		Doctors:      doctorCount,
		Appointments: appointmentCount,
	}, nil
}
