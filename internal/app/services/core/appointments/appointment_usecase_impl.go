package appointments

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/core/doctors"
	"hospital-service/internal/app/services/core/patients"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type appointmentUsecase struct {
	AppointmentRepository AppointmentRepository
	PatientRepository     patients.PatientRepository
	DoctorRepository      doctors.DoctorRepository
}

func NewAppointmentUsecase(
	appointmentMongoRepository AppointmentRepository,
	patientMongoRepository patients.PatientRepository,
	doctorMongoRepository doctors.DoctorRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentMongoRepository,
		PatientRepository:     patientMongoRepository,
		DoctorRepository:      doctorMongoRepository,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreatedRecord, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	// Best-effort referential probe. A reference that does not parse as an
	// ObjectID skips its lookup entirely; a parsable reference must exist.
	// The probe is not atomic with the insert below.
	if patientID, err := primitive.ObjectIDFromHex(request.PatientID); err == nil {
		exists, err := uc.PatientRepository.ExistsByID(ctx, patientID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, exceptions.ErrPatientNotFound(nil)
		}
	}
	if doctorID, err := primitive.ObjectIDFromHex(request.DoctorID); err == nil {
		exists, err := uc.DoctorRepository.ExistsByID(ctx, doctorID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, exceptions.ErrDoctorNotFound(nil)
		}
	}

	appointmentModel := &models.Appointment{
		PatientID:       request.PatientID,
		DoctorID:        request.DoctorID,
		StartTime:       request.StartTime,
		DurationMinutes: constvars.AppointmentDefaultDurationMinutes,
		Reason:          request.Reason,
		Status:          request.Status,
	}
	if request.DurationMinutes != nil {
		appointmentModel.DurationMinutes = *request.DurationMinutes
	}
	if appointmentModel.Status == "" {
		appointmentModel.Status = constvars.AppointmentStatusScheduled
	}

	appointmentID, err := uc.AppointmentRepository.Create(ctx, appointmentModel)
	if err != nil {
		return nil, err
	}
	return &responses.CreatedRecord{ID: appointmentID}, nil
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, limit int64) ([]responses.Appointment, error) {
	appointmentModels, err := uc.AppointmentRepository.FindAll(ctx, limit)
	if err != nil {
		return nil, err
	}

	appointmentResponses := make([]responses.Appointment, 0, len(appointmentModels))
	for i := range appointmentModels {
		appointmentResponses = append(appointmentResponses, *utils.BuildAppointmentResponse(&appointmentModels[i]))
	}
	return appointmentResponses, nil
}
