package utils

import (
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/responses"
	"time"
)

// Mappers translate stored documents into their transport shape: the
// ObjectID becomes a hex string under `id` and timestamps are rendered as
// RFC 3339 text. Every other field passes through unchanged.

func BuildPatientResponse(model *models.Patient) *responses.Patient {
	return &responses.Patient{
		ID:                model.ID.Hex(),
		FirstName:         model.FirstName,
		LastName:          model.LastName,
		Email:             model.Email,
		Phone:             model.Phone,
		DateOfBirth:       model.DateOfBirth,
		Gender:            model.Gender,
		Address:           model.Address,
		InsuranceProvider: model.InsuranceProvider,
		InsuranceNumber:   model.InsuranceNumber,
		Notes:             model.Notes,
	}
}

func BuildDoctorResponse(model *models.Doctor) *responses.Doctor {
	return &responses.Doctor{
		ID:         model.ID.Hex(),
		FirstName:  model.FirstName,
		LastName:   model.LastName,
		Email:      model.Email,
		Phone:      model.Phone,
		Department: model.Department,
		Title:      model.Title,
	}
}

func BuildAppointmentResponse(model *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:              model.ID.Hex(),
		PatientID:       model.PatientID,
		DoctorID:        model.DoctorID,
		StartTime:       model.StartTime.Format(time.RFC3339),
		DurationMinutes: model.DurationMinutes,
		Reason:          model.Reason,
		Status:          model.Status,
	}
}
