package patients

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
)

type patientUsecase struct {
	PatientRepository PatientRepository
}

func NewPatientUsecase(patientMongoRepository PatientRepository) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientMongoRepository,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.CreatedRecord, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patientModel := &models.Patient{
		FirstName:         request.FirstName,
		LastName:          request.LastName,
		Email:             request.Email,
		Phone:             request.Phone,
		DateOfBirth:       request.DateOfBirth,
		Gender:            request.Gender,
		Address:           request.Address,
		InsuranceProvider: request.InsuranceProvider,
		InsuranceNumber:   request.InsuranceNumber,
		Notes:             request.Notes,
	}

	patientID, err := uc.PatientRepository.Create(ctx, patientModel)
	if err != nil {
		return nil, err
	}
	return &responses.CreatedRecord{ID: patientID}, nil
}

func (uc *patientUsecase) ListPatients(ctx context.Context, limit int64) ([]responses.Patient, error) {
	patientModels, err := uc.PatientRepository.FindAll(ctx, limit)
	if err != nil {
		return nil, err
	}

	patientResponses := make([]responses.Patient, 0, len(patientModels))
	for i := range patientModels {
		patientResponses = append(patientResponses, *utils.BuildPatientResponse(&patientModels[i]))
	}
	return patientResponses, nil
}
