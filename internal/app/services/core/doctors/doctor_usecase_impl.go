package doctors

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
)

type doctorUsecase struct {
	DoctorRepository DoctorRepository
}

func NewDoctorUsecase(doctorMongoRepository DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorMongoRepository,
	}
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.CreatedRecord, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doctorModel := &models.Doctor{
		FirstName:  request.FirstName,
		LastName:   request.LastName,
		Email:      request.Email,
		Phone:      request.Phone,
		Department: request.Department,
		Title:      request.Title,
	}

	doctorID, err := uc.DoctorRepository.Create(ctx, doctorModel)
	if err != nil {
		return nil, err
	}
	return &responses.CreatedRecord{ID: doctorID}, nil
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context, limit int64) ([]responses.Doctor, error) {
	doctorModels, err := uc.DoctorRepository.FindAll(ctx, limit)
	if err != nil {
		return nil, err
	}

	doctorResponses := make([]responses.Doctor, 0, len(doctorModels))
	for i := range doctorModels {
		doctorResponses = append(doctorResponses, *utils.BuildDoctorResponse(&doctorModels[i]))
	}
	return doctorResponses, nil
}
