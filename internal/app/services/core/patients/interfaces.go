package patients

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.CreatedRecord, error)
	ListPatients(ctx context.Context, limit int64) ([]responses.Patient, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) (string, error)
	FindAll(ctx context.Context, limit int64) ([]models.Patient, error)
	Count(ctx context.Context) (int64, error)
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}
