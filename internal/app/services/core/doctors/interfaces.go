package doctors

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.CreatedRecord, error)
	ListDoctors(ctx context.Context, limit int64) ([]responses.Doctor, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) (string, error)
	FindAll(ctx context.Context, limit int64) ([]models.Doctor, error)
	Count(ctx context.Context) (int64, error)
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}
