package appointments

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreatedRecord, error)
	ListAppointments(ctx context.Context, limit int64) ([]responses.Appointment, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) (string, error)
	FindAll(ctx context.Context, limit int64) ([]models.Appointment, error)
	Count(ctx context.Context) (int64, error)
}
