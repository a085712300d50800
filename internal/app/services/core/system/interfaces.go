package system

import (
	"context"
	"hospital-service/internal/pkg/dto/responses"
)

type SystemUsecase interface {
	GetDiagnostics(ctx context.Context) *responses.Diagnostics
	GetStats(ctx context.Context) (*responses.Stats, error)
}
