package middlewares

import (
	"hospital-service/internal/app/config"

	"go.uber.org/zap"
)

type contextKey string

const ContextRequestIDKey contextKey = "requestID"

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(log *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            log,
		InternalConfig: internalConfig,
	}
}
