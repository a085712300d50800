package config

import (
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap carries everything wired at process start into the route setup.
type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}
