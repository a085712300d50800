package database

import (
	"context"
	"hospital-service/internal/app/config"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// NewMongoDB dials the document store. An unreachable store is not fatal:
// the service still serves, the /test endpoint reports the degraded state
// and store-backed operations fail per request.
func NewMongoDB(driverConfig *config.DriverConfig, zapLog *zap.Logger) *mongo.Client {
	dbOptions := options.Client().ApplyURI(driverConfig.MongoDB.URI)
	client, err := mongo.Connect(context.TODO(), dbOptions)
	if err != nil {
		log.Fatalf("Failed to initialize mongo client: %s", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = client.Ping(ctx, nil)
	if err != nil {
		zapLog.Warn("Mongo database is not reachable, continuing without verified connection", zap.Error(err))
		return client
	}

	zapLog.Info("Successfully connected to mongo database")
	return client
}
