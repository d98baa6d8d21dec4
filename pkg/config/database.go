package config

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectAttempts = 5
	connectTimeout  = 10 * time.Second
	retryBackoff    = 2 * time.Second
)

// DB holds the database connection.
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// InitDB connects to MongoDB with bounded retry and verifies the connection
// with a ping before returning.
func InitDB(cfg *Config, logger zerolog.Logger) (*DB, error) {
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI environment variable not set")
	}

	var client *mongo.Client
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		client, lastErr = connect(cfg.MongoURI)
		if lastErr == nil {
			break
		}
		logger.Warn().
			Err(lastErr).
			Int("attempt", attempt).
			Int("max_attempts", connectAttempts).
			Msg("MongoDB connection failed, retrying")
		time.Sleep(retryBackoff)
	}
	if lastErr != nil {
		return nil, errors.Wrap(lastErr, "connecting to MongoDB")
	}

	logger.Info().Str("database", cfg.MongoDatabase).Msg("connected to MongoDB")
	return &DB{
		Client:   client,
		Database: client.Database(cfg.MongoDatabase),
	}, nil
}

func connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// CloseDB closes the database connection.
func (db *DB) CloseDB(logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Client.Disconnect(ctx); err != nil {
		logger.Error().Err(err).Msg("error closing MongoDB connection")
		return
	}
	logger.Info().Msg("MongoDB connection closed")
}
