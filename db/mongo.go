package db

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Connection retry
const CONNECT_MAX_ELAPSED = time.Second * 30

type MongoConnection struct {
	client   *mongo.Client
	database *mongo.Database
}

func (m *MongoConnection) Database() *mongo.Database {
	return m.database
}

func (m *MongoConnection) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func IsNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// Client Connection
func NewConnection(ctx context.Context, uri, database string) (*MongoConnection, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.MaxElapsedTime = CONNECT_MAX_ELAPSED
	ping := func() error {
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			zap.L().Warn("mongo ping failed", zap.Error(err))
			return err
		}
		return nil
	}
	if err := backoff.Retry(ping, backoff.WithContext(retryBackoff, ctx)); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	zap.L().Info("mongo connected", zap.String("database", database))

	return &MongoConnection{
		client:   client,
		database: client.Database(database),
	}, nil
}
