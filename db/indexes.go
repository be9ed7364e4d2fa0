package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UniqueIndex struct {
	Collection string
	Field      string
}

func EnsureIndexes(ctx context.Context, database *mongo.Database, indexes []UniqueIndex) ([]string, error) {
	var created []string
	for _, index := range indexes {
		name, err := database.Collection(index.Collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: index.Field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return created, err
		}
		created = append(created, index.Collection+"."+name)
	}
	return created, nil
}
