package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Collection interface {
	Use() *mongo.Collection
	GetByID(ctx context.Context, id primitive.ObjectID) *mongo.SingleResult
	Aggregate(ctx context.Context, pipeline mongo.Pipeline) (*mongo.Cursor, error)
	NewDocument(ctx context.Context, data interface{}) (*mongo.InsertOneResult, error)
}

// collection is the shared Collection implementation bound to a database handle
type collection struct {
	CollectionName string
	database       *mongo.Database
}

func (c *collection) Use() *mongo.Collection {
	return c.database.Collection(c.CollectionName)
}

func (c *collection) GetByID(ctx context.Context, id primitive.ObjectID) *mongo.SingleResult {
	cursor := c.Use().FindOne(ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (c *collection) Aggregate(ctx context.Context, pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := c.Use().Aggregate(ctx, pipeline)
	return cursor, err
}

func (c *collection) NewDocument(ctx context.Context, data interface{}) (*mongo.InsertOneResult, error) {
	result, err := c.Use().InsertOne(ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}
