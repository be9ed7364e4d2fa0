package repositories

import (
	"context"

	"github.com/CPU-commits/Intranet_BCatalog/db"
	"github.com/CPU-commits/Intranet_BCatalog/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryRepository struct {
	categories models.Collection
}

func (c *CategoryRepository) GetCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category *models.Category
	cursor := c.categories.GetByID(ctx, id)
	if err := cursor.Decode(&category); err != nil {
		if db.IsNoDocuments(err) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

func (c *CategoryRepository) InsertCategory(ctx context.Context, category *models.Category) error {
	result, err := c.categories.NewDocument(ctx, category)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		category.ID = id
	}
	return nil
}

func (c *CategoryRepository) GetCategories(ctx context.Context) ([]models.CategoryWithLookup, error) {
	categories := make([]models.CategoryWithLookup, 0)

	pipeline := mongo.Pipeline{}
	pipeline = append(pipeline, getLookupCreatedBy()...)
	cursor, err := c.categories.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func NewCategoryRepository(categories models.Collection) *CategoryRepository {
	return &CategoryRepository{
		categories: categories,
	}
}
