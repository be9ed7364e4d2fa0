package services

import (
	"context"

	"github.com/CPU-commits/Intranet_BCatalog/forms"
	"github.com/CPU-commits/Intranet_BCatalog/models"
	"github.com/CPU-commits/Intranet_BCatalog/res"
)

type CategoryService struct {
	users      UserFinder
	categories CategoryStore
}

func (c *CategoryService) CreateCategory(
	ctx context.Context,
	claims *Claims,
	categoryData *forms.CategoryForm,
) (*models.Category, *res.ErrorRes) {
	user, errRes := getActingUser(ctx, c.users, claims)
	if errRes != nil {
		return nil, errRes
	}

	category := models.NewCategory(categoryData.Name, user.ID)
	if err := c.categories.InsertCategory(ctx, category); err != nil {
		return nil, writeError("insert category", category.Name, err)
	}
	return category, nil
}

func (c *CategoryService) GetCategories(ctx context.Context) ([]models.CategoryWithLookup, *res.ErrorRes) {
	categories, err := c.categories.GetCategories(ctx)
	if err != nil {
		return nil, storeError("get categories", err)
	}
	return categories, nil
}

func NewCategoryService(users UserFinder, categories CategoryStore) *CategoryService {
	return &CategoryService{
		users:      users,
		categories: categories,
	}
}
