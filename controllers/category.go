package controllers

import (
	"context"
	"net/http"

	"github.com/CPU-commits/Intranet_BCatalog/forms"
	"github.com/CPU-commits/Intranet_BCatalog/models"
	"github.com/CPU-commits/Intranet_BCatalog/res"
	"github.com/CPU-commits/Intranet_BCatalog/services"
	"github.com/CPU-commits/Intranet_BCatalog/smaps"
	"github.com/gin-gonic/gin"
)

type categoryService interface {
	CreateCategory(ctx context.Context, claims *services.Claims, categoryData *forms.CategoryForm) (*models.Category, *res.ErrorRes)
	GetCategories(ctx context.Context) ([]models.CategoryWithLookup, *res.ErrorRes)
}

type CategoryController struct {
	categoryService categoryService
}

// @Summary Create category
// @Desc    Create a category owned by the acting user
// @Tags    categories
// @Accept  json
// @Produce json
// @Param   category body     forms.CategoryForm true "Category"
// @Success 201      {object} res.Response{data=models.Category}
// @Failure 400      {object} res.Response{} "Bad request - Invalid body || Already exists"
// @Failure 401      {object} res.Response{} "Unauthorized"
// @Failure 404      {object} res.Response{} "User not found"
// @Security ApiKeyAuth
// @Router  /categories [post]
func (category *CategoryController) CreateCategory(c *gin.Context) {
	var categoryData forms.CategoryForm
	// Binding
	if err := c.ShouldBindJSON(&categoryData); err != nil {
		abortBadRequest(c, err)
		return
	}
	claims, _ := services.NewClaimsFromContext(c)
	// Insert
	created, errRes := category.categoryService.CreateCategory(c.Request.Context(), claims, &categoryData)
	if errRes != nil {
		abortWithErrorRes(c, errRes)
		return
	}
	// Response
	c.JSON(http.StatusCreated, &res.Response{
		Success:    true,
		StatusCode: http.StatusCreated,
		Message:    "Category created successfully",
		Data:       created,
	})
}

// @Summary Get categories
// @Desc    Get every category with its creator
// @Tags    categories
// @Accept  json
// @Produce json
// @Success 200 {object} res.Response{data=smaps.CategoriesMap}
// @Failure 400 {object} res.Response{} "Bad request - DB error"
// @Router  /categories [get]
func (category *CategoryController) GetCategories(c *gin.Context) {
	categories, errRes := category.categoryService.GetCategories(c.Request.Context())
	if errRes != nil {
		abortWithErrorRes(c, errRes)
		return
	}
	// Response
	c.JSON(http.StatusOK, &res.Response{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    "Categories retrieved successfully",
		Data: smaps.CategoriesMap{
			Categories: categories,
		},
	})
}

func NewCategoryController(categoryService categoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}
