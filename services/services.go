package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/CPU-commits/Intranet_BCatalog/models"
	"github.com/CPU-commits/Intranet_BCatalog/res"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type UserFinder interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type CategoryStore interface {
	GetCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	InsertCategory(ctx context.Context, category *models.Category) error
	GetCategories(ctx context.Context) ([]models.CategoryWithLookup, error)
}

type CourseStore interface {
	GetCourse(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	InsertCourse(ctx context.Context, course *models.Course) error
	UpdateCourse(ctx context.Context, current *models.Course, update *models.CourseUpdate) (*models.Course, error)
	GetCourseWithCreator(ctx context.Context, id primitive.ObjectID) (*models.CourseWithLookup, error)
	GetCourses(ctx context.Context, query *models.CourseQuery) ([]models.CourseWithLookup, error)
}

func getActingUser(ctx context.Context, users UserFinder, claims *Claims) (*models.User, *res.ErrorRes) {
	if claims == nil {
		return nil, res.NotFound("User not found")
	}
	idObjUser, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, res.NotFound("User not found")
	}
	user, err := users.GetUser(ctx, idObjUser)
	if err != nil {
		return nil, storeError("get user", err)
	}
	if user == nil {
		return nil, res.NotFound("User not found")
	}
	return user, nil
}

// storeError keeps the store message and reports it as a bad request
func storeError(op string, err error) *res.ErrorRes {
	zap.L().Error("store operation failed", zap.String("op", op), zap.Error(err))
	return &res.ErrorRes{
		Err:        err,
		StatusCode: http.StatusBadRequest,
	}
}

func writeError(op, value string, err error) *res.ErrorRes {
	if mongo.IsDuplicateKeyError(err) {
		return res.BadRequest(fmt.Sprintf("%s already exists", value))
	}
	return storeError(op, err)
}
