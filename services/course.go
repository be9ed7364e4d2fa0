package services

import (
	"context"
	"errors"

	"github.com/CPU-commits/Intranet_BCatalog/forms"
	"github.com/CPU-commits/Intranet_BCatalog/models"
	"github.com/CPU-commits/Intranet_BCatalog/res"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var errUpdateCourse = errors.New("Failed to update course!")

type CourseService struct {
	users      UserFinder
	categories CategoryStore
	courses    CourseStore
}

func (c *CourseService) categoryExists(ctx context.Context, idCategory primitive.ObjectID) (bool, *res.ErrorRes) {
	category, err := c.categories.GetCategory(ctx, idCategory)
	if err != nil {
		return false, storeError("get category", err)
	}
	return category != nil, nil
}

func (c *CourseService) CreateCourse(
	ctx context.Context,
	claims *Claims,
	courseData *forms.CourseForm,
) (*models.Course, *res.ErrorRes) {
	idObjCategory, err := primitive.ObjectIDFromHex(courseData.CategoryID)
	if err != nil {
		return nil, res.BadRequest("Category not found")
	}
	exists, errRes := c.categoryExists(ctx, idObjCategory)
	if errRes != nil {
		return nil, errRes
	}
	if !exists {
		return nil, res.BadRequest("Category not found")
	}
	user, errRes := getActingUser(ctx, c.users, claims)
	if errRes != nil {
		return nil, errRes
	}

	course, err := courseData.ToCourse(user.ID)
	if err != nil {
		return nil, res.BadRequest(err.Error())
	}
	if err := c.courses.InsertCourse(ctx, course); err != nil {
		return nil, writeError("insert course", course.Title, err)
	}
	return course, nil
}

// UpdateCourse merges plain fields, the details patch, tag changes and the
// derived duration into one write. Every failure is a bad request carrying
// the underlying message.
func (c *CourseService) UpdateCourse(
	ctx context.Context,
	idCourse string,
	courseData *forms.UpdateCourseForm,
) (*models.CourseWithLookup, *res.ErrorRes) {
	idObjCourse, err := primitive.ObjectIDFromHex(idCourse)
	if err != nil {
		return nil, res.BadRequest(err.Error())
	}
	update, err := courseData.ToUpdate()
	if err != nil {
		return nil, res.BadRequest(err.Error())
	}

	current, err := c.courses.GetCourse(ctx, idObjCourse)
	if err != nil {
		return nil, storeError("get course", err)
	}
	if current == nil {
		return nil, res.BadRequest(errUpdateCourse.Error())
	}
	if update.CategoryID != nil && *update.CategoryID != current.CategoryID {
		exists, errRes := c.categoryExists(ctx, *update.CategoryID)
		if errRes != nil {
			return nil, errRes
		}
		if !exists {
			return nil, res.BadRequest("Category not found")
		}
	}

	updated, err := c.courses.UpdateCourse(ctx, current, update)
	if err != nil {
		title := current.Title
		if update.Title != nil {
			title = *update.Title
		}
		return nil, writeError("update course", title, err)
	}

	course, err := c.courses.GetCourseWithCreator(ctx, updated.ID)
	if err != nil {
		return nil, storeError("get course", err)
	}
	if course == nil {
		return nil, res.BadRequest(errUpdateCourse.Error())
	}
	return course, nil
}

// GetCourses hides the store error behind a fixed message
func (c *CourseService) GetCourses(
	ctx context.Context,
	query *models.CourseQuery,
) ([]models.CourseWithLookup, *res.ErrorRes) {
	courses, err := c.courses.GetCourses(ctx, query)
	if err != nil {
		zap.L().Error("get courses failed", zap.Error(err))
		return nil, res.BadRequest("Failed to fetch courses")
	}
	return courses, nil
}

func NewCourseService(users UserFinder, categories CategoryStore, courses CourseStore) *CourseService {
	return &CourseService{
		users:      users,
		categories: categories,
		courses:    courses,
	}
}
