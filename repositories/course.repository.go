package repositories

import (
	"context"
	"errors"

	"github.com/CPU-commits/Intranet_BCatalog/db"
	"github.com/CPU-commits/Intranet_BCatalog/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrCourseChanged = errors.New("Failed to update course!")

type CourseRepository struct {
	courses models.Collection
}

func (c *CourseRepository) GetCourse(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var course *models.Course
	cursor := c.courses.GetByID(ctx, id)
	if err := cursor.Decode(&course); err != nil {
		if db.IsNoDocuments(err) {
			return nil, nil
		}
		return nil, err
	}
	return course, nil
}

func (c *CourseRepository) InsertCourse(ctx context.Context, course *models.Course) error {
	if err := course.BeforeInsert(); err != nil {
		return err
	}
	result, err := c.courses.NewDocument(ctx, course)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		course.ID = id
	}
	return nil
}

// UpdateCourse applies the change set on top of current and writes it in a
// single statement. The write only matches while the stored document still
// has the updatedAt it was read with, so a concurrent change or a removed
// document yields ErrCourseChanged instead of a lost update.
func (c *CourseRepository) UpdateCourse(
	ctx context.Context,
	current *models.Course,
	update *models.CourseUpdate,
) (*models.Course, error) {
	updated := *current
	updated.Tags = append([]models.Tag(nil), current.Tags...)
	if err := updated.ApplyUpdate(update); err != nil {
		return nil, err
	}

	filter := getUpdateCourseFilter(current)
	set := bson.D{{
		Key: "$set",
		Value: bson.D{
			{Key: "title", Value: updated.Title},
			{Key: "instructor", Value: updated.Instructor},
			{Key: "categoryId", Value: updated.CategoryID},
			{Key: "price", Value: updated.Price},
			{Key: "tags", Value: updated.Tags},
			{Key: "startDate", Value: updated.StartDate},
			{Key: "endDate", Value: updated.EndDate},
			{Key: "language", Value: updated.Language},
			{Key: "provider", Value: updated.Provider},
			{Key: "durationInWeeks", Value: updated.DurationInWeeks},
			{Key: "details", Value: updated.Details},
			{Key: "updatedAt", Value: updated.UpdatedAt},
		},
	}}
	result, err := c.courses.Use().UpdateOne(ctx, filter, set)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrCourseChanged
	}
	return &updated, nil
}

// getUpdateCourseFilter pins the write to the updatedAt the course was read
// with. Documents stored without updatedAt match on the field being absent.
func getUpdateCourseFilter(current *models.Course) bson.D {
	updatedAt := bson.E{Key: "updatedAt", Value: current.UpdatedAt}
	if current.UpdatedAt.IsZero() {
		updatedAt.Value = bson.M{"$exists": false}
	}
	return bson.D{
		{Key: "_id", Value: current.ID},
		updatedAt,
	}
}

func (c *CourseRepository) GetCourseWithCreator(ctx context.Context, id primitive.ObjectID) (*models.CourseWithLookup, error) {
	var courses []models.CourseWithLookup

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	pipeline = append(pipeline, getLookupCreatedBy()...)
	cursor, err := c.courses.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, nil
	}
	return &courses[0], nil
}

func (c *CourseRepository) GetCourses(ctx context.Context, query *models.CourseQuery) ([]models.CourseWithLookup, error) {
	courses := make([]models.CourseWithLookup, 0)

	cursor, err := c.courses.Aggregate(ctx, getCoursesPipeline(query))
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func NewCourseRepository(courses models.Collection) *CourseRepository {
	return &CourseRepository{
		courses: courses,
	}
}
