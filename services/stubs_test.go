package services

import (
	"context"

	"github.com/CPU-commits/Intranet_BCatalog/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubUsers struct {
	users map[primitive.ObjectID]*models.User
	err   error
}

func (s *stubUsers) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[id], nil
}

type stubCategories struct {
	categories map[primitive.ObjectID]*models.Category
	inserted   []*models.Category
	insertErr  error
	listErr    error
}

func (s *stubCategories) GetCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	return s.categories[id], nil
}

func (s *stubCategories) InsertCategory(ctx context.Context, category *models.Category) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	category.ID = primitive.NewObjectID()
	s.inserted = append(s.inserted, category)
	return nil
}

func (s *stubCategories) GetCategories(ctx context.Context) ([]models.CategoryWithLookup, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var categories []models.CategoryWithLookup
	for _, category := range s.inserted {
		categories = append(categories, models.CategoryWithLookup{ID: category.ID, Name: category.Name})
	}
	return categories, nil
}

type stubCourses struct {
	courses    map[primitive.ObjectID]*models.Course
	inserted   []*models.Course
	updates    int
	updateErr  error
	lastQuery  *models.CourseQuery
	listResult []models.CourseWithLookup
	listErr    error
}

func newStubCourses() *stubCourses {
	return &stubCourses{courses: map[primitive.ObjectID]*models.Course{}}
}

func (s *stubCourses) GetCourse(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	course, ok := s.courses[id]
	if !ok {
		return nil, nil
	}
	copy := *course
	return &copy, nil
}

func (s *stubCourses) InsertCourse(ctx context.Context, course *models.Course) error {
	if err := course.BeforeInsert(); err != nil {
		return err
	}
	course.ID = primitive.NewObjectID()
	s.inserted = append(s.inserted, course)
	s.courses[course.ID] = course
	return nil
}

func (s *stubCourses) UpdateCourse(ctx context.Context, current *models.Course, update *models.CourseUpdate) (*models.Course, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	updated := *current
	updated.Tags = append([]models.Tag(nil), current.Tags...)
	if err := updated.ApplyUpdate(update); err != nil {
		return nil, err
	}
	s.updates++
	s.courses[updated.ID] = &updated
	return &updated, nil
}

func (s *stubCourses) GetCourseWithCreator(ctx context.Context, id primitive.ObjectID) (*models.CourseWithLookup, error) {
	course, ok := s.courses[id]
	if !ok {
		return nil, nil
	}
	return &models.CourseWithLookup{
		ID:              course.ID,
		Title:           course.Title,
		CategoryID:      course.CategoryID,
		Tags:            course.Tags,
		StartDate:       course.StartDate,
		EndDate:         course.EndDate,
		DurationInWeeks: course.DurationInWeeks,
		Details:         course.Details,
		CreatedBy:       &models.SimpleUser{ID: course.CreatedBy},
	}, nil
}

func (s *stubCourses) GetCourses(ctx context.Context, query *models.CourseQuery) ([]models.CourseWithLookup, error) {
	s.lastQuery = query
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listResult, nil
}
