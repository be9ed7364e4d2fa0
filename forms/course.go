package forms

import (
	"github.com/CPU-commits/Intranet_BCatalog/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TagForm struct {
	Name      string `json:"name" binding:"required"`
	IsDeleted bool   `json:"isDeleted"`
}

type DetailsForm struct {
	Level       string `json:"level" binding:"required,oneof=Beginner Intermediate Advanced"`
	Description string `json:"description" binding:"required"`
}

type CourseForm struct {
	Title      string       `json:"title" binding:"required"`
	Instructor string       `json:"instructor" binding:"required"`
	CategoryID string       `json:"categoryId" binding:"required,objectId"`
	Price      *float64     `json:"price" binding:"required"`
	Tags       []TagForm    `json:"tags" binding:"required,dive"`
	StartDate  string       `json:"startDate" binding:"required,courseDate"`
	EndDate    string       `json:"endDate" binding:"required,courseDate"`
	Language   string       `json:"language" binding:"required"`
	Provider   string       `json:"provider" binding:"required"`
	Details    *DetailsForm `json:"details" binding:"required"`
}

func (f *CourseForm) ToCourse(createdBy primitive.ObjectID) (*models.Course, error) {
	categoryID, err := primitive.ObjectIDFromHex(f.CategoryID)
	if err != nil {
		return nil, err
	}
	tags := make([]models.Tag, 0, len(f.Tags))
	for _, tag := range f.Tags {
		tags = append(tags, models.Tag{
			Name:      tag.Name,
			IsDeleted: tag.IsDeleted,
		})
	}
	return &models.Course{
		Title:      f.Title,
		Instructor: f.Instructor,
		CategoryID: categoryID,
		Price:      *f.Price,
		Tags:       tags,
		StartDate:  f.StartDate,
		EndDate:    f.EndDate,
		Language:   f.Language,
		Provider:   f.Provider,
		Details: models.Details{
			Level:       f.Details.Level,
			Description: f.Details.Description,
		},
		CreatedBy: createdBy,
	}, nil
}

// Update views. Every field is optional.

type UpdateTagForm struct {
	Name      string `json:"name"`
	IsDeleted *bool  `json:"isDeleted"`
}

type UpdateDetailsForm struct {
	Level       *string `json:"level" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
	Description *string `json:"description"`
}

type UpdateCourseForm struct {
	Title      *string            `json:"title" binding:"omitempty,min=1"`
	Instructor *string            `json:"instructor" binding:"omitempty,min=1"`
	CategoryID *string            `json:"categoryId" binding:"omitempty,objectId"`
	Price      *float64           `json:"price"`
	Tags       []UpdateTagForm    `json:"tags" binding:"omitempty,dive"`
	StartDate  *string            `json:"startDate" binding:"omitempty,courseDate"`
	EndDate    *string            `json:"endDate" binding:"omitempty,courseDate"`
	Language   *string            `json:"language" binding:"omitempty,min=1"`
	Provider   *string            `json:"provider" binding:"omitempty,min=1"`
	Details    *UpdateDetailsForm `json:"details"`
}

func (f *UpdateCourseForm) ToUpdate() (*models.CourseUpdate, error) {
	update := &models.CourseUpdate{
		Title:      f.Title,
		Instructor: f.Instructor,
		Price:      f.Price,
		StartDate:  f.StartDate,
		EndDate:    f.EndDate,
		Language:   f.Language,
		Provider:   f.Provider,
	}
	if f.CategoryID != nil {
		categoryID, err := primitive.ObjectIDFromHex(*f.CategoryID)
		if err != nil {
			return nil, err
		}
		update.CategoryID = &categoryID
	}
	if f.Details != nil {
		update.Details = &models.DetailsPatch{
			Level:       f.Details.Level,
			Description: f.Details.Description,
		}
	}
	for _, tag := range f.Tags {
		update.Tags = append(update.Tags, models.Tag{
			Name:      tag.Name,
			IsDeleted: tag.IsDeleted != nil && *tag.IsDeleted,
		})
	}
	return update, nil
}
