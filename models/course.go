package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const COURSE_COLLECTION = "courses"

// Levels
const (
	BEGINNER     = "Beginner"
	INTERMEDIATE = "Intermediate"
	ADVANCED     = "Advanced"
)

var CourseLevels = []string{BEGINNER, INTERMEDIATE, ADVANCED}

type Tag struct {
	Name      string `json:"name" bson:"name"`
	IsDeleted bool   `json:"isDeleted" bson:"isDeleted"`
}

type Details struct {
	Level       string `json:"level" bson:"level"`
	Description string `json:"description" bson:"description"`
}

type DetailsPatch struct {
	Level       *string
	Description *string
}

// Merge returns a copy of d with every field present in the patch replaced
func (d Details) Merge(patch *DetailsPatch) Details {
	if patch == nil {
		return d
	}
	if patch.Level != nil {
		d.Level = *patch.Level
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	return d
}

type Course struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Instructor      string             `json:"instructor" bson:"instructor"`
	CategoryID      primitive.ObjectID `json:"categoryId" bson:"categoryId"`
	Price           float64            `json:"price" bson:"price"`
	Tags            []Tag              `json:"tags" bson:"tags"`
	StartDate       string             `json:"startDate" bson:"startDate"`
	EndDate         string             `json:"endDate" bson:"endDate"`
	Language        string             `json:"language" bson:"language"`
	Provider        string             `json:"provider" bson:"provider"`
	DurationInWeeks int                `json:"durationInWeeks" bson:"durationInWeeks"`
	Details         Details            `json:"details" bson:"details"`
	CreatedBy       primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CourseWithLookup struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	Title           string             `json:"title" bson:"title"`
	Instructor      string             `json:"instructor" bson:"instructor"`
	CategoryID      primitive.ObjectID `json:"categoryId" bson:"categoryId"`
	Price           float64            `json:"price" bson:"price"`
	Tags            []Tag              `json:"tags" bson:"tags"`
	StartDate       string             `json:"startDate" bson:"startDate"`
	EndDate         string             `json:"endDate" bson:"endDate"`
	Language        string             `json:"language" bson:"language"`
	Provider        string             `json:"provider" bson:"provider"`
	DurationInWeeks int                `json:"durationInWeeks" bson:"durationInWeeks"`
	Details         Details            `json:"details" bson:"details"`
	CreatedBy       *SimpleUser        `json:"createdBy" bson:"createdBy"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CourseUpdate is a partial change set. Nil fields are left untouched.
type CourseUpdate struct {
	Title      *string
	Instructor *string
	CategoryID *primitive.ObjectID
	Price      *float64
	StartDate  *string
	EndDate    *string
	Language   *string
	Provider   *string
	Details    *DetailsPatch
	Tags       []Tag
}

func (u *CourseUpdate) TouchesDates() bool {
	return u.StartDate != nil || u.EndDate != nil
}

// BeforeInsert derives the computed fields of a new course
func (c *Course) BeforeInsert() error {
	weeks, err := DurationInWeeks(c.StartDate, c.EndDate)
	if err != nil {
		return err
	}
	now := Now()
	c.DurationInWeeks = weeks
	if c.Tags == nil {
		c.Tags = []Tag{}
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	return nil
}

// ApplyUpdate merges the change set into the course. The duration is only
// recomputed when one of the dates is part of the update, the other date is
// taken from the current document.
func (c *Course) ApplyUpdate(update *CourseUpdate) error {
	if update.TouchesDates() {
		startDate := c.StartDate
		if update.StartDate != nil {
			startDate = *update.StartDate
		}
		endDate := c.EndDate
		if update.EndDate != nil {
			endDate = *update.EndDate
		}
		weeks, err := DurationInWeeks(startDate, endDate)
		if err != nil {
			return err
		}
		c.StartDate = startDate
		c.EndDate = endDate
		c.DurationInWeeks = weeks
	}
	if update.Title != nil {
		c.Title = *update.Title
	}
	if update.Instructor != nil {
		c.Instructor = *update.Instructor
	}
	if update.CategoryID != nil {
		c.CategoryID = *update.CategoryID
	}
	if update.Price != nil {
		c.Price = *update.Price
	}
	if update.Language != nil {
		c.Language = *update.Language
	}
	if update.Provider != nil {
		c.Provider = *update.Provider
	}
	c.Details = c.Details.Merge(update.Details)
	if len(update.Tags) > 0 {
		c.Tags = ReconcileTags(c.Tags, SplitTagChanges(update.Tags))
	}
	c.UpdatedAt = Now()
	return nil
}

type CourseModel struct {
	collection
}

func NewCourseModel(database *mongo.Database) Collection {
	return &CourseModel{
		collection: collection{
			CollectionName: COURSE_COLLECTION,
			database:       database,
		},
	}
}
