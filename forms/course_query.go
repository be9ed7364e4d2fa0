package forms

import "github.com/CPU-commits/Intranet_BCatalog/models"

type CourseQueryForm struct {
	Page            int64    `form:"page"`
	Limit           int64    `form:"limit"`
	SortBy          string   `form:"sortBy" binding:"omitempty,oneof=title instructor price startDate endDate language provider durationInWeeks createdAt updatedAt"`
	SortOrder       string   `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	MinPrice        *float64 `form:"minPrice"`
	MaxPrice        *float64 `form:"maxPrice"`
	Tags            string   `form:"tags"`
	StartDate       string   `form:"startDate"`
	EndDate         string   `form:"endDate"`
	Language        string   `form:"language"`
	Provider        string   `form:"provider"`
	DurationInWeeks *int     `form:"durationInWeeks"`
	Level           string   `form:"level"`
}

func (f *CourseQueryForm) ToQuery() *models.CourseQuery {
	query := &models.CourseQuery{
		Page:            f.Page,
		Limit:           f.Limit,
		SortBy:          f.SortBy,
		SortOrder:       f.SortOrder,
		MinPrice:        f.MinPrice,
		MaxPrice:        f.MaxPrice,
		Tags:            f.Tags,
		StartDate:       f.StartDate,
		EndDate:         f.EndDate,
		Language:        f.Language,
		Provider:        f.Provider,
		DurationInWeeks: f.DurationInWeeks,
		Level:           f.Level,
	}
	query.Normalize()
	return query
}
