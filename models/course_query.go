package models

import "math"

// Defaults of the course listing
const (
	DEFAULT_PAGE       = 1
	DEFAULT_LIMIT      = 10
	MAX_LIMIT          = 100
	DEFAULT_SORT_BY    = "startDate"
	DEFAULT_SORT_ORDER = "asc"
)

var CourseSortFields = []string{
	"title",
	"instructor",
	"price",
	"startDate",
	"endDate",
	"language",
	"provider",
	"durationInWeeks",
	"createdAt",
	"updatedAt",
}

type CourseQuery struct {
	Page            int64
	Limit           int64
	SortBy          string
	SortOrder       string
	MinPrice        *float64
	MaxPrice        *float64
	Tags            string
	StartDate       string
	EndDate         string
	Language        string
	Provider        string
	DurationInWeeks *int
	Level           string
}

// Normalize fills the paging and sorting defaults
func (q *CourseQuery) Normalize() {
	if q.Page <= 0 {
		q.Page = DEFAULT_PAGE
	}
	if q.Limit <= 0 {
		q.Limit = DEFAULT_LIMIT
	} else if q.Limit > MAX_LIMIT {
		q.Limit = MAX_LIMIT
	}
	if q.SortBy == "" {
		q.SortBy = DEFAULT_SORT_BY
	}
	if q.SortOrder == "" {
		q.SortOrder = DEFAULT_SORT_ORDER
	}
}

// Skip saturates instead of overflowing for pages past the last one
func (q *CourseQuery) Skip() int64 {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}
	if q.Page-1 > math.MaxInt64/q.Limit {
		return math.MaxInt64
	}
	return (q.Page - 1) * q.Limit
}
