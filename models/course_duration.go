package models

import (
	"fmt"
	"math"
	"time"
)

const WEEK = 7 * 24 * time.Hour

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseCourseDate parses a calendar date or a timestamp. Values without a
// zone are read as UTC.
func ParseCourseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// DurationInWeeks is ceil(|endDate - startDate| / 7 days)
func DurationInWeeks(startDate, endDate string) (int, error) {
	start, err := ParseCourseDate(startDate)
	if err != nil {
		return 0, err
	}
	end, err := ParseCourseDate(endDate)
	if err != nil {
		return 0, err
	}
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(float64(diff) / float64(WEEK))), nil
}
