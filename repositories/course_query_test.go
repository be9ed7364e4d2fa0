package repositories

import (
	"reflect"
	"testing"
	"time"

	"github.com/CPU-commits/Intranet_BCatalog/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func filterKeys(filter bson.D) []string {
	var keys []string
	for _, e := range filter {
		keys = append(keys, e.Key)
	}
	return keys
}

func TestGetCourseFilterEmpty(t *testing.T) {
	query := &models.CourseQuery{}
	query.Normalize()
	if filter := getCourseFilter(query); len(filter) != 0 {
		t.Fatalf("expected empty filter, got %v", filter)
	}
}

func TestGetCourseFilterPriceNeedsBothBounds(t *testing.T) {
	onlyMin := &models.CourseQuery{MinPrice: floatPtr(10)}
	if filter := getCourseFilter(onlyMin); len(filter) != 0 {
		t.Fatalf("price filter applied with one bound: %v", filter)
	}
	onlyMax := &models.CourseQuery{MaxPrice: floatPtr(50)}
	if filter := getCourseFilter(onlyMax); len(filter) != 0 {
		t.Fatalf("price filter applied with one bound: %v", filter)
	}

	both := &models.CourseQuery{MinPrice: floatPtr(10), MaxPrice: floatPtr(50)}
	filter := getCourseFilter(both)
	want := bson.D{{Key: "price", Value: bson.M{"$gte": 10.0, "$lte": 50.0}}}
	if !reflect.DeepEqual(filter, want) {
		t.Fatalf("getCourseFilter() = %v, want %v", filter, want)
	}
}

func TestGetCourseFilterDateWindowNeedsBothDates(t *testing.T) {
	if filter := getCourseFilter(&models.CourseQuery{StartDate: "2024-01-01"}); len(filter) != 0 {
		t.Fatalf("date filter applied with one date: %v", filter)
	}
	filter := getCourseFilter(&models.CourseQuery{StartDate: "2024-01-01", EndDate: "2024-06-30"})
	want := bson.D{{
		Key: "$and",
		Value: bson.A{
			bson.M{"startDate": bson.M{"$gte": "2024-01-01"}},
			bson.M{"endDate": bson.M{"$lte": "2024-06-30"}},
		},
	}}
	if !reflect.DeepEqual(filter, want) {
		t.Fatalf("getCourseFilter() = %v, want %v", filter, want)
	}
}

func TestGetCourseFilterExactMatches(t *testing.T) {
	filter := getCourseFilter(&models.CourseQuery{
		Tags:            "golang",
		Language:        "English",
		Provider:        "Coursera",
		DurationInWeeks: intPtr(0),
		Level:           models.BEGINNER,
	})
	want := bson.D{
		{Key: "tags.name", Value: "golang"},
		{Key: "language", Value: "English"},
		{Key: "provider", Value: "Coursera"},
		{Key: "durationInWeeks", Value: 0},
		{Key: "details.level", Value: models.BEGINNER},
	}
	if !reflect.DeepEqual(filter, want) {
		t.Fatalf("getCourseFilter() = %v, want %v", filterKeys(filter), filterKeys(want))
	}
}

func TestGetCourseSort(t *testing.T) {
	tests := []struct {
		sortBy    string
		sortOrder string
		want      bson.D
	}{
		{"startDate", "asc", bson.D{{Key: "startDate", Value: 1}}},
		{"price", "desc", bson.D{{Key: "price", Value: -1}}},
		{"endDate", "asc", bson.D{{Key: "endDate", Value: -1}}},
		{"endDate", "desc", bson.D{{Key: "endDate", Value: -1}}},
	}
	for _, tt := range tests {
		got := getCourseSort(&models.CourseQuery{SortBy: tt.sortBy, SortOrder: tt.sortOrder})
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("getCourseSort(%s, %s) = %v, want %v", tt.sortBy, tt.sortOrder, got, tt.want)
		}
	}
}

func TestGetCoursesPipelinePaging(t *testing.T) {
	query := &models.CourseQuery{Page: 2, Limit: 5}
	query.Normalize()
	pipeline := getCoursesPipeline(query)

	var stages []string
	for _, stage := range pipeline {
		stages = append(stages, stage[0].Key)
	}
	wantStages := []string{"$match", "$sort", "$skip", "$limit", "$lookup", "$addFields"}
	if !reflect.DeepEqual(stages, wantStages) {
		t.Fatalf("unexpected stages %v", stages)
	}
	if skip := pipeline[2][0].Value; skip != int64(5) {
		t.Fatalf("expected skip 5, got %v", skip)
	}
	if limit := pipeline[3][0].Value; limit != int64(5) {
		t.Fatalf("expected limit 5, got %v", limit)
	}
}

func TestGetUpdateCourseFilter(t *testing.T) {
	id := primitive.NewObjectID()
	updatedAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	filter := getUpdateCourseFilter(&models.Course{ID: id, UpdatedAt: updatedAt})
	want := bson.D{
		{Key: "_id", Value: id},
		{Key: "updatedAt", Value: updatedAt},
	}
	if !reflect.DeepEqual(filter, want) {
		t.Fatalf("unexpected filter %v", filter)
	}

	filter = getUpdateCourseFilter(&models.Course{ID: id})
	want = bson.D{
		{Key: "_id", Value: id},
		{Key: "updatedAt", Value: bson.M{"$exists": false}},
	}
	if !reflect.DeepEqual(filter, want) {
		t.Fatalf("expected absent updatedAt guard, got %v", filter)
	}
}
