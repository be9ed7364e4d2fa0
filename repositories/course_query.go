package repositories

import (
	"github.com/CPU-commits/Intranet_BCatalog/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func getCourseFilter(query *models.CourseQuery) bson.D {
	filter := bson.D{}

	// Both bounds are needed to filter by price
	if query.MinPrice != nil && query.MaxPrice != nil {
		filter = append(filter, bson.E{
			Key: "price",
			Value: bson.M{
				"$gte": *query.MinPrice,
				"$lte": *query.MaxPrice,
			},
		})
	}
	if query.Tags != "" {
		filter = append(filter, bson.E{Key: "tags.name", Value: query.Tags})
	}
	if query.StartDate != "" && query.EndDate != "" {
		filter = append(filter, bson.E{
			Key: "$and",
			Value: bson.A{
				bson.M{"startDate": bson.M{"$gte": query.StartDate}},
				bson.M{"endDate": bson.M{"$lte": query.EndDate}},
			},
		})
	}
	if query.Language != "" {
		filter = append(filter, bson.E{Key: "language", Value: query.Language})
	}
	if query.Provider != "" {
		filter = append(filter, bson.E{Key: "provider", Value: query.Provider})
	}
	if query.DurationInWeeks != nil {
		filter = append(filter, bson.E{Key: "durationInWeeks", Value: *query.DurationInWeeks})
	}
	if query.Level != "" {
		filter = append(filter, bson.E{Key: "details.level", Value: query.Level})
	}
	return filter
}

// getCourseSort always orders endDate descending, whatever sortOrder says
func getCourseSort(query *models.CourseQuery) bson.D {
	if query.SortBy == "endDate" {
		return bson.D{{Key: "endDate", Value: -1}}
	}
	order := 1
	if query.SortOrder == "desc" {
		order = -1
	}
	return bson.D{{Key: query.SortBy, Value: order}}
}

func getCoursesPipeline(query *models.CourseQuery) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: getCourseFilter(query)}},
		bson.D{{Key: "$sort", Value: getCourseSort(query)}},
		bson.D{{Key: "$skip", Value: query.Skip()}},
		bson.D{{Key: "$limit", Value: query.Limit}},
	}
	return append(pipeline, getLookupCreatedBy()...)
}
