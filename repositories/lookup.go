package repositories

import (
	"github.com/CPU-commits/Intranet_BCatalog/models"
	"go.mongodb.org/mongo-driver/bson"
)

// getLookupCreatedBy expands createdBy into the public user projection
func getLookupCreatedBy() []bson.D {
	lookup := bson.D{{
		Key: "$lookup",
		Value: bson.M{
			"from": models.USERS_COLLECTION,
			"let": bson.M{
				"createdBy": "$createdBy",
			},
			"pipeline": bson.A{
				bson.M{
					"$match": bson.M{
						"$expr": bson.M{
							"$eq": bson.A{"$_id", "$$createdBy"},
						},
					},
				},
				bson.M{
					"$project": bson.M{
						"username": 1,
						"email":    1,
						"role":     1,
					},
				},
			},
			"as": "createdBy",
		},
	}}
	first := bson.D{{
		Key: "$addFields",
		Value: bson.M{
			"createdBy": bson.M{
				"$arrayElemAt": bson.A{"$createdBy", 0},
			},
		},
	}}
	return []bson.D{lookup, first}
}
