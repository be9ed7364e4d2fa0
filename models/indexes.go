package models

import "github.com/CPU-commits/Intranet_BCatalog/db"

var UniqueIndexes = []db.UniqueIndex{
	{Collection: CATEGORY_COLLECTION, Field: "name"},
	{Collection: COURSE_COLLECTION, Field: "title"},
}
