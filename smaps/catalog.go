package smaps

import "github.com/CPU-commits/Intranet_BCatalog/models"

type CategoriesMap struct {
	Categories []models.CategoryWithLookup `json:"categories"`
}
