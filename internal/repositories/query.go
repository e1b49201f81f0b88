package repository

import (
	"regexp"

	"github.com/shopstack/product-inventory-platform/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// BuildProductQuery maps validated filters to a MongoDB filter document.
// Search matches the product name case-insensitively as a substring; the
// input is regex-escaped so metacharacters match literally. Categories use
// match-any ($in) semantics. Both conditions combine as an implicit AND;
// with no filters the empty document matches everything.
func BuildProductQuery(filters *models.ProductFilters) bson.M {
	query := bson.M{}

	if filters.Search != "" {
		query["name"] = bson.M{
			"$regex":   regexp.QuoteMeta(filters.Search),
			"$options": "i",
		}
	}

	if len(filters.Categories) > 0 {
		query["categories"] = bson.M{
			"$in": filters.Categories,
		}
	}

	return query
}
