package repository_test

import (
	"testing"

	"github.com/shopstack/product-inventory-platform/internal/models"
	repository "github.com/shopstack/product-inventory-platform/internal/repositories"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildProductQuery(t *testing.T) {
	t.Run("No Filters", func(t *testing.T) {
		query := repository.BuildProductQuery(&models.ProductFilters{})

		assert.Equal(t, bson.M{}, query)
	})

	t.Run("Search Only", func(t *testing.T) {
		query := repository.BuildProductQuery(&models.ProductFilters{Search: "pro"})

		assert.Equal(t, bson.M{
			"name": bson.M{"$regex": "pro", "$options": "i"},
		}, query)
	})

	t.Run("Search Escapes Regex Metacharacters", func(t *testing.T) {
		query := repository.BuildProductQuery(&models.ProductFilters{Search: "C++ (v2)"})

		nameCond, ok := query["name"].(bson.M)
		assert.True(t, ok)
		assert.Equal(t, `C\+\+ \(v2\)`, nameCond["$regex"])
	})

	t.Run("Categories Only", func(t *testing.T) {
		query := repository.BuildProductQuery(&models.ProductFilters{
			Categories: []string{"Electronics", "Books"},
		})

		assert.Equal(t, bson.M{
			"categories": bson.M{"$in": []string{"Electronics", "Books"}},
		}, query)
	})

	t.Run("Search And Categories Combine As AND", func(t *testing.T) {
		query := repository.BuildProductQuery(&models.ProductFilters{
			Search:     "widget",
			Categories: []string{"Electronics"},
		})

		assert.Len(t, query, 2)
		assert.Contains(t, query, "name")
		assert.Contains(t, query, "categories")
	})
}
