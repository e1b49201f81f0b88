package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopstack/product-inventory-platform/internal/models"
	"github.com/shopstack/product-inventory-platform/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	SeedCategories(ctx context.Context, names []string) (bool, error)
}

type categoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepo(db *mongo.Database) CategoryRepository {
	return &categoryRepository{collection: db.Collection(categoriesCollection)}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(dbCtx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}

	defer cursor.Close(dbCtx)

	categories := []models.Category{}
	if err := cursor.All(dbCtx, &categories); err != nil {
		return nil, fmt.Errorf("decoding categories: %w", err)
	}

	return categories, nil
}

// SeedCategories inserts the default categories only when the collection is
// empty. Concurrent seeders are resolved by the unique name index; the loser
// sees a duplicate-key error and reports "not seeded".
func (r *categoryRepository) SeedCategories(ctx context.Context, names []string) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	count, err := r.collection.CountDocuments(dbCtx, bson.M{})
	if err != nil {
		return false, fmt.Errorf("counting categories before seed: %w", err)
	}

	if count > 0 {
		return false, nil
	}

	now := time.Now().UTC()
	docs := make([]any, 0, len(names))

	for _, name := range names {
		docs = append(docs, models.Category{Name: name, CreatedAt: now})
	}

	_, err = r.collection.InsertMany(dbCtx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}

		return false, fmt.Errorf("inserting default categories: %w", err)
	}

	return true, nil
}
