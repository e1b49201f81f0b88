package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/shopstack/product-inventory-platform/internal/models"
	"github.com/shopstack/product-inventory-platform/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateName is returned when a live product already carries the
// requested name (compared case-insensitively).
var ErrDuplicateName = errors.New("product name already exists")

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	ListProducts(ctx context.Context, query bson.M, skip, limit int64) ([]models.Product, error)
	CountProducts(ctx context.Context, query bson.M) (int64, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) (bool, error)
	SeedProducts(ctx context.Context, products []models.Product) (bool, error)
}

type productRepository struct {
	collection *mongo.Collection
}

func NewProductRepo(db *mongo.Database) ProductRepository {
	return &productRepository{collection: db.Collection(productsCollection)}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	// Anchored case-insensitive name check so the caller gets a clean
	// conflict instead of an index error in the common path.
	nameQuery := bson.M{"name": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(product.Name) + "$",
		Options: "i",
	}}

	err := r.collection.FindOne(dbCtx, nameQuery).Err()
	if err == nil {
		return ErrDuplicateName
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("checking for duplicate name: %w", err)
	}

	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := r.collection.InsertOne(dbCtx, product)
	if err != nil {
		// The unique name index (case-insensitive collation) backstops
		// concurrent creates that slip past the pre-check.
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateName
		}

		return fmt.Errorf("inserting product: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}

	return nil
}

func (r *productRepository) ListProducts(ctx context.Context, query bson.M, skip, limit int64) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(dbCtx, query, findOpts)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}

	defer cursor.Close(dbCtx)

	products := []models.Product{}
	if err := cursor.All(dbCtx, &products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}

	return products, nil
}

func (r *productRepository) CountProducts(ctx context.Context, query bson.M) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	count, err := r.collection.CountDocuments(dbCtx, query)
	if err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}

	return count, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id primitive.ObjectID) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.collection.DeleteOne(dbCtx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("deleting product: %w", err)
	}

	return result.DeletedCount > 0, nil
}

// SeedProducts inserts the default product set only when the collection is
// empty. A duplicate-key error means a concurrent seeder won the race; that
// is reported as "not seeded", not as a failure.
func (r *productRepository) SeedProducts(ctx context.Context, products []models.Product) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	count, err := r.collection.CountDocuments(dbCtx, bson.M{})
	if err != nil {
		return false, fmt.Errorf("counting products before seed: %w", err)
	}

	if count > 0 {
		return false, nil
	}

	docs := make([]any, 0, len(products))
	now := time.Now().UTC()

	for i := range products {
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
		docs = append(docs, products[i])
	}

	_, err = r.collection.InsertMany(dbCtx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}

		return false, fmt.Errorf("inserting default products: %w", err)
	}

	return true, nil
}
