package repository

import (
	"context"
	"fmt"

	"github.com/shopstack/product-inventory-platform/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	productsCollection   = "products"
	categoriesCollection = "categories"
)

type Repository struct {
	Client   *mongo.Client
	DB       *mongo.Database
	Product  ProductRepository
	Category CategoryRepository
}

func New(ctx context.Context, cfg *config.Config) (*Repository, error) {
	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetMaxPoolSize(cfg.Mongo.MaxPoolSize).
		SetMinPoolSize(cfg.Mongo.MinPoolSize).
		SetMaxConnIdleTime(cfg.Mongo.MaxConnIdleTime).
		SetConnectTimeout(cfg.Mongo.ConnectTimeout).
		SetSocketTimeout(cfg.Mongo.SocketTimeout).
		SetRetryWrites(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Test the connection to make sure the database is reachable
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(cfg.Mongo.Database)

	if err := ensureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return &Repository{
		Client:   client,
		DB:       db,
		Product:  NewProductRepo(db),
		Category: NewCategoryRepo(db),
	}, nil
}

// ensureIndexes creates the uniqueness and scan indexes up front so the
// duplicate-name backstop exists before the first write. The product name
// index uses a strength-2 collation, making the uniqueness constraint
// case-insensitive at the index level.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(productsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetCollation(&options.Collation{Locale: "en", Strength: 2}),
		},
		{Keys: bson.D{{Key: "categories", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("products indexes: %w", err)
	}

	_, err = db.Collection(categoriesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("categories indexes: %w", err)
	}

	return nil
}

func (r *Repository) Close(ctx context.Context) error {
	return r.Client.Disconnect(ctx)
}
