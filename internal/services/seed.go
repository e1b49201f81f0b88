package service

import (
	"context"

	appErrors "github.com/shopstack/product-inventory-platform/internal/errors"
	"github.com/shopstack/product-inventory-platform/internal/models"
	repository "github.com/shopstack/product-inventory-platform/internal/repositories"
)

type SeedService interface {
	// Seed populates the default categories and products when their
	// collections are empty. It reports whether anything was newly
	// inserted; repeated or concurrent calls are safe no-ops.
	Seed(ctx context.Context) (bool, error)
}

type seedService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

func NewSeedService(categories repository.CategoryRepository, products repository.ProductRepository) SeedService {
	return &seedService{categories: categories, products: products}
}

func (s *seedService) Seed(ctx context.Context) (bool, error) {
	seededCategories, err := s.categories.SeedCategories(ctx, defaultCategoryNames)
	if err != nil {
		return false, appErrors.DatabaseError("Failed to seed categories").WithError(err)
	}

	known, err := s.knownCategoryNames(ctx)
	if err != nil {
		return false, err
	}

	// Product categories that don't exist in the category collection are
	// dropped at seed time. Ad-hoc product creation is not checked against
	// the category collection.
	products := make([]models.Product, 0, len(defaultProducts))

	for _, p := range defaultProducts {
		valid := make([]string, 0, len(p.Categories))

		for _, name := range p.Categories {
			if known[name] {
				valid = append(valid, name)
			}
		}

		p.Categories = valid
		products = append(products, p)
	}

	seededProducts, err := s.products.SeedProducts(ctx, products)
	if err != nil {
		return false, appErrors.DatabaseError("Failed to seed products").WithError(err)
	}

	return seededCategories || seededProducts, nil
}

func (s *seedService) knownCategoryNames(ctx context.Context) (map[string]bool, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	names := make(map[string]bool, len(categories))
	for _, c := range categories {
		names[c.Name] = true
	}

	return names, nil
}
