package service

import (
	"context"
	"errors"
	"sync"

	appErrors "github.com/shopstack/product-inventory-platform/internal/errors"
	"github.com/shopstack/product-inventory-platform/internal/models"
	"github.com/shopstack/product-inventory-platform/internal/pagination"
	repository "github.com/shopstack/product-inventory-platform/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	ListProducts(ctx context.Context, filters *models.ProductFilters) (*models.ProductListResponse, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    *req.Quantity,
		Categories:  req.Categories,
	}

	err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, appErrors.DuplicateEntryError("A product with this name already exists").
				WithDetails("Please choose a different name for this product").
				WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

// ListProducts runs the page fetch and the total count against the same
// predicate concurrently. The two reads are not required to observe the same
// snapshot; under concurrent writes the count may lag the page of items,
// which is an accepted trade-off of this read path.
func (s *productService) ListProducts(ctx context.Context, filters *models.ProductFilters) (*models.ProductListResponse, error) {
	query := repository.BuildProductQuery(filters)
	skip := pagination.Skip(filters.Page, filters.Limit)

	var (
		wg         sync.WaitGroup
		products   []models.Product
		totalCount int64
		findErr    error
		countErr   error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		products, findErr = s.repo.ListProducts(ctx, query, skip, int64(filters.Limit))
	}()

	go func() {
		defer wg.Done()
		totalCount, countErr = s.repo.CountProducts(ctx, query)
	}()

	wg.Wait()

	if findErr != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(findErr)
	}

	if countErr != nil {
		return nil, appErrors.DatabaseError("Failed to count products").WithError(countErr)
	}

	page := pagination.New(filters.Page, filters.Limit, totalCount)

	return &models.ProductListResponse{
		Products:        products,
		TotalCount:      totalCount,
		TotalPages:      page.TotalPages,
		CurrentPage:     page.CurrentPage,
		HasNextPage:     page.HasNextPage,
		HasPreviousPage: page.HasPreviousPage,
	}, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never identify a record.
		return appErrors.NotFoundError("Product not found").WithError(err)
	}

	deleted, err := s.repo.DeleteProduct(ctx, objectID)
	if err != nil {
		return appErrors.DatabaseError("Failed to delete product").WithError(err)
	}

	if !deleted {
		return appErrors.NotFoundError("Product not found")
	}

	return nil
}
