package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/shopstack/product-inventory-platform/internal/errors"
	"github.com/shopstack/product-inventory-platform/internal/models"
	"github.com/shopstack/product-inventory-platform/internal/repositories/mocks"
	service "github.com/shopstack/product-inventory-platform/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func defaultCategoriesFixture() []models.Category {
	names := []string{
		"Electronics", "Clothing", "Home & Garden", "Sports & Outdoors",
		"Books", "Health & Beauty", "Toys & Games", "Automotive",
		"Food & Beverages", "Office Supplies",
	}

	categories := make([]models.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, models.Category{Name: name})
	}

	return categories
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - First Seed", func(t *testing.T) {
		// Arrange
		mockCategories := new(mocks.CategoryRepository)
		mockProducts := new(mocks.ProductRepository)
		seedService := service.NewSeedService(mockCategories, mockProducts)

		mockCategories.On("SeedCategories", mock.Anything, mock.AnythingOfType("[]string")).
			Return(true, nil).Once()
		mockCategories.On("ListCategories", mock.Anything).
			Return(defaultCategoriesFixture(), nil).Once()

		// Category names unknown to the category collection must be
		// dropped from the seeded products.
		mockProducts.On("SeedProducts", mock.Anything, mock.MatchedBy(func(products []models.Product) bool {
			for _, p := range products {
				for _, c := range p.Categories {
					switch c {
					case "Smartphones", "Shoes":
						return false
					}
				}
			}

			return len(products) == 3
		})).Return(true, nil).Once()

		// Act
		seeded, err := seedService.Seed(ctx)

		// Assert
		assert.NoError(t, err)
		assert.True(t, seeded)
		mockCategories.AssertExpectations(t)
		mockProducts.AssertExpectations(t)
	})

	t.Run("Success - Already Seeded", func(t *testing.T) {
		// Arrange
		mockCategories := new(mocks.CategoryRepository)
		mockProducts := new(mocks.ProductRepository)
		seedService := service.NewSeedService(mockCategories, mockProducts)

		mockCategories.On("SeedCategories", mock.Anything, mock.AnythingOfType("[]string")).
			Return(false, nil).Once()
		mockCategories.On("ListCategories", mock.Anything).
			Return(defaultCategoriesFixture(), nil).Once()
		mockProducts.On("SeedProducts", mock.Anything, mock.AnythingOfType("[]models.Product")).
			Return(false, nil).Once()

		// Act
		seeded, err := seedService.Seed(ctx)

		// Assert
		assert.NoError(t, err)
		assert.False(t, seeded)
		mockCategories.AssertExpectations(t)
		mockProducts.AssertExpectations(t)
	})

	t.Run("Failure - Category Seed Error", func(t *testing.T) {
		// Arrange
		mockCategories := new(mocks.CategoryRepository)
		mockProducts := new(mocks.ProductRepository)
		seedService := service.NewSeedService(mockCategories, mockProducts)

		mockCategories.On("SeedCategories", mock.Anything, mock.AnythingOfType("[]string")).
			Return(false, errors.New("insert failed")).Once()

		// Act
		seeded, err := seedService.Seed(ctx)

		// Assert
		assert.Error(t, err)
		assert.False(t, seeded)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		mockProducts.AssertNotCalled(t, "SeedProducts", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Product Seed Error", func(t *testing.T) {
		// Arrange
		mockCategories := new(mocks.CategoryRepository)
		mockProducts := new(mocks.ProductRepository)
		seedService := service.NewSeedService(mockCategories, mockProducts)

		mockCategories.On("SeedCategories", mock.Anything, mock.AnythingOfType("[]string")).
			Return(true, nil).Once()
		mockCategories.On("ListCategories", mock.Anything).
			Return(defaultCategoriesFixture(), nil).Once()
		mockProducts.On("SeedProducts", mock.Anything, mock.AnythingOfType("[]models.Product")).
			Return(false, errors.New("bulk write failed")).Once()

		// Act
		seeded, err := seedService.Seed(ctx)

		// Assert
		assert.Error(t, err)
		assert.False(t, seeded)
		mockCategories.AssertExpectations(t)
		mockProducts.AssertExpectations(t)
	})
}
