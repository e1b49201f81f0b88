package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopstack/product-inventory-platform/internal/api/handlers"
	appErrors "github.com/shopstack/product-inventory-platform/internal/errors"
	"github.com/shopstack/product-inventory-platform/internal/models"
	"github.com/shopstack/product-inventory-platform/internal/services/mocks"
	"github.com/shopstack/product-inventory-platform/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListCategoriesHandler(t *testing.T) {
	t.Run("Success - Sorted Categories", func(t *testing.T) {
		// Arrange
		mockCategoryService := new(mocks.CategoryService)
		categoryHandler := handlers.NewCategoryHandler(mockCategoryService)

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/categories", nil, nil)

		expected := []models.Category{
			{Name: "Automotive"},
			{Name: "Books"},
			{Name: "Electronics"},
		}

		mockCategoryService.On("ListCategories", mock.Anything).Return(expected, nil).Once()

		// Act
		categoryHandler.ListCategories().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []models.Category
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Len(t, resp, 3)
		assert.Equal(t, "Automotive", resp[0].Name)
		mockCategoryService.AssertExpectations(t)
	})

	t.Run("Failure - Store Error", func(t *testing.T) {
		// Arrange
		mockCategoryService := new(mocks.CategoryService)
		categoryHandler := handlers.NewCategoryHandler(mockCategoryService)

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/categories", nil, nil)

		mockCategoryService.On("ListCategories", mock.Anything).
			Return(nil, appErrors.DatabaseError("Failed to fetch categories")).Once()

		// Act
		categoryHandler.ListCategories().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockCategoryService.AssertExpectations(t)
	})
}
