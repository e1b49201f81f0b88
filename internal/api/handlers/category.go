package handlers

import (
	"log/slog"
	"net/http"

	"github.com/shopstack/product-inventory-platform/internal/api/middleware"
	service "github.com/shopstack/product-inventory-platform/internal/services"
	"github.com/shopstack/product-inventory-platform/internal/utils/response"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		categories, err := h.categoryService.ListCategories(r.Context())
		if err != nil {
			logger.Error("Failed to fetch categories", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, categories)
	}
}
