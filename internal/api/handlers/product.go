package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopstack/product-inventory-platform/internal/api/middleware"
	appErrors "github.com/shopstack/product-inventory-platform/internal/errors"
	"github.com/shopstack/product-inventory-platform/internal/models"
	service "github.com/shopstack/product-inventory-platform/internal/services"
	"github.com/shopstack/product-inventory-platform/internal/utils"
	"github.com/shopstack/product-inventory-platform/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
	sanitizer      *bluemonday.Policy
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		sanitizer:      bluemonday.StrictPolicy(),
	}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid request", slog.String("error", err.Error()))
			response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Strip markup and surrounding whitespace before validation so
		// "   " fails the required check.
		req.Name = strings.TrimSpace(h.sanitizer.Sanitize(req.Name))
		req.Description = strings.TrimSpace(h.sanitizer.Sanitize(req.Description))
		for i, c := range req.Categories {
			req.Categories[i] = strings.TrimSpace(c)
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			if validationErrs, ok := err.(validator.ValidationErrors); ok {
				response.ValidationError(w, validationErrs)
				return
			}

			response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Error during product creation", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product created successfully", slog.String("productId", fmt.Sprintf("%v", product.ID)))
		response.WriteJson(w, http.StatusCreated, product)
	}
}

// for eg: GET /products?search=phone&categories=Electronics,Books&page=2&limit=12
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		filters, err := parseProductFilters(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := utils.ValidateStruct(h.validator, filters); err != nil {
			if validationErrs, ok := err.(validator.ValidationErrors); ok {
				response.ValidationError(w, validationErrs)
				return
			}

			response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		result, err := h.productService.ListProducts(r.Context(), filters)
		if err != nil {
			logger.Error("Failed to fetch products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, result)
	}
}

func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			if appErr, ok := appErrors.IsAppError(err); ok && appErr.StatusCode != http.StatusNotFound {
				logger.Error("Failed to delete product",
					slog.String("productId", id),
					slog.String("error", err.Error()))
			}

			response.Error(w, err)
			return
		}

		logger.Info("Product deleted successfully", slog.String("productId", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseProductFilters(r *http.Request) (*models.ProductFilters, error) {
	query := r.URL.Query()

	filters := &models.ProductFilters{
		Search: query.Get("search"),
	}

	if raw := query.Get("categories"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				filters.Categories = append(filters.Categories, c)
			}
		}
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, appErrors.BadRequestError("Invalid page parameter").WithError(err)
		}

		filters.Page = page
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, appErrors.BadRequestError("Invalid limit parameter").WithError(err)
		}

		filters.Limit = limit
	}

	filters.ApplyDefaults()

	return filters, nil
}
