package service

import (
	"context"

	appErrors "github.com/shopstack/product-inventory-platform/internal/errors"
	"github.com/shopstack/product-inventory-platform/internal/models"
	repository "github.com/shopstack/product-inventory-platform/internal/repositories"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, nil
}
