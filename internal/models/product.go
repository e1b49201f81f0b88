package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Quantity    int                `json:"quantity" bson:"quantity"`
	Categories  []string           `json:"categories" bson:"categories"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=500"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0,lte=999999"`
	Categories  []string `json:"categories" validate:"required,min=1,max=5,dive,required"`
}

// ProductFilters carries the query parameters of a product listing request.
// Zero Page/Limit mean "not supplied"; defaults are applied before validation.
type ProductFilters struct {
	Search     string   `validate:"omitempty"`
	Categories []string `validate:"omitempty,dive,required"`
	Page       int      `validate:"gte=1"`
	Limit      int      `validate:"gte=1,lte=100"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 12
)

func (f *ProductFilters) ApplyDefaults() {
	if f.Page == 0 {
		f.Page = DefaultPage
	}

	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
}

type ProductListResponse struct {
	Products        []Product `json:"products"`
	TotalCount      int64     `json:"totalCount"`
	TotalPages      int       `json:"totalPages"`
	CurrentPage     int       `json:"currentPage"`
	HasNextPage     bool      `json:"hasNextPage"`
	HasPreviousPage bool      `json:"hasPreviousPage"`
}
