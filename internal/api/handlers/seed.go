package handlers

import (
	"log/slog"
	"net/http"

	"github.com/shopstack/product-inventory-platform/internal/api/middleware"
	service "github.com/shopstack/product-inventory-platform/internal/services"
	"github.com/shopstack/product-inventory-platform/internal/utils/response"
)

type SeedResponse struct {
	Message string `json:"message"`
}

type SeedHandler struct {
	seedService service.SeedService
}

func NewSeedHandler(seedService service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

func (h *SeedHandler) Seed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		seeded, err := h.seedService.Seed(r.Context())
		if err != nil {
			logger.Error("Failed to seed database", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if !seeded {
			response.WriteJson(w, http.StatusOK, SeedResponse{Message: "Database already seeded"})
			return
		}

		logger.Info("Database seeded with default data")
		response.WriteJson(w, http.StatusCreated, SeedResponse{Message: "Database seeded successfully"})
	}
}
