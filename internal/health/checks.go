package health

import (
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
	healthMongo "github.com/hellofresh/health-go/v5/checks/mongo"
	"github.com/shopstack/product-inventory-platform/internal/config"
)

func NewHealthHandler(cfg *config.Config) (*health.Health, error) {
	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "product-inventory-platform",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "mongodb",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: healthMongo.New(healthMongo.Config{
					DSN: cfg.Mongo.URI,
				}),
			},
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
