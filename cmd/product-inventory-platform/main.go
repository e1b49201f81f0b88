package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopstack/product-inventory-platform/internal/api/handlers"
	"github.com/shopstack/product-inventory-platform/internal/api/middleware"
	"github.com/shopstack/product-inventory-platform/internal/config"
	"github.com/shopstack/product-inventory-platform/internal/health"
	"github.com/shopstack/product-inventory-platform/internal/metrics"
	repository "github.com/shopstack/product-inventory-platform/internal/repositories"
	service "github.com/shopstack/product-inventory-platform/internal/services"
	"github.com/shopstack/product-inventory-platform/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Tracing setup
	tracingShutdown, err := telemetry.InitTracing(startupCtx, cfg)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(startupCtx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := repos.Close(closeCtx); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	productService := service.NewProductService(repos.Product)
	productHandler := handlers.NewProductHandler(productService)
	categoryService := service.NewCategoryService(repos.Category)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	seedService := service.NewSeedService(repos.Category, repos.Product)
	seedHandler := handlers.NewSeedHandler(seedService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /categories", categoryHandler.ListCategories())
	routerMux.HandleFunc("GET /products", productHandler.ListProducts())
	routerMux.HandleFunc("POST /products", productHandler.CreateProduct())
	routerMux.HandleFunc("DELETE /products/{id}", productHandler.DeleteProduct())
	routerMux.HandleFunc("POST /seed", seedHandler.Seed())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "product-inventory-platform")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if tracingShutdown != nil {
		if err := tracingShutdown(shutdownCtx); err != nil {
			slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
		}
	}
}
