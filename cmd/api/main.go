// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/velvet-vogue/storefront-backend/internal/config"
	"github.com/velvet-vogue/storefront-backend/internal/domain/analytics"
	"github.com/velvet-vogue/storefront-backend/internal/domain/cart"
	"github.com/velvet-vogue/storefront-backend/internal/domain/checkout"
	"github.com/velvet-vogue/storefront-backend/internal/domain/order"
	"github.com/velvet-vogue/storefront-backend/internal/domain/product"
	"github.com/velvet-vogue/storefront-backend/internal/interfaces/http"
	"github.com/velvet-vogue/storefront-backend/internal/interfaces/http/middleware"
	"github.com/velvet-vogue/storefront-backend/internal/interfaces/http/routes"
	"github.com/velvet-vogue/storefront-backend/internal/pkg/payment"
	"github.com/velvet-vogue/storefront-backend/internal/pkg/pdf"
	"github.com/velvet-vogue/storefront-backend/internal/pricing"
	"github.com/velvet-vogue/storefront-backend/internal/store/file"
	"github.com/velvet-vogue/storefront-backend/internal/store/memory"
	"github.com/velvet-vogue/storefront-backend/internal/store/postgres"
	"github.com/velvet-vogue/storefront-backend/internal/store/redisstore"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := middleware.NewLogger(cfg)
	logger.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Redis backs carts and rate limiting when configured
	var redisClient *redislib.Client
	if cfg.Store.CartDriver == "redis" {
		redisClient, err = redisstore.NewClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
	}

	// Cart storage
	var cartRepo cart.Repository
	if redisClient != nil {
		cartRepo = redisstore.NewCartStore(redisClient, cfg.Store.CartTTL)
	} else {
		cartRepo = memory.NewCartStore()
	}

	// Order storage
	var orderRepo order.Repository
	switch cfg.Store.OrderDriver {
	case "postgres":
		conn, err := postgres.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer conn.Close()

		if err := conn.Health(); err != nil {
			log.Fatalf("Database health check failed: %v", err)
		}

		store, err := postgres.NewOrderStore(conn)
		if err != nil {
			log.Fatalf("Failed to initialize order store: %v", err)
		}
		orderRepo = store
	case "memory":
		orderRepo = memory.NewOrderStore()
	default:
		orderRepo = file.NewOrderStore(cfg.Store.OrdersPath)
	}

	// Wire services
	catalogRepo := file.NewCatalogStore(cfg.Store.CatalogPath)
	pricer := pricing.NewEngine(cfg.Pricing)

	productService := product.NewService(catalogRepo)
	cartService := cart.NewService(cartRepo, productService, pricer)
	orderService := order.NewService(orderRepo)
	processor := payment.NewSimulator(cfg.Payment)
	checkoutService := checkout.NewService(cartService, orderService, pricer, processor, logger)
	analyticsService := analytics.NewService(productService, orderService)
	pdfService := pdf.NewService(cfg)

	// Create and start HTTP server
	server := http.NewServer(cfg, &routes.Deps{
		Config:    cfg,
		Logger:    logger,
		Redis:     redisClient,
		Products:  productService,
		Carts:     cartService,
		Orders:    orderService,
		Checkout:  checkoutService,
		Analytics: analyticsService,
		PDF:       pdfService,
	})

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")

	// Give the server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	logger.Info("Server shutdown completed")
}
