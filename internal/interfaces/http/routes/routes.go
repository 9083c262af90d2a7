// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/velvet-vogue/storefront-backend/internal/config"
	"github.com/velvet-vogue/storefront-backend/internal/domain/analytics"
	"github.com/velvet-vogue/storefront-backend/internal/domain/cart"
	"github.com/velvet-vogue/storefront-backend/internal/domain/checkout"
	"github.com/velvet-vogue/storefront-backend/internal/domain/order"
	"github.com/velvet-vogue/storefront-backend/internal/domain/product"
	"github.com/velvet-vogue/storefront-backend/internal/interfaces/http/handlers"
	"github.com/velvet-vogue/storefront-backend/internal/interfaces/http/middleware"
	"github.com/velvet-vogue/storefront-backend/internal/pkg/pdf"
)

// Deps carries the wired services the route handlers depend on
type Deps struct {
	Config    *config.Config
	Logger    *logrus.Logger
	Redis     *redis.Client
	Products  *product.Service
	Carts     *cart.Service
	Orders    *order.Service
	Checkout  *checkout.Service
	Analytics *analytics.Service
	PDF       *pdf.Service
}

// SetupRoutes mounts the public storefront and admin routes
func SetupRoutes(api *gin.RouterGroup, deps *Deps) {
	SetupStorefrontRoutes(api, deps)
	SetupAdminRoutes(api, deps)
}

// SetupStorefrontRoutes sets up the public storefront routes
func SetupStorefrontRoutes(api *gin.RouterGroup, deps *Deps) {
	productHandler := handlers.NewProductHandler(deps.Products)
	cartHandler := handlers.NewCartHandler(deps.Carts, deps.Config)
	checkoutHandler := handlers.NewCheckoutHandler(deps.Checkout, deps.Config)
	contactHandler := handlers.NewContactHandler(deps.Logger)

	products := api.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}

	api.POST("/checkout", checkoutHandler.ProcessCheckout)
	api.POST("/contact", contactHandler.SubmitContact)
}

// SetupAdminRoutes sets up the admin panel routes
func SetupAdminRoutes(api *gin.RouterGroup, deps *Deps) {
	authHandler := handlers.NewAuthHandler(deps.Config)
	productHandler := handlers.NewProductHandler(deps.Products)
	orderHandler := handlers.NewOrderHandler(deps.Orders)
	dashboardHandler := handlers.NewDashboardHandler(deps.Analytics)
	invoiceHandler := handlers.NewInvoiceHandler(deps.Orders, deps.PDF)

	admin := api.Group("/admin")

	// Login is the only unauthenticated admin endpoint
	admin.POST("/login", authHandler.Login)

	protected := admin.Group("")
	protected.Use(middleware.AdminAuth(deps.Config))
	{
		protected.POST("/products", productHandler.AdminCreateProduct)

		orders := protected.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id/status", orderHandler.UpdateOrderStatus)
			orders.POST("/:id/advance", orderHandler.AdvanceOrderStatus)
			orders.GET("/:id/invoice", invoiceHandler.GenerateInvoice)
		}

		protected.GET("/dashboard", dashboardHandler.GetDashboard)
	}
}
