// internal/interfaces/http/routes/routes_test.go
package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvet-vogue/storefront-backend/internal/config"
	"github.com/velvet-vogue/storefront-backend/internal/domain/analytics"
	"github.com/velvet-vogue/storefront-backend/internal/domain/cart"
	"github.com/velvet-vogue/storefront-backend/internal/domain/checkout"
	"github.com/velvet-vogue/storefront-backend/internal/domain/order"
	"github.com/velvet-vogue/storefront-backend/internal/domain/product"
	"github.com/velvet-vogue/storefront-backend/internal/pkg/payment"
	"github.com/velvet-vogue/storefront-backend/internal/pkg/pdf"
	"github.com/velvet-vogue/storefront-backend/internal/pricing"
	"github.com/velvet-vogue/storefront-backend/internal/store/memory"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Velvet Vogue", Version: "1.0.0", Environment: "test", Currency: "GBP"},
		Store: config.StoreConfig{
			CartDriver:  "memory",
			OrderDriver: "memory",
			CartTTL:     24 * time.Hour,
		},
		Pricing: config.PricingConfig{
			TaxRateBasisPoints:    2000,
			FreeShippingThreshold: 5000,
			StandardShippingFee:   499,
			ExpressShippingFee:    999,
		},
		Payment: config.PaymentConfig{SuccessPercent: 100, Delay: 0},
		Admin:   config.AdminConfig{Username: "admin@velvetvogue.com", Password: "admin123"},
		JWT: config.JWTConfig{
			Secret:            "test-secret-test-secret-test-secret-1234",
			AccessTokenExpiry: time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: 4},
		Logging:  config.LoggingConfig{Level: "error", Format: "text"},
	}
}

func testRouter(t *testing.T) *gin.Engine {
	return testRouterWith(t, testConfig())
}

func testRouterWith(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	catalogRepo := memory.NewCatalogStore(product.Catalog{
		Products: []product.Product{
			{ID: "VV001", Name: "Velvet Blazer", Price: 8999, Category: []string{"women"}},
			{ID: "VV002", Name: "Oxford Shirt", Price: 3900, Category: []string{"men"}},
		},
		Categories: []product.Category{{ID: "women", Name: "Women"}, {ID: "men", Name: "Men"}},
	})

	pricer := pricing.NewEngine(cfg.Pricing)
	productService := product.NewService(catalogRepo)
	cartService := cart.NewService(memory.NewCartStore(), productService, pricer)
	orderService := order.NewService(memory.NewOrderStore())
	checkoutService := checkout.NewService(cartService, orderService, pricer, payment.NewSimulator(cfg.Payment), logger)
	analyticsService := analytics.NewService(productService, orderService)

	r := gin.New()
	api := r.Group("/api")
	SetupRoutes(api, &Deps{
		Config:    cfg,
		Logger:    logger,
		Products:  productService,
		Carts:     cartService,
		Orders:    orderService,
		Checkout:  checkoutService,
		Analytics: analyticsService,
		PDF:       pdf.NewService(cfg),
	})
	return r
}

const validCheckoutBody = `{
	"customer": {
		"first_name": "Ada", "last_name": "Byron",
		"email": "ada@example.com", "phone": "07700900000",
		"address": "12 Velvet Lane", "city": "London",
		"postcode": "W1A 1AA", "country": "United Kingdom"
	},
	"shipping_method": "express",
	"payment_method": "card"
}`

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, cookies []*http.Cookie, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetProducts(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/products", "", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Len(t, data["products"], 2)

	w = doJSON(t, r, http.MethodGet, "/api/products?category=men", "", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]interface{})
	assert.Len(t, data["products"], 1)
}

func TestGetProductNotFound(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/products/VV999", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartAndCheckoutFlow(t *testing.T) {
	r := testRouter(t)

	// First cart request issues the session cookie
	w := doJSON(t, r, http.MethodPost, "/api/cart/items", `{"product_id":"VV002","quantity":2}`, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = doJSON(t, r, http.MethodGet, "/api/cart", "", cookies, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total_quantity"])

	w = doJSON(t, r, http.MethodPost, "/api/checkout", validCheckoutBody, cookies, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	result := body["data"].(map[string]interface{})
	orderID := result["order_id"].(string)
	assert.True(t, strings.HasPrefix(orderID, "VV-"))

	// 2 × £39 with express shipping: subtotal over the threshold still
	// pays the express fee
	pricingData := result["pricing"].(map[string]interface{})
	assert.Equal(t, float64(7800), pricingData["subtotal"])
	assert.Equal(t, float64(999), pricingData["shipping_cost"])

	// Cart is empty after a successful checkout
	w = doJSON(t, r, http.MethodGet, "/api/cart", "", cookies, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total_quantity"])
}

func TestCheckoutPaymentDeclined(t *testing.T) {
	cfg := testConfig()
	cfg.Payment.SuccessPercent = 0
	r := testRouterWith(t, cfg)

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", `{"product_id":"VV002","quantity":1}`, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()

	w = doJSON(t, r, http.MethodPost, "/api/checkout", validCheckoutBody, cookies, nil)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["message"])

	// The cart survives a declined payment
	w = doJSON(t, r, http.MethodGet, "/api/cart", "", cookies, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total_quantity"])
}

func TestCheckoutValidation(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", `{"product_id":"VV001","quantity":1}`, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()

	w = doJSON(t, r, http.MethodPost, "/api/checkout", `{"customer":{"first_name":"Ada"},"shipping_method":"standard","payment_method":"card"}`, cookies, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["fields"])
}

func adminToken(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", `{"username":"admin@velvetvogue.com","password":"admin123"}`, nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	require.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	return data["token"].(string)
}

func TestAdminLogin(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", `{"username":"admin@velvetvogue.com","password":"wrong"}`, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := adminToken(t, r)
	assert.NotEmpty(t, token)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/admin/dashboard", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/dashboard", "", nil, map[string]string{"Authorization": "Bearer bogus"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminDashboardAndOrders(t *testing.T) {
	r := testRouter(t)
	token := adminToken(t, r)
	auth := map[string]string{"Authorization": "Bearer " + token}

	w := doJSON(t, r, http.MethodGet, "/api/admin/dashboard", "", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeBody(t, w)["data"].(map[string]interface{})["stats"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["total_products"])
	assert.Equal(t, float64(0), stats["total_orders"])

	w = doJSON(t, r, http.MethodGet, "/api/admin/orders", "", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/orders/VV-404", "", nil, auth)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminCreateProduct(t *testing.T) {
	r := testRouter(t)
	token := adminToken(t, r)
	auth := map[string]string{"Authorization": "Bearer " + token}

	w := doJSON(t, r, http.MethodPost, "/api/admin/products", `{"name":"Leather Tote","price":9900,"category":["accessories"]}`, nil, auth)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "VV003", data["id"])

	w = doJSON(t, r, http.MethodGet, "/api/products/VV003", "", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
