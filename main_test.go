package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"butik/internal/models"
	"butik/pkg/gateway"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type noopGateway struct{}

func (noopGateway) CreateOrder(amount int64, currency, receipt string) (*gateway.Order, error) {
	return &gateway.Order{ID: "order_noop", Amount: amount, Currency: currency}, nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:maintest?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Address{},
		&models.Product{}, &models.ProductStock{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))

	cfg := Config{
		AppPort:          ":0",
		JWTSecret:        "test_jwt_secret",
		GatewayKeyID:     "key_test",
		GatewayKeySecret: "secret_test",
	}
	return NewApp(cfg, db, noopGateway{}, nil)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedRouteRejectsAnonymous(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPublicCatalogIsReachable(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
