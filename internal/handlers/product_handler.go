package handlers

import (
	"butik/internal/apperr"
	"butik/internal/middleware"
	"butik/internal/models"
	"butik/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog and its stock ledger.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers catalog reads, open to everyone.
func (h *ProductHandler) RegisterPublicRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Get("/:id/stock", h.HandleGetStock)
}

// RegisterManagerRoutes registers catalog mutations, manager-only.
func (h *ProductHandler) RegisterManagerRoutes(router fiber.Router) {
	productRoutes := router.Group("/products", middleware.ManagerOnly())
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
	productRoutes.Put("/:id/stock", h.HandleSetStock)
}

// HandleGetProducts lists listed products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(false)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleGetStock lists the per-size stock of a product.
func (h *ProductHandler) HandleGetStock(c *fiber.Ctx) error {
	stocks, err := h.service.GetStock(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stocks)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return respondError(c, apperr.Validation("invalid request body"))
	}
	if err := h.validate.Struct(product); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.CreateProduct(&product); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return respondError(c, apperr.Validation("invalid request body"))
	}
	product.ID = c.Params("id")
	if err := h.validate.Struct(product); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.UpdateProduct(&product); err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct unlists a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product unlisted"})
}

// SetStockRequest carries per-size quantities for a stock update.
type SetStockRequest struct {
	Entries []services.StockEntry `json:"entries" validate:"required,min=1,dive"`
}

// HandleSetStock replaces per-size quantities of a product.
func (h *ProductHandler) HandleSetStock(c *fiber.Ctx) error {
	var req SetStockRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid request body"))
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.SetStock(c.Params("id"), req.Entries); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Stock updated"})
}
