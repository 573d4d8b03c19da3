package handlers

import (
	"butik/internal/apperr"
	"butik/internal/middleware"
	"butik/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/orders", h.HandleGetOwnOrders)
	allOrders := router.Group("/all-orders", middleware.ManagerOnly())
	allOrders.Get("/", h.HandleGetAllOrders)
	allOrders.Put("/:id", h.HandleUpdateDeliveryStatus)
}

// HandleGetOwnOrders retrieves the authenticated user's orders.
func (h *OrderHandler) HandleGetOwnOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetOrdersByUser(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetAllOrders retrieves all orders (manager only).
func (h *OrderHandler) HandleGetAllOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// UpdateDeliveryStatusRequest represents the request body for a delivery
// status change.
type UpdateDeliveryStatusRequest struct {
	DeliveryStatus string `json:"delivery_status" validate:"required"`
}

// HandleUpdateDeliveryStatus moves an order's delivery status (manager only).
func (h *OrderHandler) HandleUpdateDeliveryStatus(c *fiber.Ctx) error {
	var req UpdateDeliveryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid request body"))
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.UpdateDeliveryStatus(c.Params("id"), req.DeliveryStatus); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Delivery status updated successfully"})
}
