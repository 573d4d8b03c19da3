package handlers

import (
	"butik/internal/apperr"
	"butik/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles the two-step payment flow: minting a gateway
// transaction and verifying the signed payment callback.
type CheckoutHandler struct {
	service  *services.CheckoutService
	validate *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/create-order", h.HandleCreateOrder)
	router.Post("/verify-payment", h.HandleVerifyPayment)
}

// CreateOrderRequest carries the client-claimed total in paisa.
type CreateOrderRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// HandleCreateOrder opens a gateway transaction for the reconciled cart
// total and returns the client-facing payment handle.
func (h *CheckoutHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid request body"))
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	resp, err := h.service.Initiate(currentUserID(c), req.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// VerifyPaymentRequest carries the gateway's payment callback fields.
type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// HandleVerifyPayment authenticates the payment callback and materializes
// the order.
func (h *CheckoutHandler) HandleVerifyPayment(c *fiber.Ctx) error {
	var req VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid request body"))
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	order, err := h.service.VerifyPayment(currentUserID(c), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Payment verified, order created",
		"order":   order,
	})
}
