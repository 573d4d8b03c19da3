package handlers

import (
	"butik/internal/apperr"
	"butik/internal/models"
	"butik/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AddressHandler handles HTTP requests for the user's shipping address.
type AddressHandler struct {
	userRepo repositories.UserRepository
	validate *validator.Validate
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(userRepo repositories.UserRepository) *AddressHandler {
	return &AddressHandler{
		userRepo: userRepo,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the address routes with the Fiber app.
func (h *AddressHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/address", h.HandleGetAddress)
	router.Put("/address", h.HandleSaveAddress)
}

// HandleGetAddress returns the authenticated user's address.
func (h *AddressHandler) HandleGetAddress(c *fiber.Ctx) error {
	address, err := h.userRepo.GetAddressByUser(currentUserID(c))
	if err != nil {
		return respondError(c, apperr.NotFound("address not found for user"))
	}
	return c.JSON(address)
}

// HandleSaveAddress creates or replaces the authenticated user's address.
func (h *AddressHandler) HandleSaveAddress(c *fiber.Ctx) error {
	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		return respondError(c, apperr.Validation("invalid request body"))
	}
	if err := h.validate.Struct(address); err != nil {
		return respondValidation(c, err)
	}

	address.UserID = currentUserID(c)
	if err := h.userRepo.SaveAddress(&address); err != nil {
		return respondError(c, err)
	}
	return c.JSON(address)
}
