package handlers

import (
	"fmt"
	"log"

	"butik/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondError translates domain errors into structured JSON responses with
// a stable machine-readable code. Anything that is not an apperr is treated
// as an infrastructure failure: logged and hidden behind a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	if e, ok := apperr.As(err); ok {
		body := fiber.Map{
			"code":    e.Code,
			"message": e.Message,
		}
		if len(e.Details) > 0 {
			body["details"] = e.Details
		}
		return c.Status(apperr.HTTPStatus(e.Code)).JSON(body)
	}

	log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":    "internal_error",
		"message": "Something went wrong",
	})
}

// respondValidation formats validator failures into field-level messages.
func respondValidation(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return respondError(c, apperr.Validation("invalid request"))
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    "validation_error",
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// currentUserID reads the authenticated user's ID placed by the JWT middleware.
func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}
