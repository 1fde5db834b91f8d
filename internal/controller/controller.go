package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"corpsite_backend/internal/model"
	"corpsite_backend/internal/repository"
	"corpsite_backend/internal/service"
	"corpsite_backend/pkg/validation"
)

// currentUser returns the authenticated user set by the auth middleware,
// or nil when the request is anonymous.
func currentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals("user").(*model.User)
	return user
}

// respondError servis hatalarını HTTP cevaplarına çevirir
func respondError(c *fiber.Ctx, err error) error {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Invalid input",
			"fields": verrs,
		})
	case errors.Is(err, service.ErrPermissionDenied):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Something went wrong",
		})
	}
}
