package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"corpsite_backend/internal/service"
)

type ContactController struct {
	contactService service.ContactService
}

func NewContactController(contactService service.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// Submit handles the public contact form
func (ct *ContactController) Submit(c *fiber.Ctx) error {
	input := new(service.ContactInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	sub, err := ct.contactService.Submit(c.UserContext(), *input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"reference": sub.Reference,
		"message":   "Your inquiry has been sent successfully. We will contact you soon.",
	})
}

// List returns the admin inbox, optionally filtered to unread submissions
func (ct *ContactController) List(c *fiber.Ctx) error {
	unreadOnly := c.Query("unread") == "true"

	subs, err := ct.contactService.List(c.UserContext(), currentUser(c), unreadOnly)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(subs)
}

// MarkRead flags a submission as handled
func (ct *ContactController) MarkRead(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid submission ID",
		})
	}

	if err := ct.contactService.MarkRead(c.UserContext(), currentUser(c), uint(id)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
