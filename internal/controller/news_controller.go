package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"corpsite_backend/internal/service"
)

type NewsController struct {
	newsService service.NewsService
}

func NewNewsController(newsService service.NewsService) *NewsController {
	return &NewsController{newsService: newsService}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

// List returns published posts for the public site, newest first
func (ct *NewsController) List(c *fiber.Ctx) error {
	posts, err := ct.newsService.ListPublished(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetByID returns a single post or 404
func (ct *NewsController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid news ID",
		})
	}

	post, err := ct.newsService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// Create publishes a new post, optionally with an AI generated thumbnail
func (ct *NewsController) Create(c *fiber.Ctx) error {
	input := new(service.NewsCreateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	post, err := ct.newsService.Create(c.UserContext(), currentUser(c), *input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"post":    post,
	})
}

// Update changes a post's title and/or content
func (ct *NewsController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid news ID",
		})
	}

	input := new(service.NewsUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := ct.newsService.Update(c.UserContext(), currentUser(c), id, *input); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// Delete removes a post; deleting an unknown id succeeds as a no-op
func (ct *NewsController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid news ID",
		})
	}

	if err := ct.newsService.Delete(c.UserContext(), currentUser(c), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// ListAll returns every post, drafts included, for the admin dashboard
func (ct *NewsController) ListAll(c *fiber.Ctx) error {
	posts, err := ct.newsService.ListAll(c.UserContext(), currentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}
