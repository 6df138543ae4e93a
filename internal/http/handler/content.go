package handler

import (
	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/service"
)

// ListContent returns the paginated content listing. Absent or non-numeric
// limit/offset fall back to 20 and 0; the response shape
// {items, total, limit, offset} is a contract surface.
func ListContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 20)
		offset := c.QueryInt("offset", 0)

		page, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(page)
	}
}

// GetContent returns a single content record by id.
func GetContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		content, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(content)
	}
}

// CreateContent creates a content record and triggers best-effort search
// indexing. An indexing failure never turns a stored record into an error
// response; the handler returns 201 either way.
func CreateContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateContentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		res, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res.Content)
	}
}

// UpdateContent applies a partial update; only non-empty fields replace the
// stored values.
func UpdateContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdateContentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		content, err := svc.Update(c.UserContext(), c.Params("id"), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(content)
	}
}

// DeleteContent removes a record and, best-effort, its index entry.
func DeleteContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Delete(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{
			"message": "Content deleted successfully",
			"id":      res.ID,
		})
	}
}
