package handler

import (
	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/service"
)

// SearchContent runs a semantic search over indexed content.
func SearchContent(svc service.SearchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		limit := c.QueryInt("limit", 10)

		res, err := svc.Search(c.UserContext(), query, limit)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}
