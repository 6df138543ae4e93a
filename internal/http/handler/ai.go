package handler

import (
	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/service"
)

type generateRequest struct {
	Prompt string `json:"prompt"`
	Type   string `json:"type"`
}

type summarizeRequest struct {
	Content string `json:"content"`
}

// AIActions dispatches /api/ai by the action query parameter.
func AIActions(svc service.AuthoringService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Query("action") {
		case "generate":
			return generate(c, svc)
		case "summarize":
			return summarize(c, svc)
		default:
			return writeError(c, fiber.StatusBadRequest, "Invalid AI action")
		}
	}
}

func generate(c *fiber.Ctx, svc service.AuthoringService) error {
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := svc.Generate(c.UserContext(), req.Prompt, req.Type)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(res)
}

func summarize(c *fiber.Ctx, svc service.AuthoringService) error {
	var req summarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := svc.Summarize(c.UserContext(), req.Content)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(res)
}
