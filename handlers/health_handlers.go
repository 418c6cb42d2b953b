package handlers

import "github.com/gofiber/fiber/v2"

// HandleHealth reports the service status, version and company.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": Version,
		"empresa": company,
	})
}
