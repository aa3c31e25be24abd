package controller

import "github.com/gofiber/fiber/v2"

// Health reports that the service is up
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}
