package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
)

// Me returns the account of the authenticated user
func (u *Controller) Me(c *fiber.Ctx) error {
	return c.JSON(controller.NewUserRead(controller.CurrentUser(c)))
}
