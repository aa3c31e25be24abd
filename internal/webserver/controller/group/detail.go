package group

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/access"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
)

func (g *Controller) Detail(c *fiber.Ctx) error {
	id, err := controller.ID(c, "id")
	if err != nil {
		return err
	}

	group, members, err := access.Check(g.groupsRepository, id, controller.CurrentUser(c), access.Member)
	if err != nil {
		return err
	}

	return c.JSON(newGroupRead(group, members))
}
