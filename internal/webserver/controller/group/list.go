package group

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
)

// List returns the groups the current user owns or is a member of
func (g *Controller) List(c *fiber.Ctx) error {
	groups, err := g.groupsRepository.ListForUser(controller.CurrentUser(c).ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	res := make([]GroupRead, len(groups))
	for i := range groups {
		res[i] = newGroupRead(&groups[i], groups[i].MemberUsers())
	}
	return c.JSON(res)
}
