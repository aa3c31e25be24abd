package group

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/access"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
)

type updateRequest struct {
	Name       string   `json:"name" validate:"required,max=50"`
	SharedWith []string `json:"sharedWith" validate:"omitempty,dive,email"`
}

// Update renames a group and invites the addresses in sharedWith which cannot access it yet
func (g *Controller) Update(c *fiber.Ctx) error {
	id, err := controller.ID(c, "id")
	if err != nil {
		return err
	}

	var req updateRequest
	if err := controller.Body(c, &req); err != nil {
		return err
	}

	user := controller.CurrentUser(c)
	group, members, err := access.Check(g.groupsRepository, id, user, access.Owner)
	if err != nil {
		return err
	}

	if err := g.groupsRepository.UpdateName(group, req.Name); err != nil {
		return fiber.ErrInternalServerError
	}
	group.Name = req.Name

	if err := g.inviteAll(group, members, user, req.SharedWith); err != nil {
		return err
	}

	return c.JSON(newGroupRead(group, members))
}
