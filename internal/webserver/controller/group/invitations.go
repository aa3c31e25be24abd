package group

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/access"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
)

// Invitations lists the emails with outstanding invitations to the group
func (g *Controller) Invitations(c *fiber.Ctx) error {
	id, err := controller.ID(c, "id")
	if err != nil {
		return err
	}

	if _, _, err := access.Check(g.groupsRepository, id, controller.CurrentUser(c), access.Owner); err != nil {
		return err
	}

	invitations, err := g.invitationsRepository.ListOutstandingForGroup(id)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	emails := make([]string, len(invitations))
	for i, invitation := range invitations {
		emails[i] = invitation.Email
	}
	return c.JSON(emails)
}
