package invitation

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
)

// List returns the invitations the current user can still answer, oldest first
func (i *Controller) List(c *fiber.Ctx) error {
	invitations, err := i.invitationsRepository.ListValidForEmail(controller.CurrentUser(c).Email)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	res := make([]InvitationRead, len(invitations))
	for n, invitation := range invitations {
		res[n] = InvitationRead{
			InvitationCode: invitation.Code,
			InvitedBy:      controller.NewUserRead(invitation.CreatedBy),
		}
		if invitation.Group != nil {
			res[n].TravelIdeaGroupName = invitation.Group.Name
		}
	}
	return c.JSON(res)
}
