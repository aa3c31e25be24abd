package group

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/access"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
	"github.com/wanderlist/wanderlist/internal/webserver/telemetry"
	"github.com/wanderlist/wanderlist/internal/webserver/validation"
)

var errInvitationNotFound = fiber.NewError(fiber.StatusNotFound, "Valid invitation not found")

// Revoke deletes the valid invitation of an email to the group
func (g *Controller) Revoke(c *fiber.Ctx) error {
	id, err := controller.ID(c, "id")
	if err != nil {
		return err
	}

	var req inviteRequest
	if err := controller.Body(c, &req); err != nil {
		return err
	}

	if _, _, err := access.Check(g.groupsRepository, id, controller.CurrentUser(c), access.Owner); err != nil {
		return err
	}

	invitation, err := g.invitationsRepository.FindValid(validation.NormalizeEmail(req.Email), id, "")
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if invitation == nil {
		return errInvitationNotFound
	}

	if err := g.invitationsRepository.Delete(invitation); err != nil {
		return fiber.ErrInternalServerError
	}
	telemetry.CountInvitation(telemetry.InvitationRevoked)

	return c.SendStatus(fiber.StatusNoContent)
}
