package invitation

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
	"github.com/wanderlist/wanderlist/internal/webserver/telemetry"
	"gorm.io/gorm"
)

var errNotFound = fiber.NewError(fiber.StatusNotFound, "Valid invitation not found")

type respondRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

type respondResponse struct {
	InvitationCode string                 `json:"invitationCode"`
	Status         model.InvitationStatus `json:"status"`
}

// Respond accepts or rejects an invitation sent to the current user.
// Accepting it makes the user a member of the group.
func (i *Controller) Respond(c *fiber.Ctx) error {
	var req respondRequest
	if err := controller.Body(c, &req); err != nil {
		return err
	}

	user := controller.CurrentUser(c)
	invitation, err := i.invitationsRepository.FindValid(user.Email, 0, c.Params("code"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if invitation == nil {
		return errNotFound
	}

	status := model.InvitationStatus(req.Status)
	if err := i.invitationsRepository.Respond(invitation, user.ID, status); err != nil {
		// Answered by a concurrent request since it was found
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound
		}
		return fiber.ErrInternalServerError
	}

	if status == model.InvitationAccepted {
		telemetry.CountInvitation(telemetry.InvitationAccepted)
	} else {
		telemetry.CountInvitation(telemetry.InvitationRejected)
	}

	return c.JSON(respondResponse{
		InvitationCode: invitation.Code,
		Status:         invitation.Status,
	})
}
