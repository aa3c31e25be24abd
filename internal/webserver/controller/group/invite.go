package group

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/wanderlist/wanderlist/internal/webserver/access"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
	"github.com/wanderlist/wanderlist/internal/webserver/telemetry"
	"github.com/wanderlist/wanderlist/internal/webserver/validation"
)

var errAlreadyHasAccess = fiber.NewError(fiber.StatusBadRequest, "User can already access this travel idea group")

type inviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Invite sends an invitation to join the group to an email address
func (g *Controller) Invite(c *fiber.Ctx) error {
	id, err := controller.ID(c, "id")
	if err != nil {
		return err
	}

	var req inviteRequest
	if err := controller.Body(c, &req); err != nil {
		return err
	}

	req.Email = validation.NormalizeEmail(req.Email)

	user := controller.CurrentUser(c)
	group, members, err := access.Check(g.groupsRepository, id, user, access.Owner)
	if err != nil {
		return err
	}

	if access.CanAccess(group, members, req.Email) {
		return errAlreadyHasAccess
	}

	if err := g.invite(group, user, req.Email); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusCreated)
}

// inviteAll invites every address which cannot access the group yet, ignoring duplicates
func (g *Controller) inviteAll(group *model.Group, members []model.User, inviter *model.User, emails []string) error {
	seen := make(map[string]bool, len(emails))
	for _, email := range emails {
		email = validation.NormalizeEmail(email)
		if seen[email] || access.CanAccess(group, members, email) {
			continue
		}
		seen[email] = true

		if err := g.invite(group, inviter, email); err != nil {
			return err
		}
	}
	return nil
}

// invite sends email a new invitation to the group, replacing any pending one, and notifies the invitee
func (g *Controller) invite(group *model.Group, inviter *model.User, email string) error {
	invitation := &model.Invitation{
		Email:       email,
		ExpiresAt:   time.Now().UTC().Add(g.config.InvitationTimeout),
		CreatedByID: inviter.ID,
		GroupID:     group.ID,
	}
	if err := g.invitationsRepository.Create(invitation); err != nil {
		return fiber.ErrInternalServerError
	}
	telemetry.CountInvitation(telemetry.InvitationCreated)

	if err := g.sender.Send(
		email,
		fmt.Sprintf("%s invited you to %s", inviter.Name, group.Name),
		g.invitationBody(group, inviter, invitation),
	); err != nil {
		logrus.WithField("logger", "group").WithError(err).Warnf("error sending invitation email to %s", email)
	}
	return nil
}

func (g *Controller) invitationBody(group *model.Group, inviter *model.User, invitation *model.Invitation) string {
	fqdn := g.config.FQDN
	if !strings.HasPrefix(fqdn, "http://") && !strings.HasPrefix(fqdn, "https://") {
		fqdn = "http://" + fqdn
	}

	return fmt.Sprintf(
		"%s (%s) invited you to join the travel idea group \"%s\" on Wanderlist.\n\n"+
			"Your invitation code is %s. Sign in at %s and accept it before %s.\n",
		inviter.Name,
		inviter.Email,
		group.Name,
		invitation.Code,
		fqdn,
		invitation.ExpiresAt.Format(time.RFC1123),
	)
}
