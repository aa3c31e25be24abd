package group

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/wanderlist/wanderlist/internal/webserver/access"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
)

// Delete removes a group along with its members, invitations and travel ideas
func (g *Controller) Delete(c *fiber.Ctx) error {
	id, err := controller.ID(c, "id")
	if err != nil {
		return err
	}

	group, _, err := access.Check(g.groupsRepository, id, controller.CurrentUser(c), access.Owner)
	if err != nil {
		return err
	}

	if err := g.groupsRepository.Delete(group); err != nil {
		return fiber.ErrInternalServerError
	}

	if err := g.idx.RemoveGroup(group.ID); err != nil {
		logrus.WithField("logger", "group").WithError(err).Errorf("error removing group %d from index", group.ID)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
