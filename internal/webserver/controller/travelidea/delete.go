package travelidea

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func (t *Controller) Delete(c *fiber.Ctx) error {
	groupID, err := t.group(c)
	if err != nil {
		return err
	}

	idea, err := t.find(c, groupID)
	if err != nil {
		return err
	}

	if err := t.travelIdeasRepository.Delete(idea); err != nil {
		return fiber.ErrInternalServerError
	}

	if err := t.idx.RemoveTravelIdea(idea.ID); err != nil {
		logrus.WithField("logger", "travelidea").WithError(err).Errorf("error removing travel idea %d from index", idea.ID)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
