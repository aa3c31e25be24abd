package travelidea

import (
	"github.com/gofiber/fiber/v2"
)

func (t *Controller) Detail(c *fiber.Ctx) error {
	groupID, err := t.group(c)
	if err != nil {
		return err
	}

	idea, err := t.find(c, groupID)
	if err != nil {
		return err
	}

	return c.JSON(newTravelIdeaRead(idea))
}
