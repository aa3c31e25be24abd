package destination

import (
	"github.com/gofiber/fiber/v2"
)

func (d *Controller) Delete(c *fiber.Ctx) error {
	destination, err := d.find(c)
	if err != nil {
		return err
	}

	if err := d.destinationsRepository.Delete(destination); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.SendStatus(fiber.StatusNoContent)
}
