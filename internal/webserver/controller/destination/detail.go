package destination

import (
	"github.com/gofiber/fiber/v2"
)

func (d *Controller) Detail(c *fiber.Ctx) error {
	destination, err := d.find(c)
	if err != nil {
		return err
	}

	return c.JSON(newDestinationRead(destination))
}
