package destination

import (
	"github.com/gofiber/fiber/v2"
)

func (d *Controller) List(c *fiber.Ctx) error {
	destinations, err := d.destinationsRepository.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	res := make([]DestinationRead, len(destinations))
	for i := range destinations {
		res[i] = newDestinationRead(&destinations[i])
	}
	return c.JSON(res)
}
