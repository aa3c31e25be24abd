package destination

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
	"github.com/wanderlist/wanderlist/internal/webserver/validation"
)

type createRequest struct {
	Name        string  `json:"name" validate:"required,max=30"`
	Description *string `json:"description" validate:"omitempty,max=250"`
	Notes       *string `json:"notes" validate:"omitempty,max=750"`
	ImageID     string  `json:"imageId" validate:"required,max=255"`
}

func (d *Controller) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := controller.Body(c, &req); err != nil {
		return err
	}

	destination := model.Destination{
		Name:        req.Name,
		Description: validation.NilIfBlank(req.Description),
		Notes:       validation.NilIfBlank(req.Notes),
		ImageID:     req.ImageID,
	}
	if err := d.destinationsRepository.Create(&destination); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(newDestinationRead(&destination))
}
