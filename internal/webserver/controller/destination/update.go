package destination

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
	"github.com/wanderlist/wanderlist/internal/webserver/validation"
)

type updateRequest struct {
	Name        validation.Optional[string] `json:"name"`
	Description validation.Optional[string] `json:"description"`
	Notes       validation.Optional[string] `json:"notes"`
	ImageID     validation.Optional[string] `json:"imageId"`
}

// Update changes the fields present in the request. Description and notes can be cleared sending null.
func (d *Controller) Update(c *fiber.Ctx) error {
	var req updateRequest
	if err := controller.Body(c, &req); err != nil {
		return err
	}

	var errs validation.Errors
	errs = append(errs, validation.String("name", req.Name, 30, false)...)
	errs = append(errs, validation.String("description", req.Description, 250, true)...)
	errs = append(errs, validation.String("notes", req.Notes, 750, true)...)
	errs = append(errs, validation.String("imageId", req.ImageID, 255, false)...)
	if len(errs) > 0 {
		return errs
	}

	destination, err := d.find(c)
	if err != nil {
		return err
	}

	if req.Name.Set {
		destination.Name = *req.Name.Value
	}
	if req.Description.Set {
		destination.Description = validation.BlankAsNull(req.Description).Value
	}
	if req.Notes.Set {
		destination.Notes = validation.BlankAsNull(req.Notes).Value
	}
	if req.ImageID.Set {
		destination.ImageID = *req.ImageID.Value
	}

	if err := d.destinationsRepository.Update(destination); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(newDestinationRead(destination))
}
