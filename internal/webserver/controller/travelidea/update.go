package travelidea

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
	"github.com/wanderlist/wanderlist/internal/webserver/validation"
)

type updateRequest struct {
	Name     validation.Optional[string] `json:"name"`
	ImageURL validation.Optional[string] `json:"imageUrl"`
	Notes    validation.Optional[string] `json:"notes"`
}

// Update changes the fields present in the request. Notes can be cleared sending null.
func (t *Controller) Update(c *fiber.Ctx) error {
	var req updateRequest
	if err := controller.Body(c, &req); err != nil {
		return err
	}

	var errs validation.Errors
	errs = append(errs, validation.String("name", req.Name, 50, false)...)
	errs = append(errs, validation.String("imageUrl", req.ImageURL, 255, false)...)
	errs = append(errs, validation.String("notes", req.Notes, 750, true)...)
	if len(errs) > 0 {
		return errs
	}

	groupID, err := t.group(c)
	if err != nil {
		return err
	}

	idea, err := t.find(c, groupID)
	if err != nil {
		return err
	}

	if req.Name.Set {
		idea.Name = *req.Name.Value
	}
	if req.ImageURL.Set {
		idea.ImageURL = *req.ImageURL.Value
	}
	if req.Notes.Set {
		idea.Notes = validation.BlankAsNull(req.Notes).Value
	}

	if err := t.travelIdeasRepository.Update(idea); err != nil {
		return fiber.ErrInternalServerError
	}
	t.reindex(idea)

	return c.JSON(newTravelIdeaRead(idea))
}
