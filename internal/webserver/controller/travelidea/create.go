package travelidea

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
	"github.com/wanderlist/wanderlist/internal/webserver/validation"
)

type createRequest struct {
	Name     string  `json:"name" validate:"required,max=50"`
	ImageURL string  `json:"imageUrl" validate:"required,max=255"`
	Notes    *string `json:"notes" validate:"omitempty,max=750"`
}

// Create adds a travel idea to the group
func (t *Controller) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := controller.Body(c, &req); err != nil {
		return err
	}

	groupID, err := t.group(c)
	if err != nil {
		return err
	}

	idea := model.TravelIdea{
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		Notes:       validation.NilIfBlank(req.Notes),
		CreatedByID: controller.CurrentUser(c).ID,
		GroupID:     groupID,
	}
	if err := t.travelIdeasRepository.Create(&idea); err != nil {
		return fiber.ErrInternalServerError
	}
	t.reindex(&idea)

	return c.JSON(newTravelIdeaRead(&idea))
}
