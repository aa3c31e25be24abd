package travelidea

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
)

// List returns the travel ideas of the group. When the q query parameter is present,
// only the ideas matching its keywords are returned, best matches first. Neither listing is capped.
func (t *Controller) List(c *fiber.Ctx) error {
	groupID, err := t.group(c)
	if err != nil {
		return err
	}

	var ideas []model.TravelIdea
	if keywords := strings.TrimSpace(c.Query("q")); keywords != "" {
		ids, err := t.idx.Search(groupID, keywords, 0)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		ideas, err = t.travelIdeasRepository.FindByIDs(groupID, ids)
		if err != nil {
			return fiber.ErrInternalServerError
		}
	} else {
		ideas, err = t.travelIdeasRepository.ListForGroup(groupID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
	}

	res := make([]TravelIdeaRead, len(ideas))
	for i := range ideas {
		res[i] = newTravelIdeaRead(&ideas[i])
	}
	return c.JSON(res)
}
