package travelidea

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/wanderlist/wanderlist/internal/webserver/access"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
)

var errNotFound = fiber.NewError(fiber.StatusNotFound, "Travel idea not found")

type travelIdeasRepository interface {
	Create(idea *model.TravelIdea) error
	FindInGroup(groupID, id uint) (*model.TravelIdea, error)
	ListForGroup(groupID uint) ([]model.TravelIdea, error)
	FindByIDs(groupID uint, ids []uint) ([]model.TravelIdea, error)
	Update(idea *model.TravelIdea) error
	Delete(idea *model.TravelIdea) error
}

type groupsRepository interface {
	FindByID(id uint) (*model.Group, error)
}

type idx interface {
	AddTravelIdea(idea model.TravelIdea) error
	RemoveTravelIdea(id uint) error
	Search(groupID uint, keywords string, limit int) ([]uint, error)
}

type Controller struct {
	travelIdeasRepository travelIdeasRepository
	groupsRepository      groupsRepository
	idx                   idx
}

// TravelIdeaRead is the public representation of a travel idea
type TravelIdeaRead struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	ImageURL string  `json:"imageUrl"`
	Notes    *string `json:"notes"`
}

// NewController returns a new instance of the travel ideas controller
func NewController(travelIdeasRepository travelIdeasRepository, groupsRepository groupsRepository, idx idx) *Controller {
	return &Controller{
		travelIdeasRepository: travelIdeasRepository,
		groupsRepository:      groupsRepository,
		idx:                   idx,
	}
}

func newTravelIdeaRead(idea *model.TravelIdea) TravelIdeaRead {
	return TravelIdeaRead{
		ID:       idea.ID,
		Name:     idea.Name,
		ImageURL: idea.ImageURL,
		Notes:    idea.Notes,
	}
}

// group parses the group in the path and checks the current user is a member of it
func (t *Controller) group(c *fiber.Ctx) (uint, error) {
	groupID, err := controller.ID(c, "groupID")
	if err != nil {
		return 0, err
	}

	if _, _, err := access.Check(t.groupsRepository, groupID, controller.CurrentUser(c), access.Member); err != nil {
		return 0, err
	}
	return groupID, nil
}

// find returns the travel idea in the path, which must belong to the group
func (t *Controller) find(c *fiber.Ctx, groupID uint) (*model.TravelIdea, error) {
	id, err := controller.ID(c, "id")
	if err != nil {
		return nil, err
	}

	idea, err := t.travelIdeasRepository.FindInGroup(groupID, id)
	if err != nil {
		return nil, fiber.ErrInternalServerError
	}
	if idea == nil {
		return nil, errNotFound
	}
	return idea, nil
}

func (t *Controller) reindex(idea *model.TravelIdea) {
	if err := t.idx.AddTravelIdea(*idea); err != nil {
		logrus.WithField("logger", "travelidea").WithError(err).Errorf("error indexing travel idea %d", idea.ID)
	}
}
