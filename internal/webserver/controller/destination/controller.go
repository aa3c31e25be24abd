package destination

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
)

var errNotFound = fiber.NewError(fiber.StatusNotFound, "Destination not found")

type destinationsRepository interface {
	Create(destination *model.Destination) error
	FindByID(id uint) (*model.Destination, error)
	List() ([]model.Destination, error)
	Update(destination *model.Destination) error
	Delete(destination *model.Destination) error
}

type Controller struct {
	destinationsRepository destinationsRepository
}

// DestinationRead is the public representation of a destination
type DestinationRead struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
	ImageID     string  `json:"imageId"`
}

// NewController returns a new instance of the destinations controller
func NewController(destinationsRepository destinationsRepository) *Controller {
	return &Controller{
		destinationsRepository: destinationsRepository,
	}
}

func newDestinationRead(destination *model.Destination) DestinationRead {
	return DestinationRead{
		ID:          destination.ID,
		Name:        destination.Name,
		Description: destination.Description,
		Notes:       destination.Notes,
		ImageID:     destination.ImageID,
	}
}

func (d *Controller) find(c *fiber.Ctx) (*model.Destination, error) {
	id, err := controller.ID(c, "id")
	if err != nil {
		return nil, err
	}

	destination, err := d.destinationsRepository.FindByID(id)
	if err != nil {
		return nil, fiber.ErrInternalServerError
	}
	if destination == nil {
		return nil, errNotFound
	}
	return destination, nil
}
