package group

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
)

type createRequest struct {
	Name       string   `json:"name" validate:"required,max=50"`
	SharedWith []string `json:"sharedWith" validate:"omitempty,dive,email"`
}

// Create stores a new group owned by the current user and invites the addresses in sharedWith
func (g *Controller) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := controller.Body(c, &req); err != nil {
		return err
	}

	user := controller.CurrentUser(c)
	group := model.Group{
		Name:      req.Name,
		OwnedByID: user.ID,
		OwnedBy:   user,
	}
	if err := g.groupsRepository.Create(&group); err != nil {
		return fiber.ErrInternalServerError
	}

	if err := g.inviteAll(&group, nil, user, req.SharedWith); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newGroupRead(&group, nil))
}
