package user

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
	"github.com/wanderlist/wanderlist/internal/webserver/validation"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required,max=120"`
}

// Register creates a new user account
func (u *Controller) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := controller.Body(c, &req); err != nil {
		return err
	}

	if len(req.Password) < u.config.MinPasswordLength {
		return validation.Errors{{
			Loc:  []string{"body", "password"},
			Msg:  fmt.Sprintf("String should have at least %d characters", u.config.MinPasswordLength),
			Type: "string_too_short",
		}}
	}

	req.Email = validation.NormalizeEmail(req.Email)
	existing, err := u.usersRepository.FindByEmail(req.Email)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if existing != nil {
		return fiber.NewError(fiber.StatusBadRequest, "An unexpected error occurred.")
	}

	user := model.User{
		Email: req.Email,
		Name:  req.Name,
	}
	if err := user.SetPassword(req.Password); err != nil {
		logrus.WithField("logger", "user").WithError(err).Error("error hashing password")
		return fiber.ErrInternalServerError
	}

	if err := u.usersRepository.Create(&user); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "An unexpected error occurred.")
	}

	return c.Status(fiber.StatusCreated).JSON(controller.NewUserRead(&user))
}
