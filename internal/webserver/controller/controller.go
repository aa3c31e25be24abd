// Package controller holds helpers shared by the resource controllers.
package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
	"github.com/wanderlist/wanderlist/internal/webserver/validation"
)

// UserLocal is the key under which the authenticated user is stored in the request locals
const UserLocal = "User"

// UserRead is the public representation of a user account
type UserRead struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func NewUserRead(user *model.User) UserRead {
	if user == nil {
		return UserRead{}
	}
	return UserRead{Email: user.Email, Name: user.Name}
}

// CurrentUser returns the authenticated user of the request, or nil if there is none
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(UserLocal).(*model.User)
	return user
}

// ID reads a numeric path parameter
func ID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 64)
	if err != nil {
		return 0, validation.Errors{{
			Loc:  []string{"path", param},
			Msg:  "Input should be a valid integer, unable to parse string as an integer",
			Type: "int_parsing",
		}}
	}
	return uint(id), nil
}

// Body decodes the request body into dst and validates it
func Body(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return validation.InvalidBody(err)
	}
	return validation.Struct(dst)
}
