package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Login redirects the user to the provider sign in page
func (a *Controller) Login(c *fiber.Ctx) error {
	sess, err := a.sessions.Get(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	state := uuid.NewString()
	sess.Set(stateKey, state)
	if err := sess.Save(); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(a.provider.AuthCodeURL(state))
}
