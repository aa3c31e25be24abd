package auth

import (
	"github.com/gofiber/fiber/v2"
)

// Logout forgets the signed in user
func (a *Controller) Logout(c *fiber.Ctx) error {
	sess, err := a.sessions.Get(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	sess.Delete(SessionUserKey)
	if err := sess.Save(); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/")
}
