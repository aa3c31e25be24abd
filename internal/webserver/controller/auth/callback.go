package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
)

const failedMessage = "<h1>Authentication failed. Please try again.</h1>"

var errSignInFailed = errors.New("sign in failed")

// Callback completes the sign in started by Login. Users signing in for the first time get an account.
func (a *Controller) Callback(c *fiber.Ctx) error {
	sess, err := a.sessions.Get(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	state, _ := sess.Get(stateKey).(string)
	sess.Delete(stateKey)

	user, err := a.signIn(c, state)
	if errors.Is(err, errSignInFailed) {
		if err := sess.Save(); err != nil {
			return fiber.ErrInternalServerError
		}
		return failed(c)
	}
	if err != nil {
		return err
	}

	sess.Set(SessionUserKey, user.Email)
	if err := sess.Save(); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/")
}

// signIn resolves the account of the user coming back from the provider, creating it when needed
func (a *Controller) signIn(c *fiber.Ctx, state string) (*model.User, error) {
	log := logrus.WithField("logger", "auth")

	if state == "" || state != c.Query("state") || c.Query("code") == "" {
		log.Warn("oauth callback with missing or mismatched state")
		return nil, errSignInFailed
	}

	info, err := a.provider.User(c.UserContext(), c.Query("code"))
	if err != nil {
		log.WithError(err).Warn("oauth sign in failed")
		return nil, errSignInFailed
	}

	user, err := a.repository.FindByEmail(info.Email)
	if err != nil {
		return nil, fiber.ErrInternalServerError
	}
	if user == nil {
		user = &model.User{Email: info.Email, Name: info.Name}
		if err := a.repository.Create(user); err != nil {
			return nil, fiber.ErrInternalServerError
		}
		log.Infof("created account for %s", user.Email)
	}
	return user, nil
}

func failed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusBadRequest).SendString(failedMessage)
}
