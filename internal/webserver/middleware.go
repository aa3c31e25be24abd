package webserver

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
	"github.com/wanderlist/wanderlist/internal/webserver/controller/auth"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
)

var (
	errNotAuthenticated   = fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
	errInvalidCredentials = fiber.NewError(fiber.StatusUnauthorized, "Could not validate credentials")
	errUnknownUser        = fiber.NewError(fiber.StatusForbidden, "User not found in database")
)

type usersRepository interface {
	FindByEmail(email string) (*model.User, error)
}

// RequireAuthentication resolves the user making the request from a bearer token or,
// when the request carries none, from the session. Requests with no identity are rejected.
func RequireAuthentication(secret []byte, users usersRepository, sessions *session.Store) fiber.Handler {
	bearer := jwtware.New(jwtware.Config{
		SigningKey:    secret,
		SigningMethod: "HS256",
		TokenLookup:   "header:" + fiber.HeaderAuthorization,
		AuthScheme:    "Bearer",
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return unauthorized(c, errInvalidCredentials)
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c, errInvalidCredentials)
			}
			email, _ := claims["sub"].(string)
			if email == "" {
				return unauthorized(c, errInvalidCredentials)
			}
			return authenticate(c, users, email)
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c, errInvalidCredentials)
		},
	})

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header != "" {
			if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
				return unauthorized(c, errNotAuthenticated)
			}
			return bearer(c)
		}

		if sessions != nil {
			sess, err := sessions.Get(c)
			if err != nil {
				return fiber.ErrInternalServerError
			}
			if email, ok := sess.Get(auth.SessionUserKey).(string); ok && email != "" {
				return authenticate(c, users, email)
			}
		}

		return unauthorized(c, errNotAuthenticated)
	}
}

func authenticate(c *fiber.Ctx, users usersRepository, email string) error {
	user, err := users.FindByEmail(email)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return errUnknownUser
	}

	c.Locals(controller.UserLocal, user)
	return c.Next()
}

func unauthorized(c *fiber.Ctx, err error) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return err
}
