package user

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/wanderlist/wanderlist/internal/webserver/validation"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token checks the submitted credentials and gives the user a bearer JWT
func (u *Controller) Token(c *fiber.Ctx) error {
	email := c.FormValue("username")
	password := c.FormValue("password")

	var errs validation.Errors
	if email == "" {
		errs = append(errs, validation.FieldError{Loc: []string{"body", "username"}, Msg: "Field required", Type: "missing"})
	}
	if password == "" {
		errs = append(errs, validation.FieldError{Loc: []string{"body", "password"}, Msg: "Field required", Type: "missing"})
	}
	if len(errs) > 0 {
		return errs
	}

	user, err := u.usersRepository.FindByEmail(validation.NormalizeEmail(email))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if user == nil || !user.CheckPassword(password) {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return fiber.NewError(fiber.StatusUnauthorized, "Incorrect username or password")
	}

	signedToken, err := GenerateToken(user.Email, time.Now().Add(u.config.TokenTimeout), u.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(tokenResponse{
		AccessToken: signedToken,
		TokenType:   "bearer",
	})
}

// GenerateToken signs a token identifying the user with the given email until expiration
func GenerateToken(email string, expiration time.Time, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"exp": jwt.NewNumericDate(expiration),
	})

	return token.SignedString(secret)
}
