package webserver

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
	"github.com/wanderlist/wanderlist/internal/webserver/telemetry"
	"github.com/wanderlist/wanderlist/internal/webserver/validation"
)

type Config struct {
	Version           string
	FQDN              string
	SecretKey         []byte
	TokenTimeout      time.Duration
	SessionTimeout    time.Duration
	InvitationTimeout time.Duration
	MinPasswordLength int
	LoginRateLimit    float64
	LoginRateBurst    int
}

type Sender interface {
	Send(address, subject, body string) error
}

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.Version,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	app.Use(telemetry.NewFiberLogger(&telemetry.LoggerConfig{
		Name:          "http",
		DoMetrics:     true,
		LogErrorsOnly: true,
		UserGetter: func(c *fiber.Ctx) string {
			if user := controller.CurrentUser(c); user != nil {
				return user.Email
			}
			return ""
		},
	}))
	app.Use(recover.New())

	routes(app, controllers)

	return app
}

// errorHandler sends errors back as JSON with a detail field
func errorHandler(c *fiber.Ctx, err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": verrs})
	}

	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
		// Unmatched routes
		if code == fiber.StatusNotFound && strings.HasPrefix(message, "Cannot ") {
			message = "Not Found"
		}
	} else {
		logrus.WithField("logger", "http").WithError(err).Errorf("unhandled error serving %s %s", c.Method(), c.Path())
	}

	return c.Status(code).JSON(fiber.Map{"detail": message})
}
