package telemetry

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountInvitation(t *testing.T) {
	counter := invitationsCount.With(prometheus.Labels{"outcome": InvitationRevoked})
	before := testutil.ToFloat64(counter)

	CountInvitation(InvitationRevoked)
	CountInvitation(InvitationRevoked)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestFiberLoggerRendersErrors(t *testing.T) {
	app := fiber.New()
	app.Use(NewFiberLogger(&LoggerConfig{Name: "test", DoMetrics: true, LogErrorsOnly: true}))
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	counter := httpRequestsCount.With(prometheus.Labels{"api": "test", "path": "/teapot", "method": fiber.MethodGet, "code": "418"})
	before := testutil.ToFloat64(counter)

	response, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/teapot", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusTeapot, response.StatusCode)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
