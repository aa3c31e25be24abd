package webserver_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderlist/wanderlist/internal/webserver/controller/user"
	"github.com/wanderlist/wanderlist/internal/webserver/infrastructure"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
)

func TestRegister(t *testing.T) {
	db := connect(t)
	app, _ := bootstrapApp(t, db, &infrastructure.NoEmail{}, nil)

	t.Run("Register a new user", func(t *testing.T) {
		response := request(t, app, http.MethodPost, "/user/register", "", map[string]string{
			"email":    "traveller@example.com",
			"password": "secret123",
			"name":     "Traveller",
		})
		mustReturnStatus(response, fiber.StatusCreated, t)
		assert.Equal(t, map[string]any{"email": "traveller@example.com", "name": "Traveller"}, decode[map[string]any](t, response))

		var stored model.User
		require.NoError(t, db.Where("email = ?", "traveller@example.com").First(&stored).Error)
		assert.NotEqual(t, "secret123", stored.PasswordHash)
		assert.True(t, stored.CheckPassword("secret123"))
	})

	t.Run("Registering an existing email fails", func(t *testing.T) {
		response := request(t, app, http.MethodPost, "/user/register", "", map[string]string{
			"email":    "traveller@example.com",
			"password": "another123",
			"name":     "Impostor",
		})
		mustReturnStatus(response, fiber.StatusBadRequest, t)
		assert.Equal(t, "An unexpected error occurred.", detail(t, response))
		assert.Equal(t, int64(1), countRows(t, db, &model.User{}, "email = ?", "traveller@example.com"))
	})

	t.Run("Email domains are stored lowercased", func(t *testing.T) {
		response := request(t, app, http.MethodPost, "/user/register", "", map[string]string{
			"email":    "Jane.Doe@Example.COM",
			"password": "secret123",
			"name":     "Jane",
		})
		mustReturnStatus(response, fiber.StatusCreated, t)
		assert.Equal(t, "Jane.Doe@example.com", decode[map[string]any](t, response)["email"])

		response = request(t, app, http.MethodPost, "/user/register", "", map[string]string{
			"email":    "Jane.Doe@EXAMPLE.com",
			"password": "secret123",
			"name":     "Jane again",
		})
		mustReturnStatus(response, fiber.StatusBadRequest, t)

		response = login(t, app, "Jane.Doe@example.COM", "secret123")
		mustReturnStatus(response, fiber.StatusOK, t)
	})

	var cases = []struct {
		name           string
		body           map[string]string
		expectedFields []string
	}{
		{"Missing fields", map[string]string{}, []string{"email", "password", "name"}},
		{"Malformed email", map[string]string{"email": "nope", "password": "secret123", "name": "N"}, []string{"email"}},
		{"Password too short", map[string]string{"email": "short@example.com", "password": "abc", "name": "N"}, []string{"password"}},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			response := request(t, app, http.MethodPost, "/user/register", "", tcase.body)
			mustReturnStatus(response, fiber.StatusUnprocessableEntity, t)
			assert.Equal(t, tcase.expectedFields, validationFields(t, response))
		})
	}
}

func TestToken(t *testing.T) {
	db := connect(t)
	app, _ := bootstrapApp(t, db, &infrastructure.NoEmail{}, nil)
	createUser(t, db, "traveller@example.com", "Traveller")

	t.Run("Valid credentials return a bearer token", func(t *testing.T) {
		response := login(t, app, "traveller@example.com", testPassword)
		mustReturnStatus(response, fiber.StatusOK, t)

		body := decode[map[string]string](t, response)
		assert.Equal(t, "bearer", body["token_type"])
		require.NotEmpty(t, body["access_token"])

		me := request(t, app, http.MethodGet, "/user/me", body["access_token"], nil)
		mustReturnStatus(me, fiber.StatusOK, t)
		assert.Equal(t, map[string]any{"email": "traveller@example.com", "name": "Traveller"}, decode[map[string]any](t, me))
	})

	var cases = []struct {
		name     string
		email    string
		password string
	}{
		{"Wrong password", "traveller@example.com", "wrong"},
		{"Unknown email", "nobody@example.com", testPassword},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			response := login(t, app, tcase.email, tcase.password)
			mustReturnStatus(response, fiber.StatusUnauthorized, t)
			assert.Equal(t, "Bearer", response.Header.Get(fiber.HeaderWWWAuthenticate))
			assert.Equal(t, "Incorrect username or password", detail(t, response))
		})
	}

	t.Run("Missing form fields are reported", func(t *testing.T) {
		response := rawRequest(t, app, http.MethodPost, "/user/token", "", fiber.MIMEApplicationForm, "")
		mustReturnStatus(response, fiber.StatusUnprocessableEntity, t)
		assert.Equal(t, []string{"username", "password"}, validationFields(t, response))
	})
}

func TestAuthentication(t *testing.T) {
	db := connect(t)
	app, _ := bootstrapApp(t, db, &infrastructure.NoEmail{}, nil)
	traveller := createUser(t, db, "traveller@example.com", "Traveller")

	expired, err := user.GenerateToken(traveller.Email, time.Now().Add(-time.Minute), []byte(testSecret))
	require.NoError(t, err)
	forged, err := user.GenerateToken(traveller.Email, time.Now().Add(time.Hour), []byte("another-secret"))
	require.NoError(t, err)
	deleted, err := user.GenerateToken("deleted@example.com", time.Now().Add(time.Hour), []byte(testSecret))
	require.NoError(t, err)

	var cases = []struct {
		name           string
		authorization  string
		expectedStatus int
		expectedDetail string
	}{
		{"No credentials", "", fiber.StatusUnauthorized, "Not authenticated"},
		{"Other authorization schemes", "Basic dXNlcjpwYXNz", fiber.StatusUnauthorized, "Not authenticated"},
		{"Malformed token", "Bearer not-a-token", fiber.StatusUnauthorized, "Could not validate credentials"},
		{"Expired token", "Bearer " + expired, fiber.StatusUnauthorized, "Could not validate credentials"},
		{"Token signed with another key", "Bearer " + forged, fiber.StatusUnauthorized, "Could not validate credentials"},
		{"Token of a user no longer stored", "Bearer " + deleted, fiber.StatusForbidden, "User not found in database"},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/user/me", nil)
			require.NoError(t, err)
			if tcase.authorization != "" {
				req.Header.Set(fiber.HeaderAuthorization, tcase.authorization)
			}

			response, err := app.Test(req, -1)
			require.NoError(t, err)
			mustReturnStatus(response, tcase.expectedStatus, t)
			assert.Equal(t, tcase.expectedDetail, detail(t, response))
		})
	}
}
