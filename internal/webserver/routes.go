package webserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
)

func routes(app *fiber.App, controllers Controllers) {
	app.Get("/health", controller.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	usersGroup := app.Group("/user")
	usersGroup.Post("/register", controllers.RateLimit, controllers.Users.Register)
	usersGroup.Post("/token", controllers.RateLimit, controllers.Users.Token)
	usersGroup.Get("/me", controllers.RequireAuthentication, controllers.Users.Me)

	if controllers.Auth != nil {
		authGroup := app.Group("/auth")
		authGroup.Get("/login", controllers.Auth.Login)
		authGroup.Get("/callback", controllers.Auth.Callback)
		authGroup.Get("/logout", controllers.Auth.Logout)
	}

	groupsGroup := app.Group("/travel-idea-group", controllers.RequireAuthentication)
	groupsGroup.Post("/", controllers.Groups.Create)
	groupsGroup.Get("/", controllers.Groups.List)
	groupsGroup.Get("/:id", controllers.Groups.Detail)
	groupsGroup.Put("/:id", controllers.Groups.Update)
	groupsGroup.Delete("/:id", controllers.Groups.Delete)
	groupsGroup.Post("/:id/invitation", controllers.Groups.Invite)
	groupsGroup.Get("/:id/invitation", controllers.Groups.Invitations)
	groupsGroup.Delete("/:id/invitation", controllers.Groups.Revoke)

	travelIdeasGroup := groupsGroup.Group("/:groupID/travel-idea")
	travelIdeasGroup.Post("/", controllers.TravelIdeas.Create)
	travelIdeasGroup.Get("/", controllers.TravelIdeas.List)
	travelIdeasGroup.Get("/:id", controllers.TravelIdeas.Detail)
	travelIdeasGroup.Patch("/:id", controllers.TravelIdeas.Update)
	travelIdeasGroup.Delete("/:id", controllers.TravelIdeas.Delete)

	invitationsGroup := app.Group("/invitation", controllers.RequireAuthentication)
	invitationsGroup.Get("/", controllers.Invitations.List)
	invitationsGroup.Patch("/:code", controllers.Invitations.Respond)

	destinationsGroup := app.Group("/destination")
	destinationsGroup.Post("/", controllers.Destinations.Create)
	destinationsGroup.Get("/", controllers.Destinations.List)
	destinationsGroup.Get("/:id", controllers.Destinations.Detail)
	destinationsGroup.Patch("/:id", controllers.Destinations.Update)
	destinationsGroup.Delete("/:id", controllers.Destinations.Delete)
}
