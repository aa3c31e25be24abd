package webserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/wanderlist/wanderlist/internal/index"
	"github.com/wanderlist/wanderlist/internal/webserver/controller/auth"
	"github.com/wanderlist/wanderlist/internal/webserver/controller/destination"
	"github.com/wanderlist/wanderlist/internal/webserver/controller/group"
	"github.com/wanderlist/wanderlist/internal/webserver/controller/invitation"
	"github.com/wanderlist/wanderlist/internal/webserver/controller/travelidea"
	"github.com/wanderlist/wanderlist/internal/webserver/controller/user"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
	"gorm.io/gorm"
)

type Controllers struct {
	Users                 *user.Controller
	Auth                  *auth.Controller
	Groups                *group.Controller
	TravelIdeas           *travelidea.Controller
	Invitations           *invitation.Controller
	Destinations          *destination.Controller
	RequireAuthentication fiber.Handler
	RateLimit             fiber.Handler
}

// SetupControllers builds the controllers and middlewares of the application.
// OAuth routes are only available when provider is not nil.
func SetupControllers(cfg Config, db *gorm.DB, idx *index.BleveIndexer, sender Sender, provider auth.Provider) Controllers {
	usersRepository := &model.UserRepository{DB: db}
	groupsRepository := &model.GroupRepository{DB: db}
	invitationsRepository := &model.InvitationRepository{DB: db}
	travelIdeasRepository := &model.TravelIdeaRepository{DB: db}
	destinationsRepository := &model.DestinationRepository{DB: db}

	sessions := session.New(session.Config{
		Expiration:     cfg.SessionTimeout,
		KeyLookup:      "cookie:wanderlist_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	usersCfg := user.Config{
		MinPasswordLength: cfg.MinPasswordLength,
		Secret:            cfg.SecretKey,
		TokenTimeout:      cfg.TokenTimeout,
	}

	groupsCfg := group.Config{
		InvitationTimeout: cfg.InvitationTimeout,
		FQDN:              cfg.FQDN,
	}

	var authController *auth.Controller
	if provider != nil {
		authController = auth.NewController(usersRepository, provider, sessions)
	}

	return Controllers{
		Users:                 user.NewController(usersRepository, usersCfg),
		Auth:                  authController,
		Groups:                group.NewController(groupsRepository, invitationsRepository, idx, sender, groupsCfg),
		TravelIdeas:           travelidea.NewController(travelIdeasRepository, groupsRepository, idx),
		Invitations:           invitation.NewController(invitationsRepository),
		Destinations:          destination.NewController(destinationsRepository),
		RequireAuthentication: RequireAuthentication(cfg.SecretKey, usersRepository, sessions),
		RateLimit:             RateLimit(cfg.LoginRateLimit, cfg.LoginRateBurst),
	}
}
