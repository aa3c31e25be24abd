package auth

import (
	"context"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/wanderlist/wanderlist/internal/webserver/infrastructure"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
)

const (
	// SessionUserKey holds the email of the signed in user in the session
	SessionUserKey = "user"
	stateKey       = "oauth_state"
)

type authRepository interface {
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
}

// Provider signs users in through an external OAuth service
type Provider interface {
	AuthCodeURL(state string) string
	User(ctx context.Context, code string) (infrastructure.OAuthUser, error)
}

type Controller struct {
	repository authRepository
	provider   Provider
	sessions   *session.Store
}

func NewController(repository authRepository, provider Provider, sessions *session.Store) *Controller {
	return &Controller{
		repository: repository,
		provider:   provider,
		sessions:   sessions,
	}
}
