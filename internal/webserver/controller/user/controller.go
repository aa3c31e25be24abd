package user

import (
	"time"

	"github.com/wanderlist/wanderlist/internal/webserver/model"
)

type usersRepository interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
}

type Config struct {
	MinPasswordLength int
	Secret            []byte
	TokenTimeout      time.Duration
}

type Controller struct {
	usersRepository usersRepository
	config          Config
}

// NewController returns a new instance of the users controller
func NewController(repository usersRepository, usersCfg Config) *Controller {
	return &Controller{
		usersRepository: repository,
		config:          usersCfg,
	}
}
