package group

import (
	"time"

	"github.com/wanderlist/wanderlist/internal/webserver/controller"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
)

type groupsRepository interface {
	Create(group *model.Group) error
	FindByID(id uint) (*model.Group, error)
	ListForUser(userID uint) ([]model.Group, error)
	UpdateName(group *model.Group, name string) error
	Delete(group *model.Group) error
}

type invitationsRepository interface {
	Create(invitation *model.Invitation) error
	FindValid(email string, groupID uint, code string) (*model.Invitation, error)
	ListOutstandingForGroup(groupID uint) ([]model.Invitation, error)
	Delete(invitation *model.Invitation) error
}

type idx interface {
	RemoveGroup(groupID uint) error
}

type Sender interface {
	Send(address, subject, body string) error
}

type Config struct {
	InvitationTimeout time.Duration
	FQDN              string
}

type Controller struct {
	groupsRepository      groupsRepository
	invitationsRepository invitationsRepository
	idx                   idx
	sender                Sender
	config                Config
}

// GroupRead is the public representation of a travel idea group
type GroupRead struct {
	ID         uint                  `json:"id"`
	Name       string                `json:"name"`
	OwnedBy    controller.UserRead   `json:"ownedBy"`
	SharedWith []controller.UserRead `json:"sharedWith"`
}

// NewController returns a new instance of the travel idea groups controller
func NewController(groupsRepository groupsRepository, invitationsRepository invitationsRepository, idx idx, sender Sender, cfg Config) *Controller {
	return &Controller{
		groupsRepository:      groupsRepository,
		invitationsRepository: invitationsRepository,
		idx:                   idx,
		sender:                sender,
		config:                cfg,
	}
}

func newGroupRead(group *model.Group, members []model.User) GroupRead {
	read := GroupRead{
		ID:         group.ID,
		Name:       group.Name,
		OwnedBy:    controller.NewUserRead(group.OwnedBy),
		SharedWith: make([]controller.UserRead, len(members)),
	}
	for i := range members {
		read.SharedWith[i] = controller.NewUserRead(&members[i])
	}
	return read
}
