package invitation

import (
	"github.com/wanderlist/wanderlist/internal/webserver/controller"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
)

type invitationsRepository interface {
	FindValid(email string, groupID uint, code string) (*model.Invitation, error)
	ListValidForEmail(email string) ([]model.Invitation, error)
	Respond(invitation *model.Invitation, userID uint, status model.InvitationStatus) error
}

type Controller struct {
	invitationsRepository invitationsRepository
}

// InvitationRead describes an invitation received by the current user
type InvitationRead struct {
	InvitationCode      string              `json:"invitationCode"`
	TravelIdeaGroupName string              `json:"travelIdeaGroupName"`
	InvitedBy           controller.UserRead `json:"invitedBy"`
}

// NewController returns a new instance of the received invitations controller
func NewController(invitationsRepository invitationsRepository) *Controller {
	return &Controller{
		invitationsRepository: invitationsRepository,
	}
}
