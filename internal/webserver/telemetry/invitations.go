package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	InvitationCreated  = "created"
	InvitationAccepted = "accepted"
	InvitationRejected = "rejected"
	InvitationRevoked  = "revoked"
)

var invitationsCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "wanderlist",
	Name:      "invitations_total",
	Help:      "Number of travel idea group invitations, by outcome.",
}, []string{"outcome"})

// CountInvitation records an invitation event
func CountInvitation(outcome string) {
	invitationsCount.With(prometheus.Labels{"outcome": outcome}).Inc()
}
