package model

import (
	"crypto/rand"
	"math/big"
	"time"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
)

const (
	InvitationCodeLength = 10
	invitationCodeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Invitation is a pending request for the owner of Email to join a group
type Invitation struct {
	ID          uint             `gorm:"primarykey"`
	Email       string           `gorm:"type:varchar(255);not null;index"`
	Code        string           `gorm:"column:invitation_code;type:varchar(10);uniqueIndex;not null"`
	Status      InvitationStatus `gorm:"type:varchar(10);not null;default:pending"`
	CreatedAt   time.Time        `gorm:"not null"`
	ExpiresAt   time.Time        `gorm:"not null"`
	CreatedByID uint             `gorm:"not null"`
	CreatedBy   *User            `gorm:"foreignKey:CreatedByID"`
	GroupID     uint             `gorm:"column:travel_idea_group_id;not null;index"`
	Group       *Group           `gorm:"foreignKey:GroupID"`
}

func (Invitation) TableName() string {
	return "travel_idea_group_invitation"
}

// Valid reports whether the invitation can still be accepted or rejected at the given time
func (i Invitation) Valid(now time.Time) bool {
	return i.Status == InvitationPending && !i.ExpiresAt.Before(now)
}

// NewInvitationCode returns a random code made of uppercase letters and digits
func NewInvitationCode() (string, error) {
	max := big.NewInt(int64(len(invitationCodeChars)))
	code := make([]byte, InvitationCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = invitationCodeChars[n.Int64()]
	}
	return string(code), nil
}
