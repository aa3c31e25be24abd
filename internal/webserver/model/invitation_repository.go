package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxCodeAttempts = 5

type InvitationRepository struct {
	DB *gorm.DB
}

// Create stores a new invitation, assigning it a unique code when it has none.
// It takes the place of the pending invitations sent to the same email for the same group;
// if the new invitation cannot be stored, the previous ones are kept.
func (i *InvitationRepository) Create(invitation *Invitation) error {
	if err := i.prepare(invitation); err != nil {
		return err
	}

	err := i.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("travel_idea_group_id = ? AND email = ? AND status = ?", invitation.GroupID, invitation.Email, InvitationPending).
			Delete(&Invitation{}).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(invitation).Error
	})
	if err != nil {
		logrus.WithError(err).Error("error creating invitation")
	}
	return err
}

func (i *InvitationRepository) prepare(invitation *Invitation) error {
	if invitation.Code == "" {
		code, err := i.uniqueCode()
		if err != nil {
			logrus.WithError(err).Error("error generating invitation code")
			return err
		}
		invitation.Code = code
	}
	if invitation.Status == "" {
		invitation.Status = InvitationPending
	}
	return nil
}

// FindValid returns the pending, unexpired invitation for email. groupID and code
// narrow the search when they are not zero values.
func (i *InvitationRepository) FindValid(email string, groupID uint, code string) (*Invitation, error) {
	var invitation Invitation

	query := i.valid(email)
	if groupID != 0 {
		query = query.Where("travel_idea_group_id = ?", groupID)
	}
	if code != "" {
		query = query.Where("invitation_code = ?", code)
	}

	result := query.Preload("CreatedBy").Preload("Group").First(&invitation)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invitation, result.Error
}

// ListValidForEmail returns the invitations email can still answer, oldest first
func (i *InvitationRepository) ListValidForEmail(email string) ([]Invitation, error) {
	var invitations []Invitation

	result := i.valid(email).
		Preload("CreatedBy").
		Preload("Group").
		Order("created_at ASC").
		Order("id ASC").
		Find(&invitations)
	if result.Error != nil {
		logrus.WithError(result.Error).Error("error listing invitations")
		return nil, result.Error
	}
	return invitations, nil
}

// ListOutstandingForGroup returns the unexpired invitations of a group that were not accepted
func (i *InvitationRepository) ListOutstandingForGroup(groupID uint) ([]Invitation, error) {
	var invitations []Invitation

	result := i.DB.
		Where("travel_idea_group_id = ?", groupID).
		Where("status <> ?", InvitationAccepted).
		Where("expires_at >= ?", time.Now().UTC()).
		Order("created_at ASC").
		Order("id ASC").
		Find(&invitations)
	if result.Error != nil {
		logrus.WithError(result.Error).Error("error listing group invitations")
		return nil, result.Error
	}
	return invitations, nil
}

// Respond stores the answer to an invitation. Accepting it grants userID
// access to the group in the same transaction.
func (i *InvitationRepository) Respond(invitation *Invitation, userID uint, status InvitationStatus) error {
	if status != InvitationAccepted && status != InvitationRejected {
		return fmt.Errorf("invalid invitation answer %q", status)
	}

	err := i.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Invitation{}).
			Where("id = ? AND status = ?", invitation.ID, InvitationPending).
			Update("status", status)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if status == InvitationAccepted {
			return addMember(tx, invitation.GroupID, userID)
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Error("error answering invitation")
		return err
	}

	invitation.Status = status
	return nil
}

func (i *InvitationRepository) Delete(invitation *Invitation) error {
	if result := i.DB.Delete(&Invitation{}, invitation.ID); result.Error != nil {
		logrus.WithError(result.Error).Error("error deleting invitation")
		return result.Error
	}
	return nil
}

func (i *InvitationRepository) valid(email string) *gorm.DB {
	return i.DB.
		Where("email = ?", email).
		Where("status = ?", InvitationPending).
		Where("expires_at >= ?", time.Now().UTC())
}

func (i *InvitationRepository) uniqueCode() (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := NewInvitationCode()
		if err != nil {
			return "", err
		}

		var count int64
		if err := i.DB.Model(&Invitation{}).Where("invitation_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique invitation code")
}
