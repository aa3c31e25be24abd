package model

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GroupRepository struct {
	DB *gorm.DB
}

func (g *GroupRepository) Create(group *Group) error {
	if result := g.DB.Omit(clause.Associations).Create(group); result.Error != nil {
		logrus.WithError(result.Error).Error("error creating travel idea group")
		return result.Error
	}
	return nil
}

// FindByID returns the group with its owner and members loaded, or nil if it does not exist
func (g *GroupRepository) FindByID(id uint) (*Group, error) {
	var group Group

	result := g.withAccounts(g.DB).First(&group, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &group, result.Error
}

// ListForUser returns the groups owned by or shared with the given user, ordered by name
func (g *GroupRepository) ListForUser(userID uint) ([]Group, error) {
	var groups []Group

	memberOf := g.DB.Model(&Member{}).Select("travel_idea_group_id").Where("user_account_id = ?", userID)
	result := g.withAccounts(g.DB).
		Where("owned_by_id = ? OR id IN (?)", userID, memberOf).
		Order("name ASC").
		Order("id ASC").
		Find(&groups)
	if result.Error != nil {
		logrus.WithError(result.Error).Error("error listing travel idea groups")
		return nil, result.Error
	}
	return groups, nil
}

func (g *GroupRepository) UpdateName(group *Group, name string) error {
	if result := g.DB.Model(group).Update("name", name); result.Error != nil {
		logrus.WithError(result.Error).Error("error updating travel idea group")
		return result.Error
	}
	return nil
}

// Delete removes the group together with its members, invitations and travel ideas
func (g *GroupRepository) Delete(group *Group) error {
	err := g.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("travel_idea_group_id = ?", group.ID).Delete(&Member{}).Error; err != nil {
			return err
		}
		if err := tx.Where("travel_idea_group_id = ?", group.ID).Delete(&Invitation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("travel_idea_group_id = ?", group.ID).Delete(&TravelIdea{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Group{}, group.ID).Error
	})
	if err != nil {
		logrus.WithError(err).Error("error deleting travel idea group")
	}
	return err
}

// addMember grants userID access to the group. Adding an existing member is a no-op.
func addMember(tx *gorm.DB, groupID, userID uint) error {
	var count int64
	if err := tx.Model(&Member{}).
		Where("travel_idea_group_id = ? AND user_account_id = ?", groupID, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return tx.Create(&Member{GroupID: groupID, UserID: userID}).Error
}

func (g *GroupRepository) withAccounts(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("OwnedBy").
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("travel_idea_group_member.id ASC")
		}).
		Preload("Members.User")
}
