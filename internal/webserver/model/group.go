package model

import "time"

// Group is a travel idea group. The owner has administrative rights over it,
// members may read and contribute travel ideas.
type Group struct {
	ID          uint         `gorm:"primarykey"`
	Name        string       `gorm:"type:varchar(50);not null"`
	CreatedAt   time.Time    `gorm:"not null"`
	OwnedByID   uint         `gorm:"not null;index"`
	OwnedBy     *User        `gorm:"foreignKey:OwnedByID"`
	Members     []Member     `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Invitations []Invitation `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	TravelIdeas []TravelIdea `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

func (Group) TableName() string {
	return "travel_idea_group"
}

// MemberUsers returns the user accounts of the group members, in membership order
func (g *Group) MemberUsers() []User {
	users := make([]User, 0, len(g.Members))
	for _, m := range g.Members {
		if m.User != nil {
			users = append(users, *m.User)
		}
	}
	return users
}

// Member grants a user access to a group
type Member struct {
	ID      uint  `gorm:"primarykey"`
	UserID  uint  `gorm:"column:user_account_id;not null;uniqueIndex:idx_member_user_group"`
	User    *User `gorm:"foreignKey:UserID"`
	GroupID uint  `gorm:"column:travel_idea_group_id;not null;uniqueIndex:idx_member_user_group"`
}

func (Member) TableName() string {
	return "travel_idea_group_member"
}
