package model

import "time"

type TravelIdea struct {
	ID          uint      `gorm:"primarykey"`
	Name        string    `gorm:"type:varchar(50);not null"`
	Notes       *string   `gorm:"type:varchar(750)"`
	ImageURL    string    `gorm:"column:image_url;type:varchar(255);not null"`
	CreatedAt   time.Time `gorm:"not null"`
	CreatedByID uint      `gorm:"not null"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID"`
	GroupID     uint      `gorm:"column:travel_idea_group_id;not null;index"`
}

func (TravelIdea) TableName() string {
	return "travel_idea"
}
