package model

type Destination struct {
	ID          uint    `gorm:"primarykey"`
	Name        string  `gorm:"type:varchar(30);not null"`
	Description *string `gorm:"type:varchar(250)"`
	Notes       *string `gorm:"type:varchar(750)"`
	ImageID     string  `gorm:"column:image_id;type:varchar(255);not null"`
}

func (Destination) TableName() string {
	return "destination"
}
