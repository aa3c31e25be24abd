package model

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (u *UserRepository) Create(user *User) error {
	if result := u.DB.Create(user); result.Error != nil {
		logrus.WithError(result.Error).Error("error creating user")
		return result.Error
	}
	return nil
}

func (u *UserRepository) FindByEmail(email string) (*User, error) {
	var user User

	result := u.DB.Where("email = ?", email).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, result.Error
}
