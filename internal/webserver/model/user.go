package model

import (
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type User struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string `gorm:"type:varchar(120);not null"`
	PasswordHash string `gorm:"column:password_hash"`
}

func (User) TableName() string {
	return "user_account"
}

// SetPassword stores the bcrypt hash of password
func (u *User) SetPassword(password string) error {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(b)
	return nil
}

// CheckPassword reports whether password matches the stored hash.
// Accounts created through OAuth have no hash and never match.
func (u *User) CheckPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
