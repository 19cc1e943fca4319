package models

import (
	"strings"

	"gorm.io/gorm"
)

// User owns recurrences and transactions.
type User struct {
	DefaultModel
	Name     string
	Email    string `gorm:"uniqueIndex:idx_users_email"`
	Password string // bcrypt hash
}

// BeforeSave trims the name and normalizes the email address.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}
