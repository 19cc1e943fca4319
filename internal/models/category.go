package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category groups transactions and recurrences. Categories are shared by all users.
type Category struct {
	DefaultModel
	Name          string `gorm:"uniqueIndex:idx_categories_name"`
	WebDeviceIcon string // Name of the icon the web client shows
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.WebDeviceIcon = strings.TrimSpace(c.WebDeviceIcon)
	return nil
}

// BeforeCreate generates the ID and rejects empty names.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrTitleEmpty
	}

	return c.DefaultModel.BeforeCreate(tx)
}
