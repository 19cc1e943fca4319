package models

import (
	"github.com/moneyflow-app/backend/internal/schedule"
	"gorm.io/gorm"
)

// Frequency is a named repeat interval, e.g. "Monthly" is 1 month.
type Frequency struct {
	DefaultModel
	Title         string `gorm:"uniqueIndex:idx_frequencies_title"`
	IntervalValue int
	IntervalUnit  string
	Position      int // Sort order of the catalog
}

// Interval returns the descriptor used for schedule generation.
func (f Frequency) Interval() schedule.Interval {
	return schedule.Interval{
		Value: f.IntervalValue,
		Unit:  f.IntervalUnit,
	}
}

func (f *Frequency) BeforeCreate(tx *gorm.DB) error {
	if f.IntervalValue < 1 {
		return ErrIntervalValueNotPositive
	}

	return f.DefaultModel.BeforeCreate(tx)
}
