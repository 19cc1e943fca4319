package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/moneyflow-app/backend/internal/schedule"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Recurrence is a recurring financial commitment. Its installments are
// stored as transactions.
type Recurrence struct {
	DefaultModel
	UserID            uuid.UUID `gorm:"index"`
	User              User
	FrequencyID       uuid.UUID
	Frequency         Frequency
	CategoryID        *uuid.UUID
	Category          *Category
	Title             string
	Amount            decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Amount per installment
	StartDate         time.Time
	Type              TransactionType
	TotalInstallments *int // nil for open-ended recurrences
	Active            bool
	Transactions      []Transaction
}

func (r *Recurrence) AfterFind(tx *gorm.DB) (err error) {
	err = r.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	r.StartDate = r.StartDate.In(time.UTC)
	return
}

func (r *Recurrence) BeforeSave(_ *gorm.DB) error {
	r.Title = strings.TrimSpace(r.Title)
	r.StartDate = r.StartDate.In(time.UTC)

	if r.CategoryID != nil && *r.CategoryID == uuid.Nil {
		r.CategoryID = nil
	}

	return nil
}

func (r *Recurrence) BeforeCreate(tx *gorm.DB) error {
	if r.Title == "" {
		return ErrTitleEmpty
	}

	if !r.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !r.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if r.TotalInstallments != nil && *r.TotalInstallments < 1 {
		return ErrTotalInstallmentsNotPositive
	}

	if r.TotalInstallments != nil && *r.TotalInstallments > schedule.MaxInstallments {
		return ErrTotalInstallmentsTooLarge
	}

	return r.DefaultModel.BeforeCreate(tx)
}
