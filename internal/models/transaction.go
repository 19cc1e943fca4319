package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	Inflow  TransactionType = "INFLOW"
	Outflow TransactionType = "OUTFLOW"
)

func (t TransactionType) Valid() bool {
	return t == Inflow || t == Outflow
}

type TransactionStatus string

const (
	Pending TransactionStatus = "PENDING"
	Paid    TransactionStatus = "PAID"
)

func (s TransactionStatus) Valid() bool {
	return s == Pending || s == Paid
}

// Transaction is a single financial movement. Transactions generated by a
// recurrence carry its ID and their position in the schedule.
type Transaction struct {
	DefaultModel
	UserID            uuid.UUID `gorm:"index"`
	User              User
	RecurrenceID      *uuid.UUID `gorm:"uniqueIndex:idx_transaction_installment"`
	Recurrence        *Recurrence
	InstallmentNumber int `gorm:"uniqueIndex:idx_transaction_installment;default:1"`
	CategoryID        *uuid.UUID
	Category          *Category
	Title             string
	Amount            decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date              time.Time       `gorm:"index"`
	Type              TransactionType
	Status            TransactionStatus
}

// AfterFind enforces UTC for all timestamps.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - trims whitespace from the title
//   - sets the timezone for the Date to UTC
//   - ensures that a nil category is stored as NULL
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Title = strings.TrimSpace(t.Title)
	t.Date = t.Date.In(time.UTC)

	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	return nil
}

// BeforeCreate validates the transaction and generates its ID.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Status == "" {
		t.Status = Pending
	}

	if t.InstallmentNumber == 0 {
		t.InstallmentNumber = 1
	}

	err := t.Validate()
	if err != nil {
		return err
	}

	return t.DefaultModel.BeforeCreate(tx)
}

// Validate checks the values that the database cannot check.
func (t Transaction) Validate() error {
	if t.Title == "" {
		return ErrTitleEmpty
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if !t.Status.Valid() {
		return ErrTransactionStatusInvalid
	}

	if t.InstallmentNumber < 1 {
		return ErrInstallmentNumberInvalid
	}

	return nil
}
