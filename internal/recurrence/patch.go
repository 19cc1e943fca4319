package recurrence

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/moneyflow-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Patch is a partial update of a transaction. Only non-nil fields are written.
//
// A CategoryID of uuid.Nil removes the category.
type Patch struct {
	Amount     *decimal.Decimal
	Date       *time.Time
	Status     *models.TransactionStatus
	Title      *string
	Type       *models.TransactionType
	CategoryID *uuid.UUID
}

// Validate checks the values of all fields that are set.
func (p Patch) Validate() error {
	if p.Amount != nil && !p.Amount.IsPositive() {
		return models.ErrAmountNotPositive
	}

	if p.Status != nil && !p.Status.Valid() {
		return models.ErrTransactionStatusInvalid
	}

	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return models.ErrTitleEmpty
	}

	if p.Type != nil && !p.Type.Valid() {
		return models.ErrTransactionTypeInvalid
	}

	return nil
}

// columns returns the column values to update.
func (p Patch) columns() map[string]any {
	columns := make(map[string]any)

	if p.Amount != nil {
		columns["amount"] = *p.Amount
	}

	if p.Date != nil {
		columns["date"] = p.Date.In(time.UTC)
	}

	if p.Status != nil {
		columns["status"] = *p.Status
	}

	if p.Title != nil {
		columns["title"] = strings.TrimSpace(*p.Title)
	}

	if p.Type != nil {
		columns["type"] = *p.Type
	}

	if p.CategoryID != nil {
		if *p.CategoryID == uuid.Nil {
			columns["category_id"] = nil
		} else {
			columns["category_id"] = *p.CategoryID
		}
	}

	return columns
}
