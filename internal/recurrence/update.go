package recurrence

import (
	"context"

	"github.com/google/uuid"
	"github.com/moneyflow-app/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// UpdateTransaction applies the patch to a transaction of the user and, depending
// on the scope, to other installments of the same recurrence:
//
//   - Single: only the transaction
//   - Future: the transaction and all installments with a higher number
//   - All: all installments of the recurrence
//
// Standalone transactions are always updated with Single.
//
// The updated transaction is returned with its category and recurrence.
func (s Service) UpdateTransaction(ctx context.Context, userID, id uuid.UUID, patch Patch, scope Scope) (models.Transaction, error) {
	if !scope.Valid() {
		return models.Transaction{}, ErrInvalidScope
	}

	err := patch.Validate()
	if err != nil {
		return models.Transaction{}, err
	}

	var transaction models.Transaction
	var affected int64
	effective := scope

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&transaction, "id = ? AND user_id = ?", id, userID).Error
		if err != nil {
			return err
		}

		_, err = findCategory(tx, patch.CategoryID)
		if err != nil {
			return err
		}

		if transaction.RecurrenceID == nil {
			effective = Single
		}

		columns := patch.columns()
		if len(columns) > 0 {
			result := tx.Model(&models.Transaction{}).Scopes(selectScope(transaction, userID, effective)).Updates(columns)
			if result.Error != nil {
				return result.Error
			}
			affected = result.RowsAffected
		}

		transaction = models.Transaction{}
		return tx.Preload("Category").Preload("Recurrence").First(&transaction, "id = ? AND user_id = ?", id, userID).Error
	})
	if err != nil {
		return models.Transaction{}, err
	}

	scopedUpdates.WithLabelValues(string(effective)).Inc()
	log.Ctx(ctx).Info().
		Str("transaction", id.String()).
		Str("scope", string(effective)).
		Int64("affected", affected).
		Msg("transaction updated")

	return transaction, nil
}

// selectScope restricts a query to the transactions an update with
// the given scope applies to. Every scope is limited to the user.
func selectScope(target models.Transaction, userID uuid.UUID, scope Scope) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", userID)

		switch scope {
		case Future:
			return db.Where("recurrence_id = ? AND installment_number >= ?", *target.RecurrenceID, target.InstallmentNumber)
		case All:
			return db.Where("recurrence_id = ?", *target.RecurrenceID)
		default:
			return db.Where("id = ?", target.ID)
		}
	}
}
