// Package recurrence expands recurrences into installment transactions and
// applies scoped updates across them.
package recurrence

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/moneyflow-app/backend/internal/models"
	"github.com/moneyflow-app/backend/internal/schedule"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// DefaultPage and DefaultLimit apply to List when no pagination is given.
	DefaultPage  = 1
	DefaultLimit = 50

	// batchSize is the number of installments inserted per statement.
	batchSize = 100

	// infinity marks open-ended recurrences in installment titles.
	infinity = "∞"
)

// Service manages recurrences and their transactions.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) Service {
	return Service{db: db}
}

// Create contains the fields needed to create a recurrence.
type Create struct {
	Title             string
	Amount            decimal.Decimal
	StartDate         time.Time
	Type              models.TransactionType
	CategoryID        *uuid.UUID
	TotalInstallments *int // nil for open-ended recurrences
	FrequencyID       uuid.UUID
}

// Filter selects the recurrences returned by List.
type Filter struct {
	UserID uuid.UUID
	Active *bool
	Page   int
	Limit  int
}

// Create stores the recurrence and one transaction per scheduled installment.
//
// Open-ended recurrences get schedule.DefaultInstallments installments.
func (s Service) Create(ctx context.Context, userID uuid.UUID, create Create) (models.Recurrence, []models.Transaction, error) {
	var recurrence models.Recurrence
	var transactions []models.Transaction

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var frequency models.Frequency
		err := tx.First(&frequency, "id = ?", create.FrequencyID).Error
		if err != nil {
			return err
		}

		category, err := findCategory(tx, create.CategoryID)
		if err != nil {
			return err
		}

		recurrence = models.Recurrence{
			UserID:            userID,
			FrequencyID:       frequency.ID,
			CategoryID:        create.CategoryID,
			Title:             create.Title,
			Amount:            create.Amount,
			StartDate:         create.StartDate,
			Type:              create.Type,
			TotalInstallments: create.TotalInstallments,
			Active:            true,
		}

		err = tx.Omit(clause.Associations).Create(&recurrence).Error
		if err != nil {
			return err
		}

		transactions = installments(recurrence, scheduleFor(ctx, recurrence, frequency))
		err = tx.Omit(clause.Associations).CreateInBatches(&transactions, batchSize).Error
		if err != nil {
			return err
		}

		recurrence.Frequency = frequency
		recurrence.Category = category
		return nil
	})
	if err != nil {
		return models.Recurrence{}, nil, err
	}

	recurrencesCreated.Inc()
	installmentsGenerated.Add(float64(len(transactions)))
	log.Ctx(ctx).Info().Str("recurrence", recurrence.ID.String()).Int("installments", len(transactions)).Msg("recurrence created")

	return recurrence, transactions, nil
}

// scheduleFor returns the due dates of all installments of the recurrence.
func scheduleFor(ctx context.Context, recurrence models.Recurrence, frequency models.Frequency) []time.Time {
	count := schedule.DefaultInstallments
	if recurrence.TotalInstallments != nil {
		count = *recurrence.TotalInstallments
	}

	interval := frequency.Interval()
	if _, ok := schedule.ParseUnit(interval.Unit); !ok {
		unitFallbacks.Inc()
		log.Ctx(ctx).Warn().
			Str("frequency", frequency.ID.String()).
			Str("unit", interval.Unit).
			Msg("unknown interval unit, scheduling monthly")
	}

	return schedule.Generate(recurrence.StartDate, interval, count)
}

// installments builds the transactions for the given due dates.
func installments(recurrence models.Recurrence, dates []time.Time) []models.Transaction {
	total := infinity
	if recurrence.TotalInstallments != nil {
		total = strconv.Itoa(*recurrence.TotalInstallments)
	}

	transactions := make([]models.Transaction, 0, len(dates))
	for i, date := range dates {
		transactions = append(transactions, models.Transaction{
			UserID:            recurrence.UserID,
			RecurrenceID:      &recurrence.ID,
			InstallmentNumber: i + 1,
			CategoryID:        recurrence.CategoryID,
			Title:             fmt.Sprintf("%s - %d/%s", recurrence.Title, i+1, total),
			Amount:            recurrence.Amount,
			Date:              date,
			Type:              recurrence.Type,
			Status:            models.Pending,
		})
	}

	return transactions
}

// Delete deletes a recurrence of the user.
//
// With keepHistory, only pending transactions are deleted and the recurrence
// is deactivated. Otherwise, the recurrence and all its transactions are deleted.
func (s Service) Delete(ctx context.Context, userID, id uuid.UUID, keepHistory bool) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recurrence models.Recurrence
		err := tx.First(&recurrence, "id = ? AND user_id = ?", id, userID).Error
		if err != nil {
			return err
		}

		transactions := tx.Where("recurrence_id = ? AND user_id = ?", recurrence.ID, userID)
		if keepHistory {
			err = transactions.Where("status = ?", models.Pending).Delete(&models.Transaction{}).Error
			if err != nil {
				return err
			}

			return tx.Model(&recurrence).Where("user_id = ?", userID).Update("active", false).Error
		}

		err = transactions.Delete(&models.Transaction{}).Error
		if err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&recurrence).Error
	})
	if err != nil {
		return err
	}

	mode := "full"
	if keepHistory {
		mode = "keep_history"
	}
	recurrencesDeleted.WithLabelValues(mode).Inc()
	log.Ctx(ctx).Info().Str("recurrence", id.String()).Str("mode", mode).Msg("recurrence deleted")

	return nil
}

// withDetails preloads the category, the frequency and the transactions
// in installment order.
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Frequency").
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("installment_number ASC")
		}).
		Preload("Transactions.Category")
}

// Get returns a recurrence of the user with its details.
func (s Service) Get(ctx context.Context, userID, id uuid.UUID) (models.Recurrence, error) {
	var recurrence models.Recurrence
	err := s.db.WithContext(ctx).Scopes(withDetails).First(&recurrence, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return models.Recurrence{}, err
	}

	return recurrence, nil
}

// List returns a page of the user's recurrences, newest first, and the
// total number of recurrences matching the filter.
func (s Service) List(ctx context.Context, filter Filter) ([]models.Recurrence, int64, error) {
	if filter.Page < 1 {
		filter.Page = DefaultPage
	}

	if filter.Limit < 1 {
		filter.Limit = DefaultLimit
	}

	where := func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", filter.UserID)
		if filter.Active != nil {
			db = db.Where("active = ?", *filter.Active)
		}
		return db
	}

	var total int64
	err := s.db.WithContext(ctx).Model(&models.Recurrence{}).Scopes(where).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var recurrences []models.Recurrence
	err = s.db.WithContext(ctx).
		Scopes(where, withDetails).
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&recurrences).Error
	if err != nil {
		return nil, 0, err
	}

	return recurrences, total, nil
}

// findCategory loads the category if an ID is given.
func findCategory(tx *gorm.DB, id *uuid.UUID) (*models.Category, error) {
	if id == nil || *id == uuid.Nil {
		return nil, nil
	}

	var category models.Category
	err := tx.First(&category, "id = ?", *id).Error
	if err != nil {
		return nil, err
	}

	return &category, nil
}
