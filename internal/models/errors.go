package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Conflicts with existing resources
var (
	ErrInstallmentNotUnique    = errors.New("the installment number is already in use for this recurrence")
	ErrEmailNotUnique          = errors.New("a user with this email already exists")
	ErrCategoryNameNotUnique   = errors.New("the category name must be unique")
	ErrFrequencyTitleNotUnique = errors.New("the frequency title must be unique")
)

// Invalid values
var (
	ErrAmountNotPositive            = errors.New("the amount must be positive")
	ErrTitleEmpty                   = errors.New("the title must not be empty")
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be one of INFLOW, OUTFLOW")
	ErrTransactionStatusInvalid     = errors.New("the transaction status must be one of PENDING, PAID")
	ErrInstallmentNumberInvalid     = errors.New("the installment number must be 1 or greater")
	ErrTotalInstallmentsNotPositive = errors.New("the total number of installments must be 1 or greater")
	ErrTotalInstallmentsTooLarge    = errors.New("the total number of installments must be 1000 or less")
	ErrIntervalValueNotPositive     = errors.New("the interval value of a frequency must be 1 or greater")
)

// IsConflict reports whether err is caused by a uniqueness conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrInstallmentNotUnique) ||
		errors.Is(err, ErrEmailNotUnique) ||
		errors.Is(err, ErrCategoryNameNotUnique) ||
		errors.Is(err, ErrFrequencyTitleNotUnique)
}
