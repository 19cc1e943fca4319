package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moneyflow-app/backend/internal/models"
	"github.com/moneyflow-app/backend/internal/recurrence"
	mf_uuid "github.com/moneyflow-app/backend/internal/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// TransactionEditable contains the fields to create a standalone transaction.
type TransactionEditable struct {
	Title string `json:"title" binding:"required" example:"Supermercado"` // Title of the transaction

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction

	Date       time.Time                `json:"date" binding:"required" example:"2025-04-02T00:00:00Z"`                         // Date of the transaction
	Type       models.TransactionType   `json:"type" binding:"required,oneof=INFLOW OUTFLOW" example:"OUTFLOW"`                 // INFLOW or OUTFLOW
	Status     models.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING PAID" example:"PAID" default:"PENDING"` // PENDING or PAID
	CategoryID *uuid.UUID               `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`                      // ID of the category
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:     userID,
		Title:      editable.Title,
		Amount:     editable.Amount,
		Date:       editable.Date,
		Type:       editable.Type,
		Status:     editable.Status,
		CategoryID: editable.CategoryID,
	}
}

// TransactionPatch contains the fields of a transaction that can be updated.
// Only fields present in the request body are updated.
type TransactionPatch struct {
	Title      *string                   `json:"title" binding:"omitempty,min=1" example:"Aluguel"`               // Title of the transaction
	Amount     *decimal.Decimal          `json:"amount" example:"1250.00"`                                        // The amount for the transaction
	Date       *time.Time                `json:"date" example:"2025-05-05T00:00:00Z"`                             // Date of the transaction
	Type       *models.TransactionType   `json:"type" binding:"omitempty,oneof=INFLOW OUTFLOW" example:"OUTFLOW"` // INFLOW or OUTFLOW
	Status     *models.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING PAID" example:"PAID"`    // PENDING or PAID
	CategoryID *uuid.UUID                `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`       // ID of the category. null removes the category
}

// patch converts the request into a patch for the recurrence service.
//
// updateFields are the fields set in the request body, they are needed to
// tell an explicit null category from an absent one.
func (p TransactionPatch) patch(updateFields []any) recurrence.Patch {
	categoryID := p.CategoryID
	if categoryID == nil && slices.Contains(updateFields, "CategoryID") {
		categoryID = &uuid.Nil
	}

	return recurrence.Patch{
		Amount:     p.Amount,
		Date:       p.Date,
		Status:     p.Status,
		Title:      p.Title,
		Type:       p.Type,
		CategoryID: categoryID,
	}
}

type TransactionLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`                // The transaction itself
	Recurrence string `json:"recurrence,omitempty" example:"https://example.com/api/v1/recurrences/3b1ea324-d438-4419-882a-2fc91d71772f"` // The recurrence the transaction is an installment of
}

// TransactionRecurrence is the summary of the recurrence a transaction belongs to.
type TransactionRecurrence struct {
	ID                uuid.UUID `json:"id" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the recurrence
	Title             string    `json:"title" example:"Aluguel"`                           // Title of the recurrence
	TotalInstallments *int      `json:"totalInstallments" example:"12"`                    // Number of installments, null for open-ended recurrences
	Active            bool      `json:"active" example:"true"`                             // Is the recurrence active?
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	Title             string                   `json:"title" example:"Aluguel - 3/12"`                              // Title of the transaction
	Amount            decimal.Decimal          `json:"amount" example:"1250.00"`                                    // The amount for the transaction
	Date              time.Time                `json:"date" example:"2025-03-05T00:00:00Z"`                         // Date of the transaction
	Type              models.TransactionType   `json:"type" example:"OUTFLOW"`                                      // INFLOW or OUTFLOW
	Status            models.TransactionStatus `json:"status" example:"PENDING"`                                    // PENDING or PAID
	InstallmentNumber int                      `json:"installmentNumber" example:"3"`                               // Position in the schedule of the recurrence, 1 for standalone transactions
	CategoryID        *uuid.UUID               `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`   // ID of the category
	RecurrenceID      *uuid.UUID               `json:"recurrenceId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the recurrence, null for standalone transactions
	Category          *Category                `json:"category,omitempty"`                                          // The category, if loaded
	Recurrence        *TransactionRecurrence   `json:"recurrence,omitempty"`                                        // The recurrence, if loaded
	Links             TransactionLinks         `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	transaction := Transaction{
		DefaultModel:      model.DefaultModel,
		Title:             model.Title,
		Amount:            model.Amount,
		Date:              model.Date,
		Type:              model.Type,
		Status:            model.Status,
		InstallmentNumber: model.InstallmentNumber,
		CategoryID:        model.CategoryID,
		RecurrenceID:      model.RecurrenceID,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}

	if model.RecurrenceID != nil {
		transaction.Links.Recurrence = fmt.Sprintf("%s/v1/recurrences/%s", url, *model.RecurrenceID)
	}

	if model.Category != nil {
		category := newCategory(c, *model.Category)
		transaction.Category = &category
	}

	if model.Recurrence != nil {
		transaction.Recurrence = &TransactionRecurrence{
			ID:                model.Recurrence.ID,
			Title:             model.Recurrence.Title,
			TotalInstallments: model.Recurrence.TotalInstallments,
			Active:            model.Recurrence.Active,
		}
	}

	return transaction
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if the request was successful
}

type TransactionQueryFilter struct {
	Month        int                      `form:"month" binding:"omitempty,min=1,max=12" filterField:"false"`  // Month of the transaction date. Only used together with year
	Year         int                      `form:"year" binding:"omitempty,min=2000" filterField:"false"`       // Year of the transaction date. Only used together with month
	Status       models.TransactionStatus `form:"status" binding:"omitempty,oneof=PENDING PAID"`               // Status of the transaction
	Title        string                   `form:"title" filterField:"false"`                                   // Title contains this string, ignoring case
	CategoryID   mf_uuid.UUID             `form:"category"`                                                    // ID of the category
	RecurrenceID mf_uuid.UUID             `form:"recurrence"`                                                  // ID of the recurrence
	Type         models.TransactionType   `form:"type" binding:"omitempty,oneof=INFLOW OUTFLOW"`               // Type of the transaction
	Page         int                      `form:"page" binding:"omitempty,min=1" filterField:"false"`          // Page to return, starting at 1. Defaults to 1.
	Limit        int                      `form:"limit" binding:"omitempty,min=1,max=100" filterField:"false"` // Maximum number of transactions per page. Defaults to 50.
}

// model returns the transaction to use as filter in a gorm Where
// statement. This does not set the fields that are handled in the
// controller function.
func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Status:       f.Status,
		CategoryID:   f.CategoryID.Ptr(),
		RecurrenceID: f.RecurrenceID.Ptr(),
		Type:         f.Type,
	}
}

func (f TransactionQueryFilter) pagination() QueryPagination {
	return QueryPagination{
		Page:  f.Page,
		Limit: f.Limit,
	}
}
