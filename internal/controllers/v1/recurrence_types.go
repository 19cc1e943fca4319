package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moneyflow-app/backend/internal/models"
	"github.com/moneyflow-app/backend/internal/recurrence"
	"github.com/shopspring/decimal"
)

// RecurrenceCreate contains the fields to create a recurrence.
type RecurrenceCreate struct {
	Title string `json:"title" binding:"required" example:"Aluguel"` // Title of the recurrence. Installments are titled "{title} - {number}/{total}"

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"1250.00" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of each installment

	StartDate         time.Time              `json:"startDate" binding:"required" example:"2025-01-31T00:00:00Z"`                   // Date of the first installment
	Type              models.TransactionType `json:"type" binding:"required,oneof=INFLOW OUTFLOW" example:"OUTFLOW"`                // INFLOW or OUTFLOW
	CategoryID        *uuid.UUID             `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`                     // ID of the category
	TotalInstallments *int                   `json:"totalInstallments" binding:"omitempty,min=1,max=1000" example:"12"`             // Number of installments. At most 1000. Omit for open-ended recurrences, which get 12 installments
	FrequencyID       uuid.UUID              `json:"frequencyId" binding:"required" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // ID of the frequency
}

func (create RecurrenceCreate) serviceCreate() recurrence.Create {
	return recurrence.Create{
		Title:             create.Title,
		Amount:            create.Amount,
		StartDate:         create.StartDate,
		Type:              create.Type,
		CategoryID:        create.CategoryID,
		TotalInstallments: create.TotalInstallments,
		FrequencyID:       create.FrequencyID,
	}
}

// RecurrenceDelete contains the options for deleting a recurrence. It is
// accepted in the body as well as the query string.
type RecurrenceDelete struct {
	KeepHistory bool `json:"keepHistory" form:"keepHistory" example:"true" default:"false"` // Keep paid installments and deactivate the recurrence instead of deleting it
}

type RecurrenceQueryFilter struct {
	Active *bool `form:"active"` // Is the recurrence active?
	QueryPagination
}

type RecurrenceLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/recurrences/3b1ea324-d438-4419-882a-2fc91d71772f"`                     // The recurrence itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?recurrence=3b1ea324-d438-4419-882a-2fc91d71772f"` // Installments of the recurrence
}

// Recurrence is the representation of a Recurrence in API v1.
type Recurrence struct {
	models.DefaultModel
	Title             string                 `json:"title" example:"Aluguel"`                                    // Title of the recurrence
	Amount            decimal.Decimal        `json:"amount" example:"1250.00"`                                   // The amount of each installment
	StartDate         time.Time              `json:"startDate" example:"2025-01-31T00:00:00Z"`                   // Date of the first installment
	Type              models.TransactionType `json:"type" example:"OUTFLOW"`                                     // INFLOW or OUTFLOW
	TotalInstallments *int                   `json:"totalInstallments" example:"12"`                             // Number of installments, null for open-ended recurrences
	Active            bool                   `json:"active" example:"true"`                                      // Is the recurrence active?
	CategoryID        *uuid.UUID             `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`  // ID of the category
	FrequencyID       uuid.UUID              `json:"frequencyId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // ID of the frequency
	Category          *Category              `json:"category"`                                                   // The category
	Frequency         Frequency              `json:"frequency"`                                                  // The frequency
	Transactions      []Transaction          `json:"transactions"`                                               // Installments, ordered by installment number
	Links             RecurrenceLinks        `json:"links"`
}

// newRecurrence returns the API v1 representation of the resource
func newRecurrence(c *gin.Context, model models.Recurrence) Recurrence {
	url := c.GetString(string(models.DBContextURL))

	r := Recurrence{
		DefaultModel:      model.DefaultModel,
		Title:             model.Title,
		Amount:            model.Amount,
		StartDate:         model.StartDate,
		Type:              model.Type,
		TotalInstallments: model.TotalInstallments,
		Active:            model.Active,
		CategoryID:        model.CategoryID,
		FrequencyID:       model.FrequencyID,
		Frequency:         newFrequency(model.Frequency),
		Transactions:      make([]Transaction, 0, len(model.Transactions)),
		Links: RecurrenceLinks{
			Self:         fmt.Sprintf("%s/v1/recurrences/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?recurrence=%s", url, model.ID),
		},
	}

	if model.Category != nil {
		category := newCategory(c, *model.Category)
		r.Category = &category
	}

	for _, transaction := range model.Transactions {
		r.Transactions = append(r.Transactions, newTransaction(c, transaction))
	}

	return r
}

type RecurrenceListResponse struct {
	Data       []Recurrence `json:"data"`                                                       // List of recurrences
	Error      *string      `json:"error" example:"the query string contains unparseable data"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                 // Pagination information
}

type RecurrenceResponse struct {
	Data  *Recurrence `json:"data"`                                                      // Data for the recurrence
	Error *string     `json:"error" example:"there is no frequency matching your query"` // The error, if any occurred
}
