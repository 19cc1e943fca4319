package v1

import (
	"github.com/moneyflow-app/backend/internal/recurrence"
	mf_uuid "github.com/moneyflow-app/backend/internal/uuid"
)

type URIID struct {
	ID mf_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// QueryPagination contains the pagination parameters of list endpoints.
type QueryPagination struct {
	Page  int `form:"page" binding:"omitempty,min=1" filterField:"false"`          // Page to return, starting at 1. Defaults to 1.
	Limit int `form:"limit" binding:"omitempty,min=1,max=100" filterField:"false"` // Maximum number of resources per page. Defaults to 50.
}

// Pagination describes the page of a list response.
type Pagination struct {
	Page       int   `json:"page" example:"1"`       // The current page
	Limit      int   `json:"limit" example:"50"`     // The maximum number of resources per page
	Total      int64 `json:"total" example:"124"`    // The total number of resources matching the filter
	TotalPages int   `json:"totalPages" example:"3"` // The number of pages
}

func newPagination(page, limit int, total int64) *Pagination {
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}
}

// values returns page and limit with defaults applied.
func (p QueryPagination) values() (int, int) {
	page, limit := p.Page, p.Limit
	if page < 1 {
		page = recurrence.DefaultPage
	}

	if limit < 1 {
		limit = recurrence.DefaultLimit
	}

	return page, limit
}
