package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneyflow-app/backend/internal/auth"
	"github.com/moneyflow-app/backend/internal/httputil"
	"github.com/moneyflow-app/backend/internal/recurrence"
)

// RegisterRecurrenceRoutes registers the routes for recurrences with
// the RouterGroup that is passed.
func (co Controller) RegisterRecurrenceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsRecurrences)
		r.GET("", co.GetRecurrences)
		r.POST("", co.CreateRecurrence)
	}

	// Recurrence with ID
	{
		r.OPTIONS("/:id", co.OptionsRecurrenceDetail)
		r.GET("/:id", co.GetRecurrence)
		r.DELETE("/:id", co.DeleteRecurrence)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurrences
// @Success		204
// @Security		BearerAuth
// @Router			/v1/recurrences [options]
func (co Controller) OptionsRecurrences(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurrences
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/recurrences/{id} [options]
func (co Controller) OptionsRecurrenceDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	_, err = co.Recurrences.Get(c, auth.UserID(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Get recurrences
// @Description	Returns a page of the recurrences of the user, newest first, each with its installments
// @Tags			Recurrences
// @Produce		json
// @Success		200		{object}	RecurrenceListResponse
// @Failure		400		{object}	RecurrenceListResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	RecurrenceListResponse
// @Param			active	query		bool	false	"Filter by active state"
// @Param			page	query		int		false	"Page to return, starting at 1. Defaults to 1."
// @Param			limit	query		int		false	"Maximum number of recurrences per page, 1 to 100. Defaults to 50."
// @Security		BearerAuth
// @Router			/v1/recurrences [get]
func (co Controller) GetRecurrences(c *gin.Context) {
	var filter RecurrenceQueryFilter
	err := httputil.BindQuery(c, &filter)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurrenceListResponse{
			Error: &e,
		})
		return
	}

	page, limit := filter.values()
	recurrences, total, err := co.Recurrences.List(c, recurrence.Filter{
		UserID: auth.UserID(c),
		Active: filter.Active,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurrenceListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Recurrence, 0, len(recurrences))
	for _, r := range recurrences {
		data = append(data, newRecurrence(c, r))
	}

	c.JSON(http.StatusOK, RecurrenceListResponse{
		Data:       data,
		Pagination: newPagination(page, limit, total),
	})
}

// @Summary		Get recurrence
// @Description	Returns a specific recurrence with its installments
// @Tags			Recurrences
// @Produce		json
// @Success		200	{object}	RecurrenceResponse
// @Failure		400	{object}	RecurrenceResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	RecurrenceResponse
// @Failure		500	{object}	RecurrenceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/recurrences/{id} [get]
func (co Controller) GetRecurrence(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, RecurrenceResponse{
			Error: &e,
		})
		return
	}

	r, err := co.Recurrences.Get(c, auth.UserID(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurrenceResponse{
			Error: &e,
		})
		return
	}

	data := newRecurrence(c, r)
	c.JSON(http.StatusOK, RecurrenceResponse{Data: &data})
}

// @Summary		Create recurrence
// @Description	Creates a recurrence and one pending transaction per installment
// @Tags			Recurrences
// @Accept			json
// @Produce		json
// @Success		201			{object}	RecurrenceResponse
// @Failure		400			{object}	RecurrenceResponse
// @Failure		401			{object}	httpError
// @Failure		404			{object}	RecurrenceResponse
// @Failure		409			{object}	RecurrenceResponse
// @Failure		500			{object}	RecurrenceResponse
// @Param			recurrence	body		RecurrenceCreate	true	"Recurrence"
// @Security		BearerAuth
// @Router			/v1/recurrences [post]
func (co Controller) CreateRecurrence(c *gin.Context) {
	var create RecurrenceCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurrenceResponse{
			Error: &e,
		})
		return
	}

	r, transactions, err := co.Recurrences.Create(c, auth.UserID(c), create.serviceCreate())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurrenceResponse{
			Error: &e,
		})
		return
	}

	for i := range transactions {
		transactions[i].Category = r.Category
	}
	r.Transactions = transactions

	data := newRecurrence(c, r)
	c.JSON(http.StatusCreated, RecurrenceResponse{Data: &data})
}

// @Summary		Delete recurrence
// @Description	Deletes a recurrence with all its installments. With keepHistory, only pending installments are deleted and the recurrence is deactivated.
// @Tags			Recurrences
// @Accept			json
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			keepHistory	query		bool				false	"Keep paid installments"
// @Param			options		body		RecurrenceDelete	false	"Options"
// @Security		BearerAuth
// @Router			/v1/recurrences/{id} [delete]
func (co Controller) DeleteRecurrence(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	var options RecurrenceDelete
	err = httputil.BindQuery(c, &options)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// The body is optional
	err = httputil.BindData(c, &options)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Recurrences.Delete(c, auth.UserID(c), uri.ID.UUID, options.KeepHistory)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
