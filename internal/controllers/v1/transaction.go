package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moneyflow-app/backend/internal/auth"
	"github.com/moneyflow-app/backend/internal/httputil"
	"github.com/moneyflow-app/backend/internal/models"
	"github.com/moneyflow-app/backend/internal/recurrence"
	"github.com/moneyflow-app/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTransactions)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Security		BearerAuth
// @Router			/v1/transactions [options]
func (co Controller) OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	_, err := co.findTransaction(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// findTransaction returns the transaction of the authenticated user
// identified by the URI.
func (co Controller) findTransaction(c *gin.Context) (models.Transaction, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Transaction{}, httputil.ErrInvalidUUID
	}

	var transaction models.Transaction
	err = co.DB.WithContext(c).
		Preload("Category").
		Preload("Recurrence").
		First(&transaction, "id = ? AND user_id = ?", uri.ID.UUID, auth.UserID(c)).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// @Summary		Get transaction
// @Description	Returns a specific transaction with its category and recurrence
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	transaction, err := co.findTransaction(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Get transactions
// @Description	Returns a page of the transactions of the user, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	TransactionListResponse
// @Security		BearerAuth
// @Router			/v1/transactions [get]
// @Param			month		query	int		false	"Month of the transaction date, 1 to 12. Only used together with year"
// @Param			year		query	int		false	"Year of the transaction date. Only used together with month"
// @Param			status		query	string	false	"Filter by status"
// @Param			title		query	string	false	"Title contains this string, ignoring case"
// @Param			category	query	string	false	"Filter by category ID. Empty for transactions without category"
// @Param			recurrence	query	string	false	"Filter by recurrence ID. Empty for standalone transactions"
// @Param			type		query	string	false	"Filter by type"
// @Param			page		query	int		false	"Page to return, starting at 1. Defaults to 1."
// @Param			limit		query	int		false	"Maximum number of transactions per page, 1 to 100. Defaults to 50."
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	err := httputil.BindQuery(c, &filter)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)
	model := filter.model()

	where := func(db *gorm.DB) *gorm.DB {
		db = db.Where("transactions.user_id = ?", auth.UserID(c))

		if len(queryFields) > 0 {
			db = db.Where(&model, queryFields...)
		}

		if filter.Month != 0 && filter.Year != 0 {
			month := types.NewMonth(filter.Year, time.Month(filter.Month))
			db = db.Where("transactions.date >= ? AND transactions.date < ?", month.Start(), month.End())
		}

		if filter.Title != "" {
			db = models.Contains("transactions.title", filter.Title)(db)
		}

		return db
	}

	var total int64
	err = co.DB.WithContext(c).Model(&models.Transaction{}).Scopes(where).Count(&total).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	page, limit := filter.pagination().values()

	var transactions []models.Transaction
	err = co.DB.WithContext(c).
		Scopes(where).
		Preload("Category").
		Preload("Recurrence").
		Order("transactions.date DESC, transactions.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data:       data,
		Pagination: newPagination(page, limit, total),
	})
}

// @Summary		Create transaction
// @Description	Creates a standalone transaction for the user
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		401			{object}	httpError
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Security		BearerAuth
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction := editable.model(auth.UserID(c))
	err = co.DB.WithContext(c).Transaction(func(tx *gorm.DB) error {
		if transaction.CategoryID != nil {
			var category models.Category
			err := tx.First(&category, "id = ?", *transaction.CategoryID).Error
			if err != nil {
				return err
			}
			transaction.Category = &category
		}

		return tx.Omit(clause.Associations).Create(&transaction).Error
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified. For installments of a recurrence, the scope decides which installments are updated: SINGLE (default) only this one, FUTURE this one and all later ones, ALL every installment. Standalone transactions ignore the scope.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		401			{object}	httpError
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			scope		query		string				false	"SINGLE, FUTURE or ALL. Defaults to SINGLE"
// @Param			transaction	body		TransactionPatch	true	"Transaction"
// @Security		BearerAuth
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{
			Error: &e,
		})
		return
	}

	scope, err := recurrence.ParseScope(c.Query("scope"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, TransactionPatch{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	var data TransactionPatch
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction, err := co.Recurrences.UpdateTransaction(c, auth.UserID(c), uri.ID.UUID, data.patch(updateFields), scope)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	apiResource := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &apiResource})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	transaction, err := co.findTransaction(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.WithContext(c).Where("user_id = ?", auth.UserID(c)).Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
