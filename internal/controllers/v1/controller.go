// Package v1 implements the handlers for the v1 API.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/moneyflow-app/backend/internal/auth"
	"github.com/moneyflow-app/backend/internal/recurrence"
	"gorm.io/gorm"
)

// Controller holds the dependencies of all v1 handlers.
type Controller struct {
	DB          *gorm.DB
	Recurrences recurrence.Service
	Tokens      auth.Issuer
}

func NewController(db *gorm.DB, tokens auth.Issuer) Controller {
	return Controller{
		DB:          db,
		Recurrences: recurrence.NewService(db),
		Tokens:      tokens,
	}
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
//
// Everything except user registration and login requires authentication.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterUserRoutes(r.Group("/users"))

	authenticated := r.Group("", auth.Middleware(co.DB, co.Tokens))
	co.RegisterCategoryRoutes(authenticated.Group("/categories"))
	co.RegisterFrequencyRoutes(authenticated.Group("/frequencies"))
	co.RegisterTransactionRoutes(authenticated.Group("/transactions"))
	co.RegisterRecurrenceRoutes(authenticated.Group("/recurrences"))
}
