// Package healthz reports whether the service can reach its database.
package healthz

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/moneyflow-app/backend/internal/httputil"
	"github.com/moneyflow-app/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

type HealthResponse struct {
	Error string `json:"error" example:"an error occurred on the server during your request"`
}

// RegisterRoutes registers the routes for the healthz endpoint.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.Options)
	r.GET("", co.Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func (co Controller) Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	HealthResponse
// @Router			/healthz [get]
func (co Controller) Get(c *gin.Context) {
	sqlDB, err := co.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c)
	}

	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		c.JSON(http.StatusInternalServerError, HealthResponse{
			Error: models.ErrGeneral.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
