package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneyflow-app/backend/internal/httputil"
	"github.com/moneyflow-app/backend/internal/models"
)

// Frequency is a repeat interval recurrences can be created with.
type Frequency struct {
	models.DefaultModel
	Title         string `json:"title" example:"Monthly"`      // Name of the frequency
	IntervalValue int    `json:"intervalValue" example:"1"`    // Number of units between two installments
	IntervalUnit  string `json:"intervalUnit" example:"month"` // One of day, week, month, year
}

func newFrequency(model models.Frequency) Frequency {
	return Frequency{
		DefaultModel:  model.DefaultModel,
		Title:         model.Title,
		IntervalValue: model.IntervalValue,
		IntervalUnit:  model.IntervalUnit,
	}
}

type FrequencyListResponse struct {
	Data  []Frequency `json:"data"`                                                                // List of frequencies
	Error *string     `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// RegisterFrequencyRoutes registers the routes for frequencies with
// the RouterGroup that is passed.
func (co Controller) RegisterFrequencyRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsFrequencies)
	r.GET("", co.GetFrequencies)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Frequencies
// @Success		204
// @Security		BearerAuth
// @Router			/v1/frequencies [options]
func (co Controller) OptionsFrequencies(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get frequencies
// @Description	Returns the catalog of frequencies
// @Tags			Frequencies
// @Produce		json
// @Success		200	{object}	FrequencyListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	FrequencyListResponse
// @Security		BearerAuth
// @Router			/v1/frequencies [get]
func (co Controller) GetFrequencies(c *gin.Context) {
	var frequencies []models.Frequency
	err := co.DB.WithContext(c).Order("position ASC").Find(&frequencies).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FrequencyListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Frequency, 0, len(frequencies))
	for _, frequency := range frequencies {
		data = append(data, newFrequency(frequency))
	}

	c.JSON(http.StatusOK, FrequencyListResponse{Data: data})
}
