package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneyflow-app/backend/internal/httputil"
	"github.com/moneyflow-app/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name          string `json:"name" binding:"required" example:"Alimentação"` // Name of the category
	WebDeviceIcon string `json:"webDeviceIcon" example:"utensils" default:""`   // Name of the icon shown by the web client
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:          editable.Name,
		WebDeviceIcon: editable.WebDeviceIcon,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions in this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:          model.Name,
			WebDeviceIcon: model.WebDeviceIcon,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                             // Data for the category
	Error *string   `json:"error" example:"the category name must be unique"` // The error, if any occurred
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsCategories)
	r.GET("", co.GetCategories)
	r.POST("", co.CreateCategory)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Security		BearerAuth
// @Router			/v1/categories [options]
func (co Controller) OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get categories
// @Description	Returns all categories, ordered by name
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	CategoryListResponse
// @Security		BearerAuth
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var categories []models.Category
	err := co.DB.WithContext(c).Order("name ASC").Find(&categories).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		401			{object}	httpError
// @Failure		409			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Security		BearerAuth
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	category := editable.model()
	err = co.DB.WithContext(c).Create(&category).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &data})
}
