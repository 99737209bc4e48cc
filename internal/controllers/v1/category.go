package v1

import (
	"net/http"

	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

type CategoryLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/categories/food"`            // The category itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?category=food"` // Expenses of the category
}

// Category is the API v1 representation of a category.
type Category struct {
	ledger.CategoryBreakdown
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, b ledger.CategoryBreakdown) Category {
	return Category{
		CategoryBreakdown: b,
		Links: CategoryLinks{
			Self:     link(c, "/v1/categories/%s", b.ID),
			Expenses: link(c, "/v1/expenses?category=%s", b.ID),
		},
	}
}

type CategoryResponse struct {
	Data Category `json:"data"` // Data for the category
}

type CategoryListResponse struct {
	Data []Category `json:"data"` // List of all categories in display order
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", co.GetCategories)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			id	path	string	true	"ID of the category"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns ceiling, amount spent and remaining amount of every category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	breakdown := co.Store.Categories()

	data := make([]Category, 0, len(breakdown))
	for _, b := range breakdown {
		data = append(data, newCategory(c, b))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get category
// @Description	Returns ceiling, amount spent and remaining amount of a category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	httpError
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	category, err := ledger.ParseCategory(c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}

	b, err := co.Store.Category(category)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: newCategory(c, b)})
}
