package v1

import (
	"net/http"
	"strconv"

	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/savings"
	"github.com/budget-buddy/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name        string               `json:"name" example:"New laptop" binding:"required"`
	Amount      decimal.Decimal      `json:"amount" example:"60000" minimum:"0.00000001"`
	Deadline    types.Date           `json:"deadline" example:"2024-06-30" swaggertype:"string" format:"date"` // Defaults to three months from now
	Category    savings.GoalCategory `json:"category" example:"gadgets" binding:"omitempty,goal_category"`     // Defaults to "other"
	Description string               `json:"description" example:"For university"`
}

type AllocationEditable struct {
	Amount decimal.Decimal `json:"amount" example:"1000" minimum:"0.00000001"` // At most the missing amount of the goal and the total savings are allocated
}

type GoalLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/goals/1710419465001"`
	Allocations string `json:"allocations" example:"https://example.com/api/v1/goals/1710419465001/allocations"`
}

// Goal is the API v1 representation of a savings goal.
type Goal struct {
	savings.Goal
	CategoryName string          `json:"categoryName" example:"Gadgets"`
	Remaining    decimal.Decimal `json:"remaining" example:"48000"`
	Progress     decimal.Decimal `json:"progress" example:"0.2"` // Saved amount as fraction of the target
	MonthsLeft   int64           `json:"monthsLeft" example:"3"`
	Links        GoalLinks       `json:"links"`
}

func (co Controller) newGoal(c *gin.Context, g savings.Goal) Goal {
	return Goal{
		Goal:         g,
		CategoryName: g.Category.Name(),
		Remaining:    g.Remaining(),
		Progress:     g.Progress(),
		MonthsLeft:   g.MonthsLeft(co.now()),
		Links: GoalLinks{
			Self:        link(c, "/v1/goals/%d", g.ID),
			Allocations: link(c, "/v1/goals/%d/allocations", g.ID),
		},
	}
}

type GoalResponse struct {
	Data Goal `json:"data"`
}

type GoalListResponse struct {
	Data []Goal `json:"data"` // All goals in creation order
}

type Allocation struct {
	Allocated decimal.Decimal `json:"allocated" example:"1000"` // The amount that was moved to the goal
	Goal      Goal            `json:"goal"`
}

type AllocationResponse struct {
	Data Allocation `json:"data"`
}

// goalID parses the ID parameter of the request.
func goalID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

// RegisterGoalRoutes registers the routes for savings goals with
// the RouterGroup that is passed.
func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsGoalList)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}

	// Goal with ID
	{
		r.OPTIONS("/:id", co.OptionsGoalDetail)
		r.GET("/:id", co.GetGoal)
		r.DELETE("/:id", co.DeleteGoal)

		r.OPTIONS("/:id/allocations", OptionsAllocations)
		r.POST("/:id/allocations", co.CreateAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func OptionsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		integer	true	"ID of the goal"
// @Router			/v1/goals/{id} [options]
func (co Controller) OptionsGoalDetail(c *gin.Context) {
	id, err := goalID(c)
	if err != nil {
		abort(c, err)
		return
	}

	if _, err := co.Bank.Goal(id); err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			id	path	integer	true	"ID of the goal"
// @Router			/v1/goals/{id}/allocations [options]
func OptionsAllocations(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get goals
// @Description	Returns all savings goals
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Router			/v1/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	goals := co.Bank.Goals()

	data := make([]Goal, 0, len(goals))
	for _, g := range goals {
		data = append(data, co.newGoal(c, g))
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: data})
}

// @Summary		Create goal
// @Description	Creates a savings goal
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	var editable GoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	goal, err := co.Bank.CreateGoal(savings.GoalCreate{
		Name:        editable.Name,
		Amount:      editable.Amount,
		Deadline:    editable.Deadline,
		Category:    editable.Category,
		Description: editable.Description,
	})
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, GoalResponse{Data: co.newGoal(c, goal)})
}

// @Summary		Get goal
// @Description	Returns a specific savings goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		integer	true	"ID of the goal"
// @Router			/v1/goals/{id} [get]
func (co Controller) GetGoal(c *gin.Context) {
	id, err := goalID(c)
	if err != nil {
		abort(c, err)
		return
	}

	goal, err := co.Bank.Goal(id)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: co.newGoal(c, goal)})
}

// @Summary		Delete goal
// @Description	Deletes a savings goal. The amount saved for it is returned to the savings.
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		integer	true	"ID of the goal"
// @Router			/v1/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	id, err := goalID(c)
	if err != nil {
		abort(c, err)
		return
	}

	if _, err := co.Bank.DeleteGoal(id); err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Allocate to goal
// @Description	Moves savings to a goal
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		409			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		integer				true	"ID of the goal"
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/goals/{id}/allocations [post]
func (co Controller) CreateAllocation(c *gin.Context) {
	id, err := goalID(c)
	if err != nil {
		abort(c, err)
		return
	}

	var editable AllocationEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	allocated, err := co.Bank.AllocateToGoal(id, editable.Amount)
	if err != nil {
		abort(c, err)
		return
	}

	goal, err := co.Bank.Goal(id)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{Data: Allocation{
		Allocated: allocated,
		Goal:      co.newGoal(c, goal),
	}})
}
