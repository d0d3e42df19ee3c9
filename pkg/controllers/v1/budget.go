package v1

import (
	"net/http"
	"time"

	"github.com/bahtledger/backend/internal/types"
	"github.com/bahtledger/backend/pkg/httputil"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Budget is the API representation of a budget.
type Budget struct {
	models.DefaultModel
	Period   string          `json:"period" example:"2025-10"`          // Period of the budget in YYYY-MM format
	Category string          `json:"category" example:"Food & Dining"` // Name of the expense category
	Amount   decimal.Decimal `json:"amount" example:"300"`              // Budgeted amount
}

func newBudget(model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		Period:       model.Period,
		Category:     model.Category,
		Amount:       model.Amount,
	}
}

// BudgetEditable contains the fields of a budget that can be set.
type BudgetEditable struct {
	Category string          `json:"category" example:"Food & Dining"` // Name of the expense category
	Amount   decimal.Decimal `json:"amount" example:"300"`              // Budgeted amount
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                          // Data for the budget
	Error *string `json:"error" example:"category must not be empty"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                // List of budgets
	Error *string  `json:"error" example:"period must be in YYYY-MM format"` // The error, if any occurred
}

// period returns the period from the query string, defaulting to the current month.
func period(c *gin.Context) (types.Period, error) {
	var query QueryPeriod
	err := httputil.BindQuery(c, &query)
	if err != nil {
		return types.Period{}, err
	}

	if query.Period == "" {
		return types.PeriodOf(time.Now()), nil
	}

	p, err := types.ParsePeriod(query.Period)
	if err != nil {
		return types.Period{}, models.ErrInvalidPeriod
	}

	return p, nil
}

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudgets)
	r.GET("", co.GetBudgets)
	r.PUT("", co.SetBudget)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		List budgets
// @Description	Returns the budgets of a period, ordered by category
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetListResponse
// @Failure		400		{object}	BudgetListResponse
// @Failure		500		{object}	BudgetListResponse
// @Param			period	query		string	false	"Period in YYYY-MM format. Defaults to the current month."
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	p, err := period(c)
	if err != nil {
		c.JSON(status(err), BudgetListResponse{Error: errorMessage(c, err)})
		return
	}

	budgets, err := co.Ledger.ListBudgets(c.Request.Context(), p.String())
	if err != nil {
		c.JSON(status(err), BudgetListResponse{Error: errorMessage(c, err)})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Set budget
// @Description	Sets the budget for a category in a period. An existing budget for the category is replaced.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			period	query		string			false	"Period in YYYY-MM format. Defaults to the current month."
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [put]
func (co Controller) SetBudget(c *gin.Context) {
	p, err := period(c)
	if err != nil {
		c.JSON(status(err), BudgetResponse{Error: errorMessage(c, err)})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), BudgetResponse{Error: errorMessage(c, err)})
		return
	}

	budget, err := co.Ledger.UpsertBudget(c.Request.Context(), p.String(), editable.Category, editable.Amount)
	if err != nil {
		c.JSON(status(err), BudgetResponse{Error: errorMessage(c, err)})
		return
	}

	data := newBudget(budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}
