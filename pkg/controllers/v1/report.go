package v1

import (
	"fmt"
	"net/http"

	"github.com/bahtledger/backend/pkg/httputil"
	"github.com/bahtledger/backend/pkg/ledger"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// Report is the API representation of a saved report.
type Report struct {
	models.DefaultModel
	Name    string            `json:"name" example:"October review"`           // Name of the report
	Type    models.ReportType `json:"type" example:"budget-vs-actual"`         // Type of the report
	Content string            `json:"content,omitempty" example:"# Overview"` // Rendered markdown. Omitted in the list.
	Links   ReportLinks       `json:"links"`                                   // Links to related resources
}

type ReportLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/reports/1"` // The report itself
}

func newReport(c *gin.Context, model models.Report) Report {
	return Report{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Type:         model.Type,
		Content:      model.Content,
		Links: ReportLinks{
			Self: fmt.Sprintf("%s/v1/reports/%d", baseURL(c), model.ID),
		},
	}
}

type ReportResponse struct {
	Data  *Report `json:"data"`                                                 // Data for the report
	Error *string `json:"error" example:"there is no report matching your query"` // The error, if any occurred
}

type ReportListResponse struct {
	Data  []Report `json:"data"`  // List of saved reports, newest first
	Error *string  `json:"error"` // The error, if any occurred
}

type ActualsResponse struct {
	Data  []ledger.CategoryActual `json:"data"`                                                // Actual spending per expense category
	Error *string                 `json:"error" example:"period must be in YYYY-MM format"` // The error, if any occurred
}

// BudgetVsActual is the budget vs. actual comparison of a period.
type BudgetVsActual struct {
	Period   string               `json:"period" example:"2025-10"`                          // Period in YYYY-MM format
	Rows     []ledger.VarianceRow `json:"rows"`                                              // One row per category
	Markdown string               `json:"markdown" example:"# Budget vs. actual: October 2025"` // The rendered report
}

type BudgetVsActualResponse struct {
	Data  *BudgetVsActual `json:"data"`                                                // The comparison
	Error *string         `json:"error" example:"period must be in YYYY-MM format"` // The error, if any occurred
}

type TotalsByTypeResponse struct {
	Data  []ledger.TypeTotal `json:"data"`  // Balance totals per account type
	Error *string            `json:"error"` // The error, if any occurred
}

// Overview is the net worth overview up to a date.
type Overview struct {
	ledger.Overview
	DateTo   string `json:"dateTo" example:"2025-10-31"`       // Inclusive upper date bound. Empty for all transactions.
	Markdown string `json:"markdown" example:"# Overview"` // The rendered report
}

type OverviewResponse struct {
	Data  *Overview `json:"data"`                                                 // The overview
	Error *string   `json:"error" example:"date must be in YYYY-MM-DD format"` // The error, if any occurred
}

// QuerySave is the query string for endpoints that save a rendered report.
type QuerySave struct {
	Name string `form:"name" example:"October review"` // Name of the saved report. Defaults to the report title.
}

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	// Saved reports
	{
		r.OPTIONS("", OptionsReportList)
		r.GET("", co.GetReports)
		r.OPTIONS("/:id", co.OptionsReportDetail)
		r.GET("/:id", co.GetReport)
	}

	// Computed reports
	{
		r.OPTIONS("/actuals", OptionsReportComputed)
		r.GET("/actuals", co.GetActuals)
		r.OPTIONS("/budget-vs-actual", OptionsReportSave)
		r.GET("/budget-vs-actual", co.GetBudgetVsActual)
		r.POST("/budget-vs-actual", co.SaveBudgetVsActual)
		r.OPTIONS("/totals-by-type", OptionsReportComputed)
		r.GET("/totals-by-type", co.GetTotalsByType)
		r.OPTIONS("/overview", OptionsReportSave)
		r.GET("/overview", co.GetOverview)
		r.POST("/overview", co.SaveOverview)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports [options]
func OptionsReportList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/actuals [options]
// @Router			/v1/reports/totals-by-type [options]
func OptionsReportComputed(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/budget-vs-actual [options]
// @Router			/v1/reports/overview [options]
func OptionsReportSave(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		uint	true	"ID of the report"
// @Router			/v1/reports/{id} [options]
func (co Controller) OptionsReportDetail(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	_, err = co.Ledger.Report(c.Request.Context(), id)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		List saved reports
// @Description	Returns all saved reports, newest first. The content is not included.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReportListResponse
// @Failure		500	{object}	ReportListResponse
// @Router			/v1/reports [get]
func (co Controller) GetReports(c *gin.Context) {
	reports, err := co.Ledger.Reports(c.Request.Context())
	if err != nil {
		c.JSON(status(err), ReportListResponse{Error: errorMessage(c, err)})
		return
	}

	data := make([]Report, 0, len(reports))
	for _, report := range reports {
		data = append(data, newReport(c, report))
	}

	c.JSON(http.StatusOK, ReportListResponse{Data: data})
}

// @Summary		Get saved report
// @Description	Returns a saved report including its content
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReportResponse
// @Failure		400	{object}	ReportResponse
// @Failure		404	{object}	ReportResponse
// @Failure		500	{object}	ReportResponse
// @Param			id	path		uint	true	"ID of the report"
// @Router			/v1/reports/{id} [get]
func (co Controller) GetReport(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), ReportResponse{Error: errorMessage(c, err)})
		return
	}

	report, err := co.Ledger.Report(c.Request.Context(), id)
	if err != nil {
		c.JSON(status(err), ReportResponse{Error: errorMessage(c, err)})
		return
	}

	data := newReport(c, report)
	c.JSON(http.StatusOK, ReportResponse{Data: &data})
}

// @Summary		Actual spending
// @Description	Returns the spending per expense category in a period
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ActualsResponse
// @Failure		400		{object}	ActualsResponse
// @Failure		500		{object}	ActualsResponse
// @Param			period	query		string	false	"Period in YYYY-MM format. Defaults to the current month."
// @Router			/v1/reports/actuals [get]
func (co Controller) GetActuals(c *gin.Context) {
	p, err := period(c)
	if err != nil {
		c.JSON(status(err), ActualsResponse{Error: errorMessage(c, err)})
		return
	}

	actuals, err := co.Ledger.ActualsByCategory(c.Request.Context(), p.String())
	if err != nil {
		c.JSON(status(err), ActualsResponse{Error: errorMessage(c, err)})
		return
	}

	c.JSON(http.StatusOK, ActualsResponse{Data: actuals})
}

// budgetVsActual computes and renders the budget vs. actual comparison for the request.
func (co Controller) budgetVsActual(c *gin.Context) (BudgetVsActual, error) {
	p, err := period(c)
	if err != nil {
		return BudgetVsActual{}, err
	}

	rows, err := co.Ledger.BudgetVsActual(c.Request.Context(), p.String())
	if err != nil {
		return BudgetVsActual{}, err
	}

	return BudgetVsActual{
		Period:   p.String(),
		Rows:     rows,
		Markdown: co.Renderer.BudgetVsActual(p, rows),
	}, nil
}

// @Summary		Budget vs. actual
// @Description	Compares the budgets of a period with the actual spending
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	BudgetVsActualResponse
// @Failure		400		{object}	BudgetVsActualResponse
// @Failure		500		{object}	BudgetVsActualResponse
// @Param			period	query		string	false	"Period in YYYY-MM format. Defaults to the current month."
// @Router			/v1/reports/budget-vs-actual [get]
func (co Controller) GetBudgetVsActual(c *gin.Context) {
	data, err := co.budgetVsActual(c)
	if err != nil {
		c.JSON(status(err), BudgetVsActualResponse{Error: errorMessage(c, err)})
		return
	}

	c.JSON(http.StatusOK, BudgetVsActualResponse{Data: &data})
}

// @Summary		Save budget vs. actual
// @Description	Renders the budget vs. actual comparison of a period and saves it as a report
// @Tags			Reports
// @Produce		json
// @Success		201		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Failure		500		{object}	ReportResponse
// @Param			period	query		string	false	"Period in YYYY-MM format. Defaults to the current month."
// @Param			name	query		string	false	"Name of the saved report"
// @Router			/v1/reports/budget-vs-actual [post]
func (co Controller) SaveBudgetVsActual(c *gin.Context) {
	data, err := co.budgetVsActual(c)
	if err != nil {
		c.JSON(status(err), ReportResponse{Error: errorMessage(c, err)})
		return
	}

	co.saveReport(c, models.ReportTypeBudgetVsActual, "Budget vs. actual "+data.Period, data.Markdown)
}

// @Summary		Totals by account type
// @Description	Returns the sum of the balances of all accounts per account type
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	TotalsByTypeResponse
// @Failure		500	{object}	TotalsByTypeResponse
// @Router			/v1/reports/totals-by-type [get]
func (co Controller) GetTotalsByType(c *gin.Context) {
	totals, err := co.Ledger.TotalsByType(c.Request.Context())
	if err != nil {
		c.JSON(status(err), TotalsByTypeResponse{Error: errorMessage(c, err)})
		return
	}

	c.JSON(http.StatusOK, TotalsByTypeResponse{Data: totals})
}

// overview computes and renders the overview for the request.
func (co Controller) overview(c *gin.Context) (Overview, error) {
	var query QueryDateTo
	err := httputil.BindQuery(c, &query)
	if err != nil {
		return Overview{}, err
	}

	o, err := co.Ledger.Overview(c.Request.Context(), query.DateTo)
	if err != nil {
		return Overview{}, err
	}

	return Overview{
		Overview: o,
		DateTo:   query.DateTo,
		Markdown: co.Renderer.Overview(query.DateTo, o),
	}, nil
}

// @Summary		Overview
// @Description	Returns total assets, total liabilities and the net worth
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	OverviewResponse
// @Failure		400		{object}	OverviewResponse
// @Failure		500		{object}	OverviewResponse
// @Param			dateTo	query		string	false	"Only include transactions on or before this date"
// @Router			/v1/reports/overview [get]
func (co Controller) GetOverview(c *gin.Context) {
	data, err := co.overview(c)
	if err != nil {
		c.JSON(status(err), OverviewResponse{Error: errorMessage(c, err)})
		return
	}

	c.JSON(http.StatusOK, OverviewResponse{Data: &data})
}

// @Summary		Save overview
// @Description	Renders the overview and saves it as a report
// @Tags			Reports
// @Produce		json
// @Success		201		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Failure		500		{object}	ReportResponse
// @Param			dateTo	query		string	false	"Only include transactions on or before this date"
// @Param			name	query		string	false	"Name of the saved report"
// @Router			/v1/reports/overview [post]
func (co Controller) SaveOverview(c *gin.Context) {
	data, err := co.overview(c)
	if err != nil {
		c.JSON(status(err), ReportResponse{Error: errorMessage(c, err)})
		return
	}

	name := "Overview"
	if data.DateTo != "" {
		name += " " + data.DateTo
	}

	co.saveReport(c, models.ReportTypeOverview, name, data.Markdown)
}

// saveReport saves the rendered report and writes the response.
// The name from the query string takes precedence over defaultName.
func (co Controller) saveReport(c *gin.Context, reportType models.ReportType, defaultName, content string) {
	var query QuerySave
	err := httputil.BindQuery(c, &query)
	if err != nil {
		c.JSON(status(err), ReportResponse{Error: errorMessage(c, err)})
		return
	}

	name := query.Name
	if name == "" {
		name = defaultName
	}

	report, err := co.Ledger.SaveReport(c.Request.Context(), name, reportType, content)
	if err != nil {
		c.JSON(status(err), ReportResponse{Error: errorMessage(c, err)})
		return
	}

	data := newReport(c, report)
	c.JSON(http.StatusCreated, ReportResponse{Data: &data})
}
