package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/analysis"
	"github.com/fintrack/backend/internal/categorizer"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterAnalysisRoutes registers the routes for analysis with
// the RouterGroup that is passed.
func RegisterAnalysisRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAnalysis)
	r.GET("", GetAnalysis)
}

type AnalysisQuery struct {
	Month string `form:"month"` // Limit the analysis to a month, YYYY-MM
}

// Analysis contains the full result of one analysis run.
type Analysis struct {
	analysis.Report
	Summary analysis.Summary     `json:"summary"`
	Trend   analysis.TrendReport `json:"trend"`
}

type AnalysisResponse struct {
	Data  *Analysis `json:"data"`
	Error *string   `json:"error" example:"the month query parameter must be a month in YYYY-MM format"`
}

// @Summary		Analyze budgets
// @Description	Categorizes all stored expenses and compares the spending totals per category against the budget limits. Categories without a budget are reported as unbudgeted. The analysis is recomputed on every request, stored spending values are never reused.
// @Tags			Analysis
// @Produce		json
// @Success		200		{object}	AnalysisResponse
// @Failure		400		{object}	AnalysisResponse
// @Failure		500		{object}	AnalysisResponse
// @Param			month	query		string	false	"Limit the analysis to a month, YYYY-MM"
// @Router			/v1/analysis [get]
func GetAnalysis(c *gin.Context) {
	var query AnalysisQuery
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AnalysisResponse{Error: &e})
		return
	}

	var month *types.Month
	if query.Month != "" {
		parsed, err := types.ParseMonth(query.Month)
		if err != nil {
			e := errMonthInvalid.Error()
			c.JSON(http.StatusBadRequest, AnalysisResponse{Error: &e})
			return
		}
		month = &parsed
	}

	expenses, err := models.Expenses(models.DB, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisResponse{Error: &e})
		return
	}

	budgets, err := models.Budgets(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisResponse{Error: &e})
		return
	}

	rules, err := storedOrDefaultRules()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisResponse{Error: &e})
		return
	}

	// Categorization only fills in empty categories, stored categories
	// are respected as an override.
	expenses = categorizer.CategorizeAll(expenses, rules)

	report := analysis.Analyze(expenses, budgets)

	c.JSON(http.StatusOK, AnalysisResponse{Data: &Analysis{
		Report:  report,
		Summary: analysis.Summarize(report.Statuses),
		Trend:   analysis.Trend(expenses),
	}})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analysis
// @Success		204
// @Router			/v1/analysis [options]
func OptionsAnalysis(c *gin.Context) {
	httputil.OptionsGet(c)
}
