package v1

import (
	"net/http"
	"time"

	"github.com/fintrack/backend/internal/categorizer"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Batch categorization
	{
		r.OPTIONS("/categorize", OptionsExpenseCategorize)
		r.POST("/categorize", CategorizeExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Date          time.Time       `json:"date" example:"2024-01-15T00:00:00Z"`
	Description   string          `json:"description" example:"Grocery Store"`
	Amount        decimal.Decimal `json:"amount" example:"45.67"`
	Category      string          `json:"category" example:"" default:""` // Left empty, the categorizer assigns one
	PaymentMethod string          `json:"paymentMethod" example:"Credit Card"`
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Date:          editable.Date,
		Description:   editable.Description,
		Amount:        editable.Amount,
		Category:      editable.Category,
		PaymentMethod: editable.PaymentMethod,
	}
}

type ExpenseResponse struct {
	Data  *models.Expense `json:"data"`
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type ExpenseListResponse struct {
	Data  []models.Expense `json:"data"`
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type ExpenseQueryFilter struct {
	Category      string `form:"category"`      // Filter by category
	PaymentMethod string `form:"paymentMethod"` // Filter by payment method
	Month         string `form:"month"`         // Limit to expenses in a month, YYYY-MM
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Expense{}, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create expense
// @Description	Creates a new expense. An empty category is filled in by the categorizer.
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	expense := editable.model()

	// Auto-categorize when the client did not specify a category
	if expense.Category == "" {
		rules, err := storedOrDefaultRules()
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ExpenseResponse{Error: &e})
			return
		}

		expense.Category = categorizer.Categorize(expense.Description, rules)
	}

	err = models.DB.Create(&expense).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: &expense})
}

// @Summary		Get expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200				{object}	ExpenseListResponse
// @Failure		400				{object}	ExpenseListResponse
// @Failure		500				{object}	ExpenseListResponse
// @Param			category		query		string	false	"Filter by category"
// @Param			paymentMethod	query		string	false	"Filter by payment method"
// @Param			month			query		string	false	"Limit to expenses in a month, YYYY-MM"
// @Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &e})
		return
	}

	query := models.DB.Order("date ASC, id ASC").Where(&models.Expense{
		Category:      filter.Category,
		PaymentMethod: filter.PaymentMethod,
	})

	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			e := errMonthInvalid.Error()
			c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &e})
			return
		}

		query = query.Where("date >= date(?) AND date < date(?)", month, month.AddDate(0, 1))
	}

	// When there are no resources, we want an empty list, not null
	expenses := make([]models.Expense, 0)
	err := query.Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	var editable ExpenseEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses/categorize [options]
func OptionsExpenseCategorize(c *gin.Context) {
	httputil.OptionsPost(c)
}

type CategorizeResponse struct {
	Data  *CategorizeResult `json:"data"`
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type CategorizeResult struct {
	Categorized int `json:"categorized" example:"3"` // Number of expenses that were assigned a category
}

// @Summary		Categorize expenses
// @Description	Assigns categories to all stored expenses without one. Expenses that already have a category are not changed, running categorization twice yields the same result.
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	CategorizeResponse
// @Failure		500	{object}	CategorizeResponse
// @Router			/v1/expenses/categorize [post]
func CategorizeExpenses(c *gin.Context) {
	rules, err := storedOrDefaultRules()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategorizeResponse{Error: &e})
		return
	}

	var expenses []models.Expense
	err = models.DB.Where("category = ''").Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategorizeResponse{Error: &e})
		return
	}

	categorized := categorizer.CategorizeAll(expenses, rules)

	for i := range categorized {
		err = models.DB.Model(&categorized[i]).Update("category", categorized[i].Category).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), CategorizeResponse{Error: &e})
			return
		}
	}

	c.JSON(http.StatusOK, CategorizeResponse{Data: &CategorizeResult{Categorized: len(categorized)}})
}

// storedOrDefaultRules returns the rule table from the database, falling
// back to the built-in rules when none are configured.
func storedOrDefaultRules() ([]categorizer.Rule, error) {
	stored, err := models.CategoryRules(models.DB)
	if err != nil {
		return nil, err
	}

	if len(stored) == 0 {
		return categorizer.DefaultRules(), nil
	}

	rules := make([]categorizer.Rule, 0, len(stored))
	for _, rule := range stored {
		rules = append(rules, categorizer.Rule{Pattern: rule.Match, Category: rule.Category})
	}

	return rules, nil
}
