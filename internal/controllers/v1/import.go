package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/fintrack/backend/internal/categorizer"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/importer"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// ImportResult reports the outcome of an import run.
type ImportResult struct {
	Created int `json:"created" example:"17"` // Number of resources that were created
	Skipped int `json:"skipped" example:"3"`  // Number of rows that were skipped as duplicates
}

type ImportResultResponse struct {
	Data  *ImportResult `json:"data"`
	Error *string       `json:"error" example:"you must send a file to this endpoint"`
}

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("/expenses", OptionsImportExpenses)
		r.POST("/expenses", ImportExpenses)

		r.OPTIONS("/budgets", OptionsImportBudgets)
		r.POST("/budgets", ImportBudgets)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/expenses [options]
func OptionsImportExpenses(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/budgets [options]
func OptionsImportBudgets(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import expenses
// @Description	Imports expenses from a CSV file. Rows that have already been imported are skipped, detection uses a hash over the date, description and amount. Rows without a category are categorized with the stored rules.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResultResponse
// @Failure		400		{object}	ImportResultResponse
// @Failure		500		{object}	ImportResultResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import/expenses [post]
func ImportExpenses(c *gin.Context) {
	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResultResponse{Error: &s})
		return
	}

	expenses, err := importer.ParseExpenses(f)
	if err != nil {
		// importer.ParseExpenses returns a usable error already, no translation necessary
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResultResponse{Error: &s})
		return
	}

	rules, err := storedOrDefaultRules()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResultResponse{Error: &s})
		return
	}
	expenses = categorizer.CategorizeAll(expenses, rules)

	var result ImportResult
	for _, expense := range expenses {
		// Rows that were imported before are skipped, not overwritten
		var count int64
		err = models.DB.Model(&models.Expense{}).
			Where(&models.Expense{ImportHash: expense.ImportHash}).
			Count(&count).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ImportResultResponse{Error: &s})
			return
		}

		if count > 0 {
			result.Skipped++
			continue
		}

		err = models.DB.Create(&expense).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ImportResultResponse{Error: &s})
			return
		}
		result.Created++
	}

	c.JSON(http.StatusCreated, ImportResultResponse{Data: &result})
}

// @Summary		Import budgets
// @Description	Imports budgets from a CSV file. Budgets for categories that already have one are skipped, the stored limit is not overwritten.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResultResponse
// @Failure		400		{object}	ImportResultResponse
// @Failure		500		{object}	ImportResultResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import/budgets [post]
func ImportBudgets(c *gin.Context) {
	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResultResponse{Error: &s})
		return
	}

	budgets, err := importer.ParseBudgets(f)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResultResponse{Error: &s})
		return
	}

	var result ImportResult
	for _, budget := range budgets {
		var count int64
		err = models.DB.Model(&models.Budget{}).
			Where(&models.Budget{Category: budget.Category}).
			Count(&count).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ImportResultResponse{Error: &s})
			return
		}

		if count > 0 {
			result.Skipped++
			continue
		}

		err = models.DB.Create(&budget).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ImportResultResponse{Error: &s})
			return
		}
		result.Created++
	}

	c.JSON(http.StatusCreated, ImportResultResponse{Data: &result})
}
