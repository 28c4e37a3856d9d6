package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/demo"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterDemoRoutes registers the routes for demo data.
func RegisterDemoRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDemo)
	r.POST("", PostDemo)
}

// DemoResult reports how many demo resources were created.
type DemoResult struct {
	Expenses int `json:"expenses" example:"10"` // Number of expenses that were created
	Budgets  int `json:"budgets" example:"8"`   // Number of budgets that were created
}

type DemoResponse struct {
	Data  *DemoResult `json:"data"`
	Error *string     `json:"error" example:"there was an error processing your request"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Demo
// @Success		204
// @Router			/v1/demo [options]
func OptionsDemo(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create demo data
// @Description	Seeds the database with a demo set of expenses and budgets. Seeding is idempotent, resources that already exist are not duplicated.
// @Tags			Demo
// @Produce		json
// @Success		201	{object}	DemoResponse
// @Failure		500	{object}	DemoResponse
// @Router			/v1/demo [post]
func PostDemo(c *gin.Context) {
	created, err := demo.Seed(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DemoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, DemoResponse{Data: &DemoResult{
		Expenses: created.Expenses,
		Budgets:  created.Budgets,
	}})
}
