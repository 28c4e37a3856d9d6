package cmd

import (
	"fmt"

	"github.com/fintrack/backend/internal/demo"
	"github.com/fintrack/backend/internal/models"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Seed the database with demo data",
	Long:  "Writes a sample set of expenses and budgets to the database. Seeding is idempotent, existing resources are kept.",
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(_ *cobra.Command, _ []string) error {
	if err := connectDatabase(); err != nil {
		return err
	}

	created, err := demo.Seed(models.DB)
	if err != nil {
		return err
	}

	fmt.Printf("Created %d expenses and %d budgets\n", created.Expenses, created.Budgets)
	return nil
}
