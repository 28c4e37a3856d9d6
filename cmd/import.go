package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fintrack/backend/internal/categorizer"
	"github.com/fintrack/backend/internal/importer"
	"github.com/fintrack/backend/internal/models"
	"github.com/spf13/cobra"
)

var flagImportBudgets bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import expenses or budgets from a CSV file",
	Long:  "Imports expenses from a CSV file. Rows that were imported before are skipped. With --budgets, the file is read as a budget file instead.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().BoolVar(&flagImportBudgets, "budgets", false, "Import budgets instead of expenses")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	if err := connectDatabase(); err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	if flagImportBudgets {
		return importBudgets(f)
	}

	return importExpenses(f)
}

func importExpenses(f io.Reader) error {
	expenses, err := importer.ParseExpenses(f)
	if err != nil {
		return err
	}

	rules, err := loadRules()
	if err != nil {
		return err
	}
	expenses = categorizer.CategorizeAll(expenses, rules)

	var created, skipped int
	for _, expense := range expenses {
		var count int64
		err = models.DB.Model(&models.Expense{}).
			Where(&models.Expense{ImportHash: expense.ImportHash}).
			Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			skipped++
			continue
		}

		if err := models.DB.Create(&expense).Error; err != nil {
			return err
		}
		created++
	}

	fmt.Printf("Imported %d expenses, skipped %d duplicates\n", created, skipped)
	return nil
}

func importBudgets(f io.Reader) error {
	budgets, err := importer.ParseBudgets(f)
	if err != nil {
		return err
	}

	var created, skipped int
	for _, budget := range budgets {
		var count int64
		err = models.DB.Model(&models.Budget{}).
			Where(&models.Budget{Category: budget.Category}).
			Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			skipped++
			continue
		}

		if err := models.DB.Create(&budget).Error; err != nil {
			return err
		}
		created++
	}

	fmt.Printf("Imported %d budgets, skipped %d existing categories\n", created, skipped)
	return nil
}
