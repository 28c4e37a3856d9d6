package cmd

import (
	"fmt"
	"strings"

	"github.com/fintrack/backend/internal/analysis"
	"github.com/fintrack/backend/internal/categorizer"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var flagMonth string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze spending against budgets",
	Long:  "Categorizes all stored expenses and prints the per-category budget state, overspend alerts and the spending trend.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&flagMonth, "month", "", "Limit the analysis to a month, YYYY-MM")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if err := connectDatabase(); err != nil {
		return err
	}

	var month *types.Month
	if flagMonth != "" {
		parsed, err := types.ParseMonth(flagMonth)
		if err != nil {
			return fmt.Errorf("--month must be a month in YYYY-MM format")
		}
		month = &parsed
	}

	expenses, err := models.Expenses(models.DB, month)
	if err != nil {
		return err
	}

	if len(expenses) == 0 {
		fmt.Println("No expenses found. Run 'demo' first or import expenses.")
		return nil
	}

	budgets, err := models.Budgets(models.DB)
	if err != nil {
		return err
	}

	rules, err := loadRules()
	if err != nil {
		return err
	}
	expenses = categorizer.CategorizeAll(expenses, rules)

	report := analysis.Analyze(expenses, budgets)
	printReport(report)

	return nil
}

// printReport renders an analysis report for the terminal.
func printReport(report analysis.Report) {
	p := message.NewPrinter(language.English)

	fmt.Println()
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("BUDGET ANALYSIS RESULTS")
	fmt.Println(strings.Repeat("=", 50))

	p.Printf("\nTotal Expenses: $%.2f\n", report.TotalSpent.InexactFloat64())
	if report.StartDate != nil {
		fmt.Printf("Period: %s to %s\n", report.StartDate.Format("2006-01-02"), report.EndDate.Format("2006-01-02"))
	}
	p.Printf("Average Daily Spending: $%.2f\n", report.AverageDaily.InexactFloat64())

	fmt.Println("\nCategory Breakdown:")
	for _, status := range report.Statuses {
		marker := "OK "
		if status.Overspent {
			marker = "OVER"
		}
		p.Printf("  [%s] %s: $%.2f / $%.2f (Remaining: $%.2f)\n",
			marker, status.Category,
			status.Spent.InexactFloat64(), status.Limit.InexactFloat64(), status.Remaining.InexactFloat64(),
		)
	}
	for _, spend := range report.Unbudgeted {
		p.Printf("  [   ] %s: $%.2f / No limit\n", spend.Category, spend.Spent.InexactFloat64())
	}

	if len(report.Alerts) > 0 {
		fmt.Println("\nALERTS:")
		for _, alert := range report.Alerts {
			fmt.Printf("  %s\n", alert)
		}
	}

	summary := analysis.Summarize(report.Statuses)
	p.Printf("\nTotal budget: $%.2f, spent $%.2f (%.1f%%), $%.2f remaining across %d categories\n",
		summary.TotalBudget.InexactFloat64(), summary.TotalSpent.InexactFloat64(),
		summary.Utilization.InexactFloat64(), summary.TotalRemaining.InexactFloat64(), summary.Categories,
	)
}
