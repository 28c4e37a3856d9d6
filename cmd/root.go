package cmd

import (
	"os"
	"path/filepath"

	"github.com/fintrack/backend/internal/categorizer"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/rulefile"
	"github.com/spf13/cobra"
)

var (
	flagDB    string
	flagRules string
)

var rootCmd = &cobra.Command{
	Use:   "fintrack",
	Short: "Expense tracking and budget analysis",
	Long:  "Track expenses, categorize them with keyword rules and analyze spending against monthly budgets.",

	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", filepath.Join("data", "fintrack.db"), "Path to the sqlite database")
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", "", "Path to a TOML file with categorization rules")
}

// connectDatabase opens the database, creating the data directory when needed.
func connectDatabase() error {
	if err := os.MkdirAll(filepath.Dir(flagDB), os.ModePerm); err != nil {
		return err
	}

	return models.Connect(flagDB)
}

// loadRules returns the categorization rules for a command run. A rule file
// passed via --rules wins over rules stored in the database, the built-in
// rule set is the fallback.
func loadRules() ([]categorizer.Rule, error) {
	if flagRules != "" {
		return rulefile.Load(flagRules)
	}

	stored, err := models.CategoryRules(models.DB)
	if err != nil {
		return nil, err
	}

	if len(stored) > 0 {
		rules := make([]categorizer.Rule, 0, len(stored))
		for _, rule := range stored {
			rules = append(rules, categorizer.Rule{Pattern: rule.Match, Category: rule.Category})
		}
		return rules, nil
	}

	return categorizer.DefaultRules(), nil
}
