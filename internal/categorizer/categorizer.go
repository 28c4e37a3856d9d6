// Package categorizer assigns categories to expense descriptions.
//
// Categorization is a pure function of the description and an ordered rule
// table: rules are evaluated in order and the first matching rule wins.
package categorizer

import (
	"strings"

	"github.com/fintrack/backend/internal/models"
	"github.com/ryanuber/go-glob"
)

// Uncategorized is the category for expenses that no rule matches.
const Uncategorized = "Uncategorized"

// Rule maps a pattern to a category.
type Rule struct {
	Pattern  string // Glob pattern, matched case-insensitively. A pattern without "*" matches as substring.
	Category string
}

// Categorize returns the category for a description.
//
// Rules are evaluated in slice order, the first rule whose pattern matches
// wins. When no rule matches or the description is empty, Uncategorized is
// returned. Categorize never fails.
func Categorize(description string, rules []Rule) string {
	if strings.TrimSpace(description) == "" {
		return Uncategorized
	}

	target := strings.ToLower(description)
	for _, rule := range rules {
		if glob.Glob(pattern(rule.Pattern), target) {
			return rule.Category
		}
	}

	return Uncategorized
}

// CategorizeAll returns a copy of the expenses with empty categories filled
// in. Expenses that already carry a category are left untouched, which makes
// the operation idempotent and lets users override the rule table.
func CategorizeAll(expenses []models.Expense, rules []Rule) []models.Expense {
	categorized := make([]models.Expense, len(expenses))
	copy(categorized, expenses)

	for i := range categorized {
		if categorized[i].Category == "" {
			categorized[i].Category = Categorize(categorized[i].Description, rules)
		}
	}

	return categorized
}

// pattern normalizes a rule pattern for matching. Patterns without glob
// metacharacters are keyword rules and match anywhere in the description.
func pattern(p string) string {
	p = strings.ToLower(p)
	if !strings.Contains(p, glob.GLOB) {
		return glob.GLOB + p + glob.GLOB
	}

	return p
}
