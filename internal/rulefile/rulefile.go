// Package rulefile loads categorization rule tables from TOML files.
//
// Rule files let users replace the built-in keyword table:
//
//	[[rules]]
//	pattern = "grocery"
//	category = "Groceries"
//
// Rules apply in file order, so the file is an ordered list, not a map.
package rulefile

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/fintrack/backend/internal/categorizer"
)

var (
	ErrNoRules          = errors.New("the rule file does not contain any rules")
	ErrPatternRequired  = errors.New("every rule needs a pattern")
	ErrCategoryRequired = errors.New("every rule needs a category")
)

type ruleFile struct {
	Rules []rule `toml:"rules"`
}

type rule struct {
	Pattern  string `toml:"pattern"`
	Category string `toml:"category"`
}

// Load reads a rule table from a TOML file.
func Load(path string) ([]categorizer.Rule, error) {
	var file ruleFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("could not read rule file %s: %w", path, err)
	}

	if len(file.Rules) == 0 {
		return nil, ErrNoRules
	}

	rules := make([]categorizer.Rule, 0, len(file.Rules))
	for i, r := range file.Rules {
		if r.Pattern == "" {
			return nil, fmt.Errorf("rule %d: %w", i+1, ErrPatternRequired)
		}
		if r.Category == "" {
			return nil, fmt.Errorf("rule %d: %w", i+1, ErrCategoryRequired)
		}

		rules = append(rules, categorizer.Rule{Pattern: r.Pattern, Category: r.Category})
	}

	return rules, nil
}
