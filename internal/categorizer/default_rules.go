package categorizer

// DefaultRules returns the built-in rule table.
//
// The order of the rules is part of the contract: "Gas Station" must resolve
// to Transportation even though "station" could plausibly match elsewhere.
func DefaultRules() []Rule {
	keywords := []struct {
		category string
		keywords []string
	}{
		{"Groceries", []string{"grocery", "supermarket", "food", "market", "fresh", "organic"}},
		{"Transportation", []string{"gas", "fuel", "uber", "lyft", "taxi", "parking", "metro", "bus"}},
		{"Dining", []string{"restaurant", "cafe", "coffee", "pizza", "burger", "dining", "food court"}},
		{"Entertainment", []string{"movie", "theater", "netflix", "spotify", "amazon prime", "concert"}},
		{"Utilities", []string{"electric", "water", "gas bill", "internet", "phone", "utility"}},
		{"Healthcare", []string{"pharmacy", "doctor", "medical", "dental", "health", "clinic"}},
		{"Shopping", []string{"clothing", "store", "mall", "amazon", "target", "walmart", "shopping"}},
		{"Health & Fitness", []string{"gym", "fitness", "yoga", "workout", "sports", "athletic"}},
		{"Education", []string{"book", "course", "class", "tuition", "education", "learning"}},
		{"Travel", []string{"hotel", "flight", "airline", "vacation", "travel", "trip"}},
	}

	var rules []Rule
	for _, entry := range keywords {
		for _, keyword := range entry.keywords {
			rules = append(rules, Rule{Pattern: keyword, Category: entry.category})
		}
	}

	return rules
}
