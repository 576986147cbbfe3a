package content

import "github.com/Ramprajapat28/DhanMunch/core"

// Item is a static catalog definition of a spawnable bubble
type Item struct {
	ID       string
	Category core.Category
	Glyph    rune
	Label    string
}

var catalog = []Item{
	// Income
	{ID: "salary", Category: core.CategoryIncome, Glyph: '$', Label: "Salary"},
	{ID: "bonus", Category: core.CategoryIncome, Glyph: '+', Label: "Bonus"},
	{ID: "interest", Category: core.CategoryIncome, Glyph: '%', Label: "Interest"},
	{ID: "gift", Category: core.CategoryIncome, Glyph: '*', Label: "Gift"},
	{ID: "refund", Category: core.CategoryIncome, Glyph: '<', Label: "Refund"},
	{ID: "freelance", Category: core.CategoryIncome, Glyph: '~', Label: "Freelance"},

	// Expense
	{ID: "rent", Category: core.CategoryExpense, Glyph: '#', Label: "Rent"},
	{ID: "groceries", Category: core.CategoryExpense, Glyph: '@', Label: "Groceries"},
	{ID: "transport", Category: core.CategoryExpense, Glyph: '>', Label: "Transport"},
	{ID: "bills", Category: core.CategoryExpense, Glyph: '!', Label: "Bills"},
	{ID: "shopping", Category: core.CategoryExpense, Glyph: '&', Label: "Shopping"},
	{ID: "dining", Category: core.CategoryExpense, Glyph: '^', Label: "Dining"},
}

// Catalog returns the full list of spawnable items
// The returned slice is shared; callers must not mutate it
func Catalog() []Item {
	return catalog
}
