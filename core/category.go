package core

// Category classifies a catalog item as money in or money out
type Category int

const (
	CategoryIncome Category = iota
	CategoryExpense
	CategoryCount
)

// String returns a human-readable category name
func (c Category) String() string {
	switch c {
	case CategoryIncome:
		return "income"
	case CategoryExpense:
		return "expense"
	default:
		return "unknown"
	}
}
