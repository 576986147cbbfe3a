package engine

import "github.com/Ramprajapat28/DhanMunch/core"

// DropTarget identifies which bin, if any, captured a released bubble
type DropTarget int

const (
	TargetNone DropTarget = iota
	TargetIncome
	TargetExpense
)

// ResolveTarget tests the release point against the income bin first, then
// the expense bin. When the bins overlap and the point lies in both, income
// wins because it is checked first.
func ResolveTarget(x, y int, income, expense core.Area) DropTarget {
	if income.Contains(x, y) {
		return TargetIncome
	}
	if expense.Contains(x, y) {
		return TargetExpense
	}
	return TargetNone
}

// Category returns the bin's category; only valid for income and expense targets
func (t DropTarget) Category() core.Category {
	if t == TargetExpense {
		return core.CategoryExpense
	}
	return core.CategoryIncome
}
