package engine

import (
	"testing"

	"github.com/Ramprajapat28/DhanMunch/core"
)

// TestResolveTarget verifies point-in-bin resolution and the miss fallback
func TestResolveTarget(t *testing.T) {
	income := core.Area{X: 0, Y: 20, Width: 10, Height: 4}
	expense := core.Area{X: 20, Y: 20, Width: 10, Height: 4}

	tests := []struct {
		name string
		x, y int
		want DropTarget
	}{
		{"inside income", 5, 22, TargetIncome},
		{"inside expense", 25, 22, TargetExpense},
		{"between bins", 15, 22, TargetNone},
		{"above bins", 5, 10, TargetNone},
		{"income right edge exclusive", 10, 22, TargetNone},
	}

	for _, tt := range tests {
		if got := ResolveTarget(tt.x, tt.y, income, expense); got != tt.want {
			t.Errorf("%s: ResolveTarget(%d, %d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

// TestResolveTargetOverlapPrefersIncome verifies the first-checked-wins tie-break
func TestResolveTargetOverlapPrefersIncome(t *testing.T) {
	income := core.Area{X: 0, Y: 20, Width: 15, Height: 4}
	expense := core.Area{X: 10, Y: 20, Width: 15, Height: 4}

	if !income.Overlaps(expense) {
		t.Fatal("Test setup expects overlapping bins")
	}
	if got := ResolveTarget(12, 22, income, expense); got != TargetIncome {
		t.Errorf("Expected overlapping point to resolve to income, got %v", got)
	}
}

// TestDropTargetCategory verifies bin-to-category mapping
func TestDropTargetCategory(t *testing.T) {
	if TargetIncome.Category() != core.CategoryIncome {
		t.Error("Expected income target to map to income category")
	}
	if TargetExpense.Category() != core.CategoryExpense {
		t.Error("Expected expense target to map to expense category")
	}
}
