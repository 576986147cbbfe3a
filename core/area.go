package core

// Area represents a rectangular target region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (minimum 1x1)
}

// Contains reports whether the point (x, y) lies inside the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Overlaps reports whether the two areas share at least one cell
func (a Area) Overlaps(b Area) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}
