package constants

import "time"

// Frame Loop
const (
	// FrameInterval paces the render/update loop (~30 FPS)
	FrameInterval = 33 * time.Millisecond
)

// Screen Layout
const (
	// HUDRow is the screen row of the score and timer line
	HUDRow = 0

	// BinHeight is the height of a target bin in rows, borders included
	BinHeight = 4

	// BinMargin is the gap between a bin and the screen edge
	BinMargin = 2

	// BinGap is the horizontal gap between the two bins
	BinGap = 4

	// DefaultFieldWidth is the assumed field width before the first resize event
	DefaultFieldWidth = 80
)
