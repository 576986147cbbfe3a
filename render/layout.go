package render

import (
	"github.com/Ramprajapat28/DhanMunch/constants"
	"github.com/Ramprajapat28/DhanMunch/core"
	"github.com/Ramprajapat28/DhanMunch/engine"
)

// Layout holds the screen regions for one terminal size. The bin areas are
// the live-measured target regions handed back to drop resolution, so the
// renderer and the hit test can never disagree about where a bin is.
type Layout struct {
	Width, Height int

	Field      core.Area // Bubbles fall through this region
	IncomeBin  core.Area
	ExpenseBin core.Area
}

// Minimum usable terminal; smaller screens are laid out as if they were this size
const (
	minLayoutWidth  = 24
	minLayoutHeight = 10
)

// NewLayout computes the regions for a terminal of the given size
func NewLayout(width, height int) Layout {
	if width < minLayoutWidth {
		width = minLayoutWidth
	}
	if height < minLayoutHeight {
		height = minLayoutHeight
	}

	binWidth := (width - 2*constants.BinMargin - constants.BinGap) / 2
	binY := height - constants.BinHeight

	fieldTop := constants.HUDRow + 1
	return Layout{
		Width:  width,
		Height: height,
		Field: core.Area{
			X:      0,
			Y:      fieldTop,
			Width:  width,
			Height: binY - fieldTop,
		},
		IncomeBin: core.Area{
			X:      constants.BinMargin,
			Y:      binY,
			Width:  binWidth,
			Height: constants.BinHeight,
		},
		ExpenseBin: core.Area{
			X:      width - constants.BinMargin - binWidth,
			Y:      binY,
			Width:  binWidth,
			Height: constants.BinHeight,
		},
	}
}

// BubblePosition maps a bubble view to its screen cell. A grabbed bubble
// sits at the drag cursor; a falling one derives its row from the fall
// fraction so the descent is linear over the field height.
func BubblePosition(field core.Area, b engine.BubbleView) (int, int) {
	if b.Grabbed {
		return b.GrabX, b.GrabY
	}

	x := b.Column
	if x < field.X {
		x = field.X
	}
	if x >= field.X+field.Width {
		x = field.X + field.Width - 1
	}

	span := field.Height - 1
	if span < 0 {
		span = 0
	}
	y := field.Y + int(b.Progress*float64(span))
	return x, y
}
