package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Ramprajapat28/DhanMunch/core"
	"github.com/Ramprajapat28/DhanMunch/engine"
)

// Renderer draws one frame of the game from a session snapshot
type Renderer struct {
	screen tcell.Screen
}

// New creates a renderer drawing to the given screen
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

var (
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleIncome  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleExpense = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleGrabbed = tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// categoryStyle colors a bubble or bin by its category
func categoryStyle(c core.Category) tcell.Style {
	if c == core.CategoryExpense {
		return styleExpense
	}
	return styleIncome
}

// Draw renders a full frame and flushes it to the terminal
func (r *Renderer) Draw(snap engine.Snapshot, layout Layout, muted bool) {
	r.screen.Clear()

	r.drawHUD(snap, layout, muted)
	r.drawBin(layout.IncomeBin, "INCOME", snap.IncomeScore, styleIncome)
	r.drawBin(layout.ExpenseBin, "EXPENSE", snap.ExpenseScore, styleExpense)

	for _, b := range snap.Bubbles {
		r.drawBubble(layout.Field, b)
	}

	switch snap.State {
	case core.StateIdle:
		r.drawCentered(layout, -1, "D H A N M U N C H", styleOverlay)
		r.drawCentered(layout, 1, "Drag falling bubbles into the matching bin", styleDim)
		r.drawCentered(layout, 2, "Press Enter to start, q to quit", styleDim)
	case core.StateGameOver:
		r.drawCentered(layout, -1, "TIME'S UP", styleOverlay)
		r.drawCentered(layout, 1,
			fmt.Sprintf("Final score %d  (income %d / expense %d)",
				snap.TotalScore, snap.IncomeScore, snap.ExpenseScore), styleHUD)
		r.drawCentered(layout, 2, "Press Enter to play again", styleDim)
	}

	r.screen.Show()
}

// drawHUD renders the score and timer line
func (r *Renderer) drawHUD(snap engine.Snapshot, layout Layout, muted bool) {
	hud := fmt.Sprintf(" IN %d  OUT %d  TOTAL %d", snap.IncomeScore, snap.ExpenseScore, snap.TotalScore)
	r.drawText(0, 0, hud, styleHUD)

	clock := fmt.Sprintf("TIME %2ds ", snap.SecondsLeft)
	if muted {
		clock = "MUTED  " + clock
	}
	r.drawText(layout.Width-len(clock), 0, clock, styleHUD)
}

// drawBin renders a boxed target region with its label and running score
func (r *Renderer) drawBin(bin core.Area, label string, score int, style tcell.Style) {
	right := bin.X + bin.Width - 1
	bottom := bin.Y + bin.Height - 1

	for x := bin.X + 1; x < right; x++ {
		r.screen.SetContent(x, bin.Y, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := bin.Y + 1; y < bottom; y++ {
		r.screen.SetContent(bin.X, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(bin.X, bin.Y, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, bin.Y, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(bin.X, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)

	title := fmt.Sprintf(" %s %d ", label, score)
	tx := bin.X + (bin.Width-len(title))/2
	if tx < bin.X+1 {
		tx = bin.X + 1
	}
	r.drawClipped(tx, bin.Y+bin.Height/2, title, style.Bold(true), right)
}

// drawBubble renders a falling or dragged bubble as glyph plus label
func (r *Renderer) drawBubble(field core.Area, b engine.BubbleView) {
	x, y := BubblePosition(field, b)

	style := categoryStyle(b.Category)
	if b.Grabbed {
		style = styleGrabbed
	}

	r.screen.SetContent(x, y, b.Glyph, nil, style.Bold(true))
	r.drawClipped(x+2, y, b.Label, style, field.X+field.Width-1)
}

// drawCentered renders a line offset from the field's vertical center
func (r *Renderer) drawCentered(layout Layout, rowOffset int, text string, style tcell.Style) {
	x := (layout.Width - len(text)) / 2
	if x < 0 {
		x = 0
	}
	y := layout.Field.Y + layout.Field.Height/2 + rowOffset
	r.drawText(x, y, text, style)
}

// drawText renders a string starting at (x, y)
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// drawClipped renders a string but stops at maxX
func (r *Renderer) drawClipped(x, y int, text string, style tcell.Style, maxX int) {
	for _, ch := range text {
		if x > maxX {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
