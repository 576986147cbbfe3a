package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Ramprajapat28/DhanMunch/audio"
	"github.com/Ramprajapat28/DhanMunch/config"
	"github.com/Ramprajapat28/DhanMunch/constants"
	"github.com/Ramprajapat28/DhanMunch/core"
	"github.com/Ramprajapat28/DhanMunch/engine"
	"github.com/Ramprajapat28/DhanMunch/render"
)

// app wires the terminal, the session and the renderer into one
// single-threaded event loop. Input events and frame ticks are serialized
// by the select in loop, so the session only ever sees one caller.
type app struct {
	screen   tcell.Screen
	session  *engine.Session
	renderer *render.Renderer
	sounds   *audio.Engine

	layout render.Layout

	dragging bool
	dragID   uint64
}

// run sets up the terminal and plays until the user quits
func run(tuning *config.Tuning, muted bool, seed int64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic recovery: restore the terminal before printing the stack,
	// otherwise the trace lands on a raw-mode screen
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\ndhanmunch crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.Clear()

	sounds := audio.NewEngine(muted)
	defer sounds.Close()

	session := engine.NewSession(tuning, engine.NewTimeProvider(), engine.NewSource(seed), sounds)
	defer session.Teardown()

	a := &app{
		screen:   screen,
		session:  session,
		renderer: render.New(screen),
		sounds:   sounds,
	}
	a.relayout()

	return a.loop()
}

// loop serializes terminal events and frame ticks
func (a *app) loop() error {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(constants.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.session.Update()
			a.draw()
		}
	}
}

// handleEvent processes one terminal event; returning false quits
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			a.startSession()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				a.startSession()
			case 'm', 'M':
				a.sounds.ToggleMute()
			}
		}

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.relayout()
		a.screen.Sync()
	}

	return true
}

// startSession starts or restarts a game; a running session is unaffected
func (a *app) startSession() {
	if a.session.State() != core.StatePlaying {
		a.dragging = false
		a.session.Start()
	}
}

// handleMouse implements the grab, drag and release cycle
func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()

	if ev.Buttons()&tcell.Button1 != 0 {
		if a.dragging {
			a.session.MoveGrabbed(a.dragID, x, y)
		} else {
			a.pickBubble(x, y)
		}
		return
	}

	if a.dragging {
		a.dragging = false
		a.session.ResolveDrop(a.dragID, x, y, a.layout.IncomeBin, a.layout.ExpenseBin)
	}
}

// pickBubble grabs the topmost bubble under the cursor, if any
// The hit zone spans the glyph and its label so small targets stay draggable
func (a *app) pickBubble(x, y int) {
	bubbles := a.session.Snapshot().Bubbles
	for i := len(bubbles) - 1; i >= 0; i-- {
		b := bubbles[i]
		if b.Grabbed {
			continue
		}
		bx, by := render.BubblePosition(a.layout.Field, b)
		if y == by && x >= bx-1 && x <= bx+2+len(b.Label) {
			if a.session.Grab(b.ID, x, y) {
				a.dragging = true
				a.dragID = b.ID
			}
			return
		}
	}
}

// relayout recomputes screen regions after a resize
func (a *app) relayout() {
	w, h := a.screen.Size()
	a.layout = render.NewLayout(w, h)
	a.session.SetFieldWidth(a.layout.Field.Width)
}

// draw renders the current frame
func (a *app) draw() {
	a.renderer.Draw(a.session.Snapshot(), a.layout, a.sounds.IsMuted())
}
