package engine

import (
	"sync"
	"time"

	"github.com/Ramprajapat28/DhanMunch/config"
	"github.com/Ramprajapat28/DhanMunch/constants"
	"github.com/Ramprajapat28/DhanMunch/content"
	"github.com/Ramprajapat28/DhanMunch/core"
)

// SoundPlayer is the minimal audio surface the session needs
// A nil player disables cues without touching game logic
type SoundPlayer interface {
	Play(core.SoundType)
}

// Bubble is one falling instance of a catalog item
type Bubble struct {
	ID        uint64
	Item      content.Item
	Column    int
	SpawnedAt time.Time

	// Drag state; a grabbed bubble neither falls nor expires
	Grabbed      bool
	GrabX, GrabY int
}

// BubbleView is the render-facing projection of a bubble
type BubbleView struct {
	ID           uint64
	Category     core.Category
	Glyph        rune
	Label        string
	Column       int
	Progress     float64 // Fall fraction: 0 at the top edge, 1 at miss
	Grabbed      bool
	GrabX, GrabY int
}

// Snapshot is the rendering boundary: everything the presentation
// layer may read, copied out under the session lock
type Snapshot struct {
	State        core.SessionState
	IncomeScore  int
	ExpenseScore int
	TotalScore   int
	SecondsLeft  int
	Bubbles      []BubbleView
}

// Session owns the logic core: the idle/playing/gameOver state machine,
// the one-second countdown, the accelerating spawn scheduler, both
// category scores and the active bubble set.
//
// The two recurring timers of a session are deadline fields advanced by
// Update; a zero deadline is disarmed. At most one of each exists by
// construction, and entering gameOver or calling Teardown disarms both,
// so no tick can mutate state after the session ends.
type Session struct {
	mu sync.Mutex

	tuning       *config.Tuning
	timeProvider TimeProvider
	rng          Source
	sounds       SoundPlayer
	catalog      []content.Item
	policy       Policy

	fieldWidth int

	state        core.SessionState
	incomeScore  int
	expenseScore int
	secondsLeft  int

	spawnInterval  time.Duration
	nextInstanceID uint64
	bubbles        []*Bubble

	nextClockTick time.Time
	nextSpawn     time.Time
}

// NewSession creates an idle session; sounds may be nil
func NewSession(tuning *config.Tuning, tp TimeProvider, rng Source, sounds SoundPlayer) *Session {
	return &Session{
		tuning:       tuning,
		timeProvider: tp,
		rng:          rng,
		sounds:       sounds,
		catalog:      content.Catalog(),
		policy: Policy{
			MatchReward:     tuning.MatchReward,
			WrongBinPenalty: tuning.WrongBinPenalty,
			MissPenalty:     tuning.MissPenalty,
		},
		fieldWidth: constants.DefaultFieldWidth,
		state:      core.StateIdle,
	}
}

// SetFieldWidth updates the spawn column range after a terminal resize
func (s *Session) SetFieldWidth(width int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if width < 1 {
		width = 1
	}
	s.fieldWidth = width
}

// Start begins a session from idle or gameOver; ignored while playing
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == core.StatePlaying {
		return
	}

	now := s.timeProvider.Now()
	s.state = core.StatePlaying
	s.incomeScore = 0
	s.expenseScore = 0
	s.secondsLeft = s.tuning.SessionSeconds
	s.spawnInterval = s.tuning.SpawnInitial()
	s.bubbles = nil
	s.nextClockTick = now.Add(constants.ClockTickInterval)
	s.nextSpawn = now.Add(s.spawnInterval)
}

// Update advances the countdown, fires due spawns and expires uncaught
// bubbles. Call it from the frame loop; outside playing it does nothing.
func (s *Session) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != core.StatePlaying {
		return
	}
	now := s.timeProvider.Now()

	s.advanceClock(now)
	s.fireSpawns(now)
	s.expireMisses(now)
}

// advanceClock consumes due one-second ticks; at zero it disarms both
// deadlines and enters gameOver
func (s *Session) advanceClock(now time.Time) {
	for s.state == core.StatePlaying && !s.nextClockTick.IsZero() && !now.Before(s.nextClockTick) {
		s.secondsLeft--
		if s.secondsLeft <= 0 {
			s.secondsLeft = 0
			s.enterGameOver()
			return
		}
		s.nextClockTick = s.nextClockTick.Add(constants.ClockTickInterval)
	}
}

// fireSpawns consumes due spawn deadlines; the state check on every
// iteration keeps the scheduler from firing once the session has ended
func (s *Session) fireSpawns(now time.Time) {
	for s.state == core.StatePlaying && !s.nextSpawn.IsZero() && !now.Before(s.nextSpawn) {
		s.spawnBubble(s.nextSpawn)

		s.spawnInterval -= s.tuning.SpawnStep()
		if min := s.tuning.SpawnMin(); s.spawnInterval < min {
			s.spawnInterval = min
		}
		s.nextSpawn = s.nextSpawn.Add(s.spawnInterval)
	}
}

// spawnBubble appends one uniform-random catalog item at a random column
func (s *Session) spawnBubble(at time.Time) {
	item := s.catalog[s.rng.Intn(len(s.catalog))]
	s.nextInstanceID++
	s.bubbles = append(s.bubbles, &Bubble{
		ID:        s.nextInstanceID,
		Item:      item,
		Column:    s.rng.Intn(s.fieldWidth),
		SpawnedAt: at,
	})
}

// expireMisses converts bubbles whose fall completed into misses
func (s *Session) expireMisses(now time.Time) {
	fall := s.tuning.FallDuration()
	kept := s.bubbles[:0]
	for _, b := range s.bubbles {
		if !b.Grabbed && now.Sub(b.SpawnedAt) >= fall {
			s.applyOutcome(OutcomeMiss, b.Item.Category)
			continue
		}
		kept = append(kept, b)
	}
	s.bubbles = kept
}

// Grab marks the bubble as held so it stops falling; reports whether it existed
func (s *Session) Grab(id uint64, x, y int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != core.StatePlaying {
		return false
	}
	b := s.find(id)
	if b == nil {
		return false
	}
	b.Grabbed = true
	b.GrabX, b.GrabY = x, y
	return true
}

// MoveGrabbed updates the held bubble's drag position
func (s *Session) MoveGrabbed(id uint64, x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b := s.find(id); b != nil && b.Grabbed {
		b.GrabX, b.GrabY = x, y
	}
}

// ResolveDrop removes the bubble and scores the release point against the
// two bin regions. Removing an already-removed ID is a no-op, and drops
// outside playing are ignored.
func (s *Session) ResolveDrop(id uint64, x, y int, income, expense core.Area) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != core.StatePlaying {
		return
	}
	b := s.remove(id)
	if b == nil {
		return
	}

	target := ResolveTarget(x, y, income, expense)
	if target == TargetNone {
		s.applyOutcome(OutcomeMiss, b.Item.Category)
		return
	}
	if target.Category() == b.Item.Category {
		s.applyOutcome(OutcomeMatch, target.Category())
	} else {
		s.applyOutcome(OutcomeWrongBin, target.Category())
	}
}

// applyOutcome mutates the outcome's category score and fires the cue
func (s *Session) applyOutcome(o Outcome, cat core.Category) {
	delta := s.policy.Delta(o)
	switch cat {
	case core.CategoryIncome:
		s.incomeScore = applyDelta(s.incomeScore, delta)
	case core.CategoryExpense:
		s.expenseScore = applyDelta(s.expenseScore, delta)
	}

	if o == OutcomeMatch {
		s.play(core.SoundSuccess)
	} else {
		s.play(core.SoundFailure)
	}
}

// enterGameOver stops both timers, clears the field and fires the end cue
// Caller must hold the session lock
func (s *Session) enterGameOver() {
	s.state = core.StateGameOver
	s.nextClockTick = time.Time{}
	s.nextSpawn = time.Time{}
	s.bubbles = nil
	s.play(core.SoundGameOver)
}

// Teardown disarms both timers and forces idle; safe to call repeatedly
func (s *Session) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = core.StateIdle
	s.nextClockTick = time.Time{}
	s.nextSpawn = time.Time{}
	s.bubbles = nil
}

// Snapshot copies out everything the presentation layer may read
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()
	fall := s.tuning.FallDuration()

	snap := Snapshot{
		State:        s.state,
		IncomeScore:  s.incomeScore,
		ExpenseScore: s.expenseScore,
		TotalScore:   s.incomeScore + s.expenseScore,
		SecondsLeft:  s.secondsLeft,
	}
	if len(s.bubbles) > 0 {
		snap.Bubbles = make([]BubbleView, 0, len(s.bubbles))
	}
	for _, b := range s.bubbles {
		progress := float64(now.Sub(b.SpawnedAt)) / float64(fall)
		if progress < 0 {
			progress = 0
		}
		if progress > 1 {
			progress = 1
		}
		snap.Bubbles = append(snap.Bubbles, BubbleView{
			ID:       b.ID,
			Category: b.Item.Category,
			Glyph:    b.Item.Glyph,
			Label:    b.Item.Label,
			Column:   b.Column,
			Progress: progress,
			Grabbed:  b.Grabbed,
			GrabX:    b.GrabX,
			GrabY:    b.GrabY,
		})
	}
	return snap
}

// State returns the current session state
func (s *Session) State() core.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SpawnInterval returns the current spawn interval
func (s *Session) SpawnInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spawnInterval
}

func (s *Session) find(id uint64) *Bubble {
	for _, b := range s.bubbles {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (s *Session) remove(id uint64) *Bubble {
	for i, b := range s.bubbles {
		if b.ID == id {
			s.bubbles = append(s.bubbles[:i], s.bubbles[i+1:]...)
			return b
		}
	}
	return nil
}

func (s *Session) play(st core.SoundType) {
	if s.sounds != nil {
		s.sounds.Play(st)
	}
}
