package constants

import "time"

// Session Clock
const (
	// SessionDuration is the full countdown at the start of a session
	SessionDuration = 60 * time.Second

	// ClockTickInterval is the countdown granularity
	ClockTickInterval = time.Second
)

// Bubble Spawning
const (
	// SpawnIntervalInitial is the delay before the first spawn of a session
	SpawnIntervalInitial = 2000 * time.Millisecond

	// SpawnIntervalStep is subtracted from the interval after every spawn
	SpawnIntervalStep = 100 * time.Millisecond

	// SpawnIntervalMin is the floor the interval never drops below
	SpawnIntervalMin = 600 * time.Millisecond

	// FallDuration is how long a bubble takes to cross the field uncaught
	FallDuration = 8 * time.Second
)

// Scoring Policy
const (
	// MatchReward is added to a bin's score on a correct drop
	MatchReward = 10

	// WrongBinPenalty is subtracted from the struck bin's score on a mismatch
	WrongBinPenalty = 5

	// MissPenalty is subtracted from the bubble's own category when it falls uncaught
	MissPenalty = 2
)
