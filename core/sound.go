package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundSuccess  SoundType = iota // Bubble dropped into the matching bin
	SoundFailure                   // Wrong bin or uncaught bubble
	SoundGameOver                  // Session clock reached zero
	SoundTypeCount
)
