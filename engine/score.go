package engine

// Outcome classifies how a bubble left the field
type Outcome int

const (
	// OutcomeMatch means the bubble was dropped into its own category's bin
	OutcomeMatch Outcome = iota

	// OutcomeWrongBin means the bubble was dropped into the other category's bin
	OutcomeWrongBin

	// OutcomeMiss means the bubble was released outside both bins or fell uncaught
	OutcomeMiss
)

// Policy holds the fixed score deltas of the scoring table
// Miss and wrong-bin stay separate penalties: one punishes misclassification,
// the other merely losing a bubble
type Policy struct {
	MatchReward     int
	WrongBinPenalty int
	MissPenalty     int
}

// Delta returns the signed score change for an outcome
func (p Policy) Delta(o Outcome) int {
	switch o {
	case OutcomeMatch:
		return p.MatchReward
	case OutcomeWrongBin:
		return -p.WrongBinPenalty
	case OutcomeMiss:
		return -p.MissPenalty
	default:
		return 0
	}
}

// applyDelta adds a delta to a category score, flooring at zero
func applyDelta(score, delta int) int {
	score += delta
	if score < 0 {
		return 0
	}
	return score
}
