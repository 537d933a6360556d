package types

// Phase is the discrete game state.
type Phase uint8

const (
	// PhaseStart waits for a mode selection
	PhaseStart Phase = iota
	// PhaseNormal means at least one snake is live
	PhaseNormal
	// PhaseOver ends a one-player round
	PhaseOver
	// PhaseOver1 means player 2 crashed, player 1 won
	PhaseOver1
	// PhaseOver2 means player 1 crashed, player 2 won
	PhaseOver2
)

// Terminal reports whether the round cannot continue without a reset.
func (p Phase) Terminal() bool {
	return p == PhaseOver || p == PhaseOver1 || p == PhaseOver2
}

// AcceptsMode reports whether '1'/'2' mode selection is honoured.
func (p Phase) AcceptsMode() bool {
	return p != PhaseNormal
}

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhaseNormal:
		return "Normal"
	case PhaseOver:
		return "Over"
	case PhaseOver1:
		return "Over1"
	case PhaseOver2:
		return "Over2"
	default:
		return "Unknown"
	}
}
