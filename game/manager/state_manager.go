package manager

import (
	"sort"

	"snake-duel/game/types"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// MaxScoreHistory caps the number of scores kept for the session.
const MaxScoreHistory = 50

// RoundRecord summarises one finished round.
type RoundRecord struct {
	ID      uuid.UUID
	Players int
	Outcome types.Phase
	Scores  []int
	Steps   uint64
}

// StateManager tracks the game phase and what happened in earlier rounds
// of this session. Nothing is written to disk.
type StateManager struct {
	phase   types.Phase
	players int
	roundID uuid.UUID

	highScore    int
	scoreHistory []int
	gamesPlayed  int
	lastRound    RoundRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		phase:        types.PhaseStart,
		scoreHistory: make([]int, 0, MaxScoreHistory),
	}
}

func (sm *StateManager) Phase() types.Phase {
	return sm.phase
}

func (sm *StateManager) Players() int {
	return sm.players
}

func (sm *StateManager) RoundID() uuid.UUID {
	return sm.roundID
}

// Prepare shows a layout without starting a round.
func (sm *StateManager) Prepare(players int) {
	sm.players = players
	sm.phase = types.PhaseStart
}

// Begin starts a new round in Normal phase.
func (sm *StateManager) Begin(players int) uuid.UUID {
	sm.players = players
	sm.phase = types.PhaseNormal
	sm.roundID = uuid.New()
	glog.V(1).Infof("round %s: %d-player", sm.roundID, players)
	return sm.roundID
}

// LossPhase returns the phase entered when player crashes.
func LossPhase(player, players int) types.Phase {
	if players < 2 {
		return types.PhaseOver
	}
	if player == 0 {
		return types.PhaseOver2
	}
	return types.PhaseOver1
}

// Eliminate moves to player's losing phase. Within one step a later
// elimination overwrites an earlier one.
func (sm *StateManager) Eliminate(player int) types.Phase {
	sm.phase = LossPhase(player, sm.players)
	glog.V(1).Infof("round %s: player %d crashed, phase %v", sm.roundID, player+1, sm.phase)
	return sm.phase
}

// Eliminated reports whether player is the loser in the current phase.
func (sm *StateManager) Eliminated(player int) bool {
	switch sm.phase {
	case types.PhaseOver, types.PhaseOver2:
		return player == 0
	case types.PhaseOver1:
		return player == 1
	}
	return false
}

// Winner returns the 0-based winning player of a two-player round.
func (sm *StateManager) Winner() (int, bool) {
	switch sm.phase {
	case types.PhaseOver1:
		return 0, true
	case types.PhaseOver2:
		return 1, true
	}
	return -1, false
}

// Record stores the result of the round that just ended.
func (sm *StateManager) Record(scores []int, steps uint64) RoundRecord {
	rec := RoundRecord{
		ID:      sm.roundID,
		Players: sm.players,
		Outcome: sm.phase,
		Scores:  append([]int(nil), scores...),
		Steps:   steps,
	}
	sm.gamesPlayed++
	sm.lastRound = rec

	for _, score := range scores {
		if score > sm.highScore {
			sm.highScore = score
		}
		if len(sm.scoreHistory) >= MaxScoreHistory {
			sm.scoreHistory = append(sm.scoreHistory[:0], sm.scoreHistory[1:]...)
		}
		sm.scoreHistory = append(sm.scoreHistory, score)
	}

	glog.V(1).Infof("round %s finished %v after %d steps, scores %v", rec.ID, rec.Outcome, steps, rec.Scores)
	return rec
}

func (sm *StateManager) GamesPlayed() int {
	return sm.gamesPlayed
}

func (sm *StateManager) LastRound() (RoundRecord, bool) {
	return sm.lastRound, sm.gamesPlayed > 0
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

func (sm *StateManager) ScoreHistory() []int {
	return sm.scoreHistory
}

// AverageScore is the mean of the kept score history.
func (sm *StateManager) AverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	return stat.Mean(sm.floatScores(), nil)
}

// MedianScore is the empirical median of the kept score history.
func (sm *StateManager) MedianScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	xs := sm.floatScores()
	sort.Float64s(xs)
	return stat.Quantile(0.5, stat.Empirical, xs, nil)
}

func (sm *StateManager) floatScores() []float64 {
	xs := make([]float64, len(sm.scoreHistory))
	for i, s := range sm.scoreHistory {
		xs[i] = float64(s)
	}
	return xs
}
