package manager

import (
	"snake-duel/game/types"
)

// InputManager holds one pending direction per player. A newer key for
// the same player replaces the older one.
type InputManager struct {
	pending [types.MaxPlayers]types.Direction
	set     [types.MaxPlayers]bool
}

func NewInputManager() *InputManager {
	return &InputManager{}
}

// Buffer stores ev for whichever player it steers. It reports whether ev
// was a steering key at all.
func (im *InputManager) Buffer(ev types.KeyEvent) bool {
	accepted := false
	for player := 0; player < types.MaxPlayers; player++ {
		if d, ok := DirectionFor(player, ev); ok {
			im.pending[player] = d
			im.set[player] = true
			accepted = true
		}
	}
	return accepted
}

func (im *InputManager) Pending(player int) (types.Direction, bool) {
	return im.pending[player], im.set[player]
}

func (im *InputManager) Clear() {
	for i := range im.set {
		im.set[i] = false
	}
}

// DirectionFor maps ev onto a heading for player. Player 1 steers with
// w/a/s/d, player 2 with the arrow keys.
func DirectionFor(player int, ev types.KeyEvent) (types.Direction, bool) {
	switch player {
	case 0:
		if ev.IsRaw() {
			return 0, false
		}
		switch ev.Rune {
		case 'w':
			return types.North, true
		case 'a':
			return types.West, true
		case 's':
			return types.South, true
		case 'd':
			return types.East, true
		}
	case 1:
		switch ev.Code {
		case types.KeyArrowUp:
			return types.North, true
		case types.KeyArrowDown:
			return types.South, true
		case types.KeyArrowLeft:
			return types.West, true
		case types.KeyArrowRight:
			return types.East, true
		}
	}
	return 0, false
}

// ModeFor maps the mode-selection keys to a player count.
func ModeFor(ev types.KeyEvent) (int, bool) {
	switch {
	case ev.Code == types.Key1 || (!ev.IsRaw() && ev.Rune == '1'):
		return 1, true
	case ev.Code == types.Key2 || (!ev.IsRaw() && ev.Rune == '2'):
		return 2, true
	}
	return 0, false
}
