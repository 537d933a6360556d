package manager

import (
	"snake-duel/game/types"
)

// Outcome is what happens when a head tries to enter a cell.
type Outcome uint8

const (
	// Clear means the move proceeds and the tail retracts
	Clear Outcome = iota
	// Eat means the move proceeds onto food and the snake grows
	Eat
	// Crash means the mover hit a wall, a body or another head
	Crash
	// Blocked means the destination is off the board; nothing happens
	Blocked
)

func (o Outcome) String() string {
	switch o {
	case Clear:
		return "clear"
	case Eat:
		return "eat"
	case Crash:
		return "crash"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

type CollisionManager struct {
	grid *types.Grid
}

func NewCollisionManager(grid *types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Classify decides the outcome of player self moving its head to dest.
// heads holds the current head of every live player, indexed by player.
func (cm *CollisionManager) Classify(dest types.Position, heads []types.Position, self int) Outcome {
	if cm.isOffBoard(dest) {
		return Blocked
	}

	cell := cm.grid.At(dest)
	if cell.Blocks() {
		return Crash
	}

	// Heads are not stored on the grid. Two heads sharing a cell would leave
	// one trail cell owned by both body buffers.
	if cm.isHeadCollision(dest, heads, self) {
		return Crash
	}

	if cell == types.Food {
		return Eat
	}
	return Clear
}

func (cm *CollisionManager) isOffBoard(pos types.Position) bool {
	return !cm.grid.IsLegal(pos)
}

func (cm *CollisionManager) isHeadCollision(pos types.Position, heads []types.Position, self int) bool {
	for i, head := range heads {
		if i == self {
			continue
		}
		if pos == head {
			return true
		}
	}
	return false
}
