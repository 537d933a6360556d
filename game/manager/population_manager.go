package manager

import (
	"snake-duel/game/entity"
	"snake-duel/game/types"
)

// Spawn is a starting head position and heading taken from a board layout.
type Spawn struct {
	Pos       types.Position
	Direction types.Direction
}

// PopulationManager owns every snake for the lifetime of the program.
// Rounds re-spawn the same snakes rather than allocating new ones.
type PopulationManager struct {
	snakes  [types.MaxPlayers]*entity.Snake
	players int
	heads   [types.MaxPlayers]types.Position
}

func NewPopulationManager(grid *types.Grid) *PopulationManager {
	pm := &PopulationManager{}
	for i := range pm.snakes {
		pm.snakes[i] = entity.NewSnake(grid.Size())
	}
	return pm
}

// InitializePopulation spawns one snake per entry in spawns.
func (pm *PopulationManager) InitializePopulation(spawns []Spawn) {
	pm.players = len(spawns)
	for i, sp := range spawns {
		pm.snakes[i].Spawn(sp.Pos, sp.Direction)
	}
}

// Players returns how many snakes take part in the current round.
func (pm *PopulationManager) Players() int {
	return pm.players
}

func (pm *PopulationManager) Snake(player int) *entity.Snake {
	return pm.snakes[player]
}

// Heads returns the head of every snake in the round, indexed by player.
// The slice is reused between calls.
func (pm *PopulationManager) Heads() []types.Position {
	for i := 0; i < pm.players; i++ {
		pm.heads[i] = pm.snakes[i].Head
	}
	return pm.heads[:pm.players]
}

// Scores returns each player's body length.
func (pm *PopulationManager) Scores() []int {
	scores := make([]int, pm.players)
	for i := range scores {
		scores[i] = pm.snakes[i].Len()
	}
	return scores
}
