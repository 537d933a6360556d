package game

import (
	"snake-duel/game/entity"
	"snake-duel/game/manager"
	"snake-duel/game/types"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// ErrPlayers is returned for a player count other than 1 or 2.
var ErrPlayers = errors.New("player count must be 1 or 2")

// Config holds the knobs that are fixed for the lifetime of a Game.
type Config struct {
	// UpdateFrequency is the number of Tick calls per simulation step
	UpdateFrequency int
	// FoodAttempts bounds random food sampling before scanning
	FoodAttempts int
	// OnePlayerBoard and TwoPlayerBoard must share dimensions
	OnePlayerBoard string
	TwoPlayerBoard string
}

func DefaultConfig() Config {
	return Config{
		UpdateFrequency: manager.DefaultUpdateFrequency,
		FoodAttempts:    manager.DefaultFoodAttempts,
		OnePlayerBoard:  OnePlayerBoard,
		TwoPlayerBoard:  TwoPlayerBoard,
	}
}

// Game is the authoritative board for one or two players. It is driven by
// two entry points, Tick and Key, and is not safe for concurrent use; a
// multi-threaded host must serialise calls.
type Game struct {
	Grid *types.Grid

	boards [types.MaxPlayers + 1]*Board

	collisionMgr *manager.CollisionManager
	foodManager  *manager.FoodManager
	inputManager *manager.InputManager
	popManager   *manager.PopulationManager
	stateManager *manager.StateManager
	scheduler    *manager.TickScheduler

	ticks uint64
	steps uint64
}

// New parses both layouts, allocates every buffer the game will use and
// shows the two-player layout in Start phase.
func New(cfg Config) (*Game, error) {
	one, err := ParseBoard(cfg.OnePlayerBoard, 1)
	if err != nil {
		return nil, errors.Wrap(err, "one-player board")
	}
	two, err := ParseBoard(cfg.TwoPlayerBoard, 2)
	if err != nil {
		return nil, errors.Wrap(err, "two-player board")
	}
	if one.Width != two.Width || one.Height != two.Height {
		return nil, errors.Wrapf(ErrBoardSize, "one-player board is %dx%d, two-player board is %dx%d",
			one.Width, one.Height, two.Width, two.Height)
	}

	grid := types.NewGrid(one.Width, one.Height)
	g := &Game{
		Grid:         grid,
		collisionMgr: manager.NewCollisionManager(grid),
		foodManager:  manager.NewFoodManager(grid, cfg.FoodAttempts),
		inputManager: manager.NewInputManager(),
		popManager:   manager.NewPopulationManager(grid),
		stateManager: manager.NewStateManager(),
		scheduler:    manager.NewTickScheduler(cfg.UpdateFrequency),
	}
	g.boards[1] = one
	g.boards[2] = two

	g.layout(2)
	g.stateManager.Prepare(2)
	glog.V(1).Infof("board %dx%d ready, update every %d ticks", grid.Width, grid.Height, g.scheduler.Divisor())
	return g, nil
}

// Start resets the board for players and enters Normal phase.
func (g *Game) Start(players int) error {
	if players < 1 || players > types.MaxPlayers {
		return errors.Wrapf(ErrPlayers, "got %d", players)
	}
	g.reset(players)
	return nil
}

func (g *Game) reset(players int) {
	g.layout(players)
	g.steps = 0
	g.stateManager.Begin(players)
}

func (g *Game) layout(players int) {
	b := g.boards[players]
	g.Grid.CopyFrom(b.Cells)
	g.popManager.InitializePopulation(b.Spawns)
	g.inputManager.Clear()
}

// Tick is called once per host timer interrupt. It reports whether a
// simulation step ran.
func (g *Game) Tick() bool {
	g.ticks++
	if !g.scheduler.Due() {
		return false
	}
	g.Update()
	return true
}

// Key handles one decoded key event. During play it buffers steering
// input; otherwise '1' and '2' start a new round. Anything else is ignored.
func (g *Game) Key(ev types.KeyEvent) {
	if !g.stateManager.Phase().AcceptsMode() {
		g.inputManager.Buffer(ev)
		return
	}
	if players, ok := manager.ModeFor(ev); ok {
		g.reset(players)
	}
}

// Update runs one simulation step. Players resolve in order against the
// shared grid, so player 2 sees the cell player 1 just left as body.
func (g *Game) Update() {
	defer g.inputManager.Clear()

	if g.stateManager.Phase() != types.PhaseNormal {
		return
	}
	g.steps++

	for player := 0; player < g.popManager.Players(); player++ {
		g.resolveMove(player)
	}

	if g.stateManager.Phase().Terminal() {
		g.stateManager.Record(g.popManager.Scores(), g.steps)
	}
}

func (g *Game) resolveMove(player int) {
	snake := g.popManager.Snake(player)
	if dir, ok := g.inputManager.Pending(player); ok {
		snake.Steer(dir)
	}

	dest := snake.Head.Neighbor(snake.Direction)
	outcome := g.collisionMgr.Classify(dest, g.popManager.Heads(), player)
	switch outcome {
	case manager.Blocked:
		return
	case manager.Crash:
		g.stateManager.Eliminate(player)
		return
	}

	if g.stateManager.Phase() != types.PhaseNormal {
		return
	}
	g.moveTo(player, snake, dest, outcome == manager.Eat)
}

func (g *Game) moveTo(player int, snake *entity.Snake, dest types.Position, eat bool) {
	prev := snake.Head
	g.Grid.Set(prev, types.Body(player))
	snake.Head = dest

	if eat {
		g.Grid.Set(dest, types.Empty)
		snake.Advance(prev, true)
		if pos, ok := g.foodManager.Place(g.ticks, g.popManager.Heads()); ok {
			glog.V(2).Infof("player %d ate at %v, food now at %v", player+1, dest, pos)
		}
		return
	}

	if vacated, ok := snake.Advance(prev, false); ok {
		g.Grid.Set(vacated, types.Empty)
	}
}

func (g *Game) Phase() types.Phase {
	return g.stateManager.Phase()
}

// Players returns the number of snakes on the current layout.
func (g *Game) Players() int {
	return g.popManager.Players()
}

func (g *Game) Snake(player int) *entity.Snake {
	return g.popManager.Snake(player)
}

// Score returns player's body length.
func (g *Game) Score(player int) int {
	return g.popManager.Snake(player).Len()
}

// Ticks returns the number of Tick calls so far.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Steps returns the simulation steps taken in the current round.
func (g *Game) Steps() uint64 {
	return g.steps
}

// Countdown returns the ticks left before the next step.
func (g *Game) Countdown() int {
	return g.scheduler.Countdown()
}

// Stats exposes the session state and history.
func (g *Game) Stats() *manager.StateManager {
	return g.stateManager
}
