package manager

import (
	"snake-duel/game/types"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
)

// DefaultFoodAttempts bounds random sampling before falling back to a scan.
const DefaultFoodAttempts = 4096

// FoodManager drops a single food cell onto an empty interior square.
//
// The random source is reseeded from the tick counter on every placement,
// so a given tick history always yields the same food. It is a
// pseudo-random source and not suitable for anything but gameplay.
type FoodManager struct {
	grid        *types.Grid
	rng         *rand.Rand
	maxAttempts int
}

func NewFoodManager(grid *types.Grid, maxAttempts int) *FoodManager {
	if maxAttempts <= 0 {
		maxAttempts = DefaultFoodAttempts
	}
	return &FoodManager{
		grid:        grid,
		rng:         rand.New(rand.NewSource(0)),
		maxAttempts: maxAttempts,
	}
}

// Place marks one free interior cell as Food and returns it. A cell is free
// when it is Empty and no head rests on it. Place reports false only when
// the interior has no free cell left.
func (fm *FoodManager) Place(tick uint64, heads []types.Position) (types.Position, bool) {
	fm.rng.Seed(tick)

	rows := fm.grid.Height - 2
	cols := fm.grid.Width - 2
	if rows < 1 || cols < 1 {
		return types.Position{}, false
	}

	var pos types.Position
	for attempt := 0; attempt < fm.maxAttempts; attempt++ {
		pos = types.Position{
			Row: int16(fm.rng.Intn(rows) + 1),
			Col: int16(fm.rng.Intn(cols) + 1),
		}
		if fm.isFree(pos, heads) {
			fm.grid.Set(pos, types.Food)
			return pos, true
		}
	}

	// Nearly full board: walk the interior from the last sample.
	start := int(pos.Row-1)*cols + int(pos.Col-1)
	for i := 0; i < rows*cols; i++ {
		k := (start + i) % (rows * cols)
		p := types.Position{Row: int16(k/cols + 1), Col: int16(k%cols + 1)}
		if fm.isFree(p, heads) {
			glog.V(2).Infof("food placed by scan at %v after %d samples", p, fm.maxAttempts)
			fm.grid.Set(p, types.Food)
			return p, true
		}
	}

	glog.Warningf("no free cell for food on %dx%d board", fm.grid.Width, fm.grid.Height)
	return types.Position{}, false
}

func (fm *FoodManager) isFree(pos types.Position, heads []types.Position) bool {
	if fm.grid.At(pos) != types.Empty {
		return false
	}
	for _, head := range heads {
		if head == pos {
			return false
		}
	}
	return true
}
