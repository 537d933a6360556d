package types

import "github.com/pkg/errors"

// Board dimensions of the default layouts
const (
	BoardWidth  = 80
	BoardHeight = 23
	MaxPlayers  = 2
)

// ErrOutOfBounds is returned when a position outside the grid is dereferenced.
var ErrOutOfBounds = errors.New("position out of bounds")

// Grid is a fixed Width x Height matrix of cells, row-major.
type Grid struct {
	Width  int
	Height int
	cells  []Cell
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

// Size returns the number of cells the grid can hold.
func (g *Grid) Size() int {
	return g.Width * g.Height
}

func (g *Grid) IsLegal(p Position) bool {
	return p.Legal(g.Width, g.Height)
}

// At returns the cell at p. p must be legal.
func (g *Grid) At(p Position) Cell {
	return g.cells[int(p.Row)*g.Width+int(p.Col)]
}

// Set overwrites the cell at p. p must be legal.
func (g *Grid) Set(p Position, c Cell) {
	g.cells[int(p.Row)*g.Width+int(p.Col)] = c
}

// CellAt is the checked form of At.
func (g *Grid) CellAt(p Position) (Cell, error) {
	if !g.IsLegal(p) {
		return Empty, errors.Wrapf(ErrOutOfBounds, "%v on %dx%d grid", p, g.Width, g.Height)
	}
	return g.At(p), nil
}

// SetCell is the checked form of Set.
func (g *Grid) SetCell(p Position, c Cell) error {
	if !g.IsLegal(p) {
		return errors.Wrapf(ErrOutOfBounds, "%v on %dx%d grid", p, g.Width, g.Height)
	}
	g.Set(p, c)
	return nil
}

// CopyFrom overwrites every cell from a row-major slice of the same size.
func (g *Grid) CopyFrom(cells []Cell) {
	copy(g.cells, cells)
}

func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Each visits every position in row-major order.
func (g *Grid) Each(fn func(p Position, c Cell)) {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			p := Position{Row: int16(row), Col: int16(col)}
			fn(p, g.At(p))
		}
	}
}
