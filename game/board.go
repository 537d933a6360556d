package game

import (
	"math"
	"strings"

	"snake-duel/game/manager"
	"snake-duel/game/types"

	"github.com/pkg/errors"
)

// Board template errors. All of them abort construction.
var (
	ErrUnknownGlyph = errors.New("unrecognized board character")
	ErrRaggedBoard  = errors.New("board rows differ in width")
	ErrMarkerCount  = errors.New("wrong number of snake markers")
	ErrBoardSize    = errors.New("board has invalid dimensions")
)

// Board is a parsed template: the initial cells plus where each snake starts.
type Board struct {
	Width  int
	Height int
	Cells  []types.Cell
	Spawns []manager.Spawn
}

// ParseBoard reads a template for the given number of players. A single
// leading and trailing newline are ignored so templates can be written as
// raw string literals.
func ParseBoard(template string, players int) (*Board, error) {
	template = strings.TrimPrefix(template, "\n")
	template = strings.TrimSuffix(template, "\n")
	lines := strings.Split(template, "\n")

	width := len([]rune(strings.TrimSuffix(lines[0], "\r")))
	// Positions are int16 row/column pairs
	if width < 3 || len(lines) < 3 || width > math.MaxInt16 || len(lines) > math.MaxInt16 {
		return nil, errors.Wrapf(ErrBoardSize, "%dx%d", width, len(lines))
	}

	b := &Board{
		Width:  width,
		Height: len(lines),
		Cells:  make([]types.Cell, 0, width*len(lines)),
	}
	for row, line := range lines {
		runes := []rune(strings.TrimSuffix(line, "\r"))
		if len(runes) != width {
			return nil, errors.Wrapf(ErrRaggedBoard, "row %d has %d columns, want %d", row, len(runes), width)
		}
		for col, r := range runes {
			cell, err := b.translate(row, col, r)
			if err != nil {
				return nil, err
			}
			b.Cells = append(b.Cells, cell)
		}
	}

	if len(b.Spawns) != players {
		return nil, errors.Wrapf(ErrMarkerCount, "%d-player board has %d markers", players, len(b.Spawns))
	}
	return b, nil
}

func (b *Board) translate(row, col int, r rune) (types.Cell, error) {
	switch r {
	case '#':
		return types.Wall, nil
	case ' ':
		return types.Empty, nil
	case '@':
		return types.Food, nil
	}
	if d, ok := types.DirectionFromGlyph(r); ok {
		b.Spawns = append(b.Spawns, manager.Spawn{
			Pos:       types.Position{Row: int16(row), Col: int16(col)},
			Direction: d,
		})
		return types.Empty, nil
	}
	return types.Empty, errors.Wrapf(ErrUnknownGlyph, "%q at row %d col %d", r, row, col)
}
