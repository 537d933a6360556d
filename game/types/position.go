package types

import "fmt"

// Direction is one of the four compass headings
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Glyph returns the arrow used both for drawing a head and in board templates.
func (d Direction) Glyph() rune {
	switch d {
	case North:
		return '^'
	case South:
		return 'v'
	case East:
		return '>'
	default:
		return '<'
	}
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// DirectionFromGlyph is the inverse of Glyph.
func DirectionFromGlyph(r rune) (Direction, bool) {
	switch r {
	case '^':
		return North, true
	case 'v':
		return South, true
	case '>':
		return East, true
	case '<':
		return West, true
	}
	return North, false
}

// Position is a signed row/column pair. It may lie off the board.
type Position struct {
	Row int16
	Col int16
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Legal reports whether p lies on a width x height board.
func (p Position) Legal(width, height int) bool {
	return 0 <= p.Col && int(p.Col) < width && 0 <= p.Row && int(p.Row) < height
}

// Neighbor translates p by one step in d.
func (p Position) Neighbor(d Direction) Position {
	switch d {
	case North:
		return Position{Row: p.Row - 1, Col: p.Col}
	case South:
		return Position{Row: p.Row + 1, Col: p.Col}
	case East:
		return Position{Row: p.Row, Col: p.Col + 1}
	default:
		return Position{Row: p.Row, Col: p.Col - 1}
	}
}
