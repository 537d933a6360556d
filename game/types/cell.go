package types

import "fmt"

// Cell is the tag stored in every grid square.
type Cell uint8

const (
	Empty Cell = iota
	Wall
	Food
	bodyBase
)

// Body returns the tag for a segment owned by player (0-based).
func Body(player int) Cell {
	return bodyBase + Cell(player)
}

func (c Cell) IsBody() bool {
	return c >= bodyBase
}

// Player returns the owner of a body cell, or -1.
func (c Cell) Player() int {
	if !c.IsBody() {
		return -1
	}
	return int(c - bodyBase)
}

// Blocks reports whether moving onto c ends the round for the mover.
func (c Cell) Blocks() bool {
	return c == Wall || c.IsBody()
}

func (c Cell) String() string {
	switch {
	case c == Empty:
		return "Empty"
	case c == Wall:
		return "Wall"
	case c == Food:
		return "Food"
	default:
		return fmt.Sprintf("Body%d", c.Player()+1)
	}
}
