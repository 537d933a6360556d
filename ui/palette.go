package ui

import (
	"snake-duel/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Every glyph is drawn on the same green background.
var backgroundColor = rl.DarkGreen

// rlColor maps a colour class to a raylib foreground colour.
func rlColor(c game.ColorClass) rl.Color {
	switch c {
	case game.ClassWall:
		return rl.Brown
	case game.ClassFood:
		return rl.Red
	case game.ClassPlayer1:
		return rl.Blue
	case game.ClassPlayer2:
		return rl.Magenta
	case game.ClassTitle:
		return rl.White
	case game.ClassSubtitle:
		return rl.Yellow
	default:
		return rl.Black
	}
}
