package term

import (
	"snake-duel/game"

	"github.com/gdamore/tcell/v2"
)

const backgroundCell = tcell.ColorGreen

func cellColor(c game.ColorClass) tcell.Color {
	switch c {
	case game.ClassWall:
		return tcell.ColorOlive
	case game.ClassFood:
		return tcell.ColorRed
	case game.ClassPlayer1:
		return tcell.ColorBlue
	case game.ClassPlayer2:
		return tcell.ColorFuchsia
	case game.ClassTitle:
		return tcell.ColorWhite
	case game.ClassSubtitle:
		return tcell.ColorYellow
	default:
		return tcell.ColorBlack
	}
}

func cellStyle(c game.ColorClass) tcell.Style {
	return tcell.StyleDefault.Foreground(cellColor(c)).Background(backgroundCell)
}
