package ui

import (
	"fmt"

	"snake-duel/game"
	"snake-duel/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const borderPadding = 10 // Padding around game area

// Renderer draws the game as a grid of character cells in a raylib window.
type Renderer struct {
	cellSize     int32
	fontSize     int32
	screenWidth  int32
	screenHeight int32
	gameWidth    int32
	statsPanel   int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a seventh of the window
	r.statsPanel = r.screenWidth / 7
	r.gameWidth = r.screenWidth - r.statsPanel
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// One cell per board square, plus the header rows
	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2
	cellW := availableWidth / int32(g.Grid.Width)
	cellH := availableHeight / int32(g.Grid.Height+game.HeaderRows)
	r.cellSize = min(cellW, cellH)
	if r.cellSize < 1 {
		r.cellSize = 1
	}
	r.fontSize = r.cellSize

	r.offsetX = borderPadding
	r.offsetY = borderPadding

	rl.DrawRectangle(r.offsetX, r.offsetY,
		r.cellSize*int32(g.Grid.Width), r.cellSize*int32(g.Grid.Height+game.HeaderRows),
		backgroundColor)

	r.drawHeader(g.Header(), g.Grid.Width)
	r.drawBoard(g)
	r.drawStatsPanel(g)
	rl.EndDrawing()
}

func (r *Renderer) drawHeader(h game.Header, width int) {
	x := r.offsetX
	if h.Title != "" {
		rl.DrawText(h.Title, x, r.offsetY, r.fontSize, rlColor(h.TitleClass))
		x += rl.MeasureText(h.Title, r.fontSize) + r.cellSize
	}
	// Scores share the first row, split at half width like the terminal
	for i, line := range h.Scores {
		if i > 0 {
			x = r.offsetX + r.cellSize*int32(width/2)
		}
		text := line.String()
		rl.DrawText(text, x, r.offsetY, r.fontSize, rlColor(line.Class))
		x += rl.MeasureText(text, r.fontSize) + r.cellSize
	}
	if h.Subtitle != "" {
		rl.DrawText(h.Subtitle, r.offsetX, r.offsetY+r.cellSize, r.fontSize, rlColor(game.ClassSubtitle))
	}
}

func (r *Renderer) drawBoard(g *game.Game) {
	top := r.offsetY + r.cellSize*game.HeaderRows
	g.EachCell(func(p types.Position, gl game.Glyph) {
		if gl.Rune == game.GlyphBlank {
			return
		}
		x := r.offsetX + int32(p.Col)*r.cellSize
		y := top + int32(p.Row)*r.cellSize
		text := string(gl.Rune)
		// Centre the glyph in its cell
		x += (r.cellSize - rl.MeasureText(text, r.fontSize)) / 2
		rl.DrawText(text, x, y, r.fontSize, rlColor(gl.Class))
	})
}

func (r *Renderer) drawStatsPanel(g *game.Game) {
	statsX := r.gameWidth + 5
	statsY := int32(10)
	fontSize := min(r.screenHeight/45, r.statsPanel/12)
	lineHeight := fontSize + fontSize/2

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	stats := g.Stats()
	lines := []string{
		"Session:",
		fmt.Sprintf("Games: %d", stats.GamesPlayed()),
		fmt.Sprintf("High: %d", stats.HighScore()),
		fmt.Sprintf("Avg: %.2f", stats.AverageScore()),
		fmt.Sprintf("Median: %.1f", stats.MedianScore()),
	}
	if last, ok := stats.LastRound(); ok {
		lines = append(lines, "", "Last round:", last.Outcome.String(), fmt.Sprintf("Steps: %d", last.Steps))
	}
	for _, line := range lines {
		rl.DrawText(line, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}
}

// PollKeys drains raylib's key queues into decoded key events.
func PollKeys() []types.KeyEvent {
	var events []types.KeyEvent
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		events = append(events, types.Unicode(rune(ch)))
	}
	for _, k := range rlKeyCodes {
		if rl.IsKeyPressed(k.key) {
			events = append(events, types.RawKey(k.code))
		}
	}
	return events
}

var rlKeyCodes = []struct {
	key  int32
	code types.KeyCode
}{
	{rl.KeyUp, types.KeyArrowUp},
	{rl.KeyDown, types.KeyArrowDown},
	{rl.KeyLeft, types.KeyArrowLeft},
	{rl.KeyRight, types.KeyArrowRight},
}
