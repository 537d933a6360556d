package game

import (
	"fmt"

	"snake-duel/game/types"
)

// ColorClass is the logical colour a frontend should use for a glyph.
type ColorClass uint8

const (
	ClassBlank ColorClass = iota
	ClassWall
	ClassFood
	ClassPlayer1
	ClassPlayer2
	ClassTitle
	ClassSubtitle
)

// ClassForPlayer returns the colour class of a 0-based player.
func ClassForPlayer(player int) ColorClass {
	return ClassPlayer1 + ColorClass(player)
}

// Glyphs used on the board.
const (
	GlyphBody       = 'o'
	GlyphFood       = '@'
	GlyphWall       = '#'
	GlyphBlank      = ' '
	GlyphEliminated = 'X'
)

// HeaderRows is the number of text rows a frontend reserves above the board.
const HeaderRows = 2

const (
	welcomeText = "Welcome to snake!"
	modePrompt  = "Press 1 for One-Player Mode and 2 for Two-Player Mode."
)

// Glyph is a character and its colour class.
type Glyph struct {
	Rune  rune
	Class ColorClass
}

// ScoreLine is one player's score in the header.
type ScoreLine struct {
	Label string
	Score int
	Class ColorClass
}

func (s ScoreLine) String() string {
	return fmt.Sprintf("%s %d", s.Label, s.Score)
}

// Header is the text shown above the board.
type Header struct {
	Title      string
	TitleClass ColorClass
	Subtitle   string
	Scores     []ScoreLine
}

// Header builds the phase-dependent header.
func (g *Game) Header() Header {
	phase := g.Phase()
	switch phase {
	case types.PhaseStart:
		return Header{Title: welcomeText, TitleClass: ClassTitle, Subtitle: modePrompt}
	case types.PhaseNormal:
		return Header{Scores: g.scoreLines()}
	case types.PhaseOver:
		return Header{Scores: g.scoreLines(), Subtitle: modePrompt}
	}

	winner, _ := g.stateManager.Winner()
	return Header{
		Title:      fmt.Sprintf("Player %d Wins!", winner+1),
		TitleClass: ClassForPlayer(winner),
		Subtitle:   modePrompt,
		Scores:     g.scoreLines(),
	}
}

func (g *Game) scoreLines() []ScoreLine {
	players := g.Players()
	if players == 1 {
		return []ScoreLine{{Label: "Score:", Score: g.Score(0), Class: ClassPlayer1}}
	}
	lines := make([]ScoreLine, players)
	for i := range lines {
		lines[i] = ScoreLine{
			Label: fmt.Sprintf("Player %d Size:", i+1),
			Score: g.Score(i),
			Class: ClassForPlayer(i),
		}
	}
	return lines
}

// GlyphAt returns what should be drawn at p. p must be legal.
func (g *Game) GlyphAt(p types.Position) Glyph {
	for player := 0; player < g.Players(); player++ {
		snake := g.Snake(player)
		if p != snake.Head {
			continue
		}
		r := snake.Direction.Glyph()
		if g.stateManager.Eliminated(player) {
			r = GlyphEliminated
		}
		return Glyph{Rune: r, Class: ClassForPlayer(player)}
	}

	cell := g.Grid.At(p)
	switch {
	case cell.IsBody():
		return Glyph{Rune: GlyphBody, Class: ClassForPlayer(cell.Player())}
	case cell == types.Food:
		return Glyph{Rune: GlyphFood, Class: ClassFood}
	case cell == types.Wall:
		return Glyph{Rune: GlyphWall, Class: ClassWall}
	}
	return Glyph{Rune: GlyphBlank, Class: ClassBlank}
}

// EachCell visits every board position in row-major order.
func (g *Game) EachCell(fn func(p types.Position, gl Glyph)) {
	g.Grid.Each(func(p types.Position, _ types.Cell) {
		fn(p, g.GlyphAt(p))
	})
}

// String renders the board as text, one line per row.
func (g *Game) String() string {
	buf := make([]rune, 0, (g.Grid.Width+1)*g.Grid.Height)
	g.EachCell(func(p types.Position, gl Glyph) {
		buf = append(buf, gl.Rune)
		if int(p.Col) == g.Grid.Width-1 {
			buf = append(buf, '\n')
		}
	})
	return string(buf)
}
