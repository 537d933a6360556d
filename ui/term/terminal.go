package term

import (
	"context"
	"time"

	"snake-duel/game"
	"snake-duel/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Terminal draws the game on a character screen.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal initialises the real terminal. Call Close when done.
func NewTerminal() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating screen")
	}
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "initialising screen")
	}
	return NewTerminalOn(s), nil
}

// NewTerminalOn wraps an already initialised screen.
func NewTerminalOn(s tcell.Screen) *Terminal {
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	return &Terminal{screen: s}
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

// Draw renders the header and the board, then shows the frame.
func (t *Terminal) Draw(g *game.Game) {
	t.drawHeader(g.Header(), g.Grid.Width)
	g.EachCell(func(p types.Position, gl game.Glyph) {
		t.screen.SetContent(int(p.Col), int(p.Row)+game.HeaderRows, gl.Rune, nil, cellStyle(gl.Class))
	})
	t.screen.Show()
}

func (t *Terminal) drawHeader(h game.Header, width int) {
	for row := 0; row < game.HeaderRows; row++ {
		t.clearRow(row, width)
	}
	col := 0
	if h.Title != "" {
		col = t.print(col, 0, h.Title, h.TitleClass) + 1
	}
	for i, line := range h.Scores {
		if i > 0 {
			col = width / 2
		}
		col = t.print(col, 0, line.String(), line.Class) + 1
	}
	if h.Subtitle != "" {
		t.print(0, 1, h.Subtitle, game.ClassSubtitle)
	}
}

func (t *Terminal) clearRow(row, width int) {
	style := cellStyle(game.ClassBlank)
	for col := 0; col < width; col++ {
		t.screen.SetContent(col, row, ' ', nil, style)
	}
}

// print writes text at col,row and returns the column after it.
func (t *Terminal) print(col, row int, text string, class game.ColorClass) int {
	style := cellStyle(class)
	for _, r := range text {
		t.screen.SetContent(col, row, r, nil, style)
		col++
	}
	return col
}

// Run owns the screen until ctx is done or the player quits with
// Esc, Ctrl-C or 'q'. Every interval the game receives one Tick.
func (t *Terminal) Run(ctx context.Context, g *game.Game, interval time.Duration) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	t.Draw(g)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if g.Tick() {
				t.Draw(g)
			}
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
				t.Draw(g)
			case *tcell.EventKey:
				if isQuit(ev) {
					glog.V(1).Info("quit requested from terminal")
					return nil
				}
				if key, ok := KeyFromEvent(ev); ok {
					g.Key(key)
					t.Draw(g)
				}
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// KeyFromEvent decodes a tcell key into the game's key vocabulary.
func KeyFromEvent(ev *tcell.EventKey) (types.KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.RawKey(types.KeyArrowUp), true
	case tcell.KeyDown:
		return types.RawKey(types.KeyArrowDown), true
	case tcell.KeyLeft:
		return types.RawKey(types.KeyArrowLeft), true
	case tcell.KeyRight:
		return types.RawKey(types.KeyArrowRight), true
	case tcell.KeyRune:
		return types.Unicode(ev.Rune()), true
	}
	return types.KeyEvent{}, false
}
