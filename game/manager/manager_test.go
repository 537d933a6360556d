package manager

import (
	"testing"

	"snake-duel/game/types"

	"github.com/google/uuid"
)

func pos(row, col int) types.Position {
	return types.Position{Row: int16(row), Col: int16(col)}
}

// walledGrid returns a w x h grid with a wall border and an empty interior.
func walledGrid(w, h int) *types.Grid {
	g := types.NewGrid(w, h)
	g.Each(func(p types.Position, _ types.Cell) {
		if p.Row == 0 || p.Col == 0 || int(p.Row) == h-1 || int(p.Col) == w-1 {
			g.Set(p, types.Wall)
		}
	})
	return g
}

func TestClassify(t *testing.T) {
	g := walledGrid(6, 5)
	g.Set(pos(2, 3), types.Food)
	g.Set(pos(3, 3), types.Body(1))
	cm := NewCollisionManager(g)
	heads := []types.Position{pos(1, 1), pos(2, 1)}

	cases := []struct {
		dest types.Position
		want Outcome
	}{
		{pos(1, 2), Clear},
		{pos(2, 3), Eat},
		{pos(3, 3), Crash},
		{pos(0, 2), Crash},
		{pos(2, 1), Crash}, // the other head
		{pos(1, 1), Clear}, // own head is not a collision
		{pos(-1, 2), Blocked},
		{pos(2, 6), Blocked},
	}
	for _, c := range cases {
		if got := cm.Classify(c.dest, heads, 0); got != c.want {
			t.Errorf("Classify(%v) = %v, want %v", c.dest, got, c.want)
		}
	}
}

func TestFoodPlacedInInterior(t *testing.T) {
	g := walledGrid(10, 8)
	fm := NewFoodManager(g, 0)

	for tick := uint64(0); tick < 200; tick++ {
		p, ok := fm.Place(tick, nil)
		if !ok {
			t.Fatalf("tick %d: no food placed on an empty board", tick)
		}
		if p.Row < 1 || int(p.Row) > g.Height-2 || p.Col < 1 || int(p.Col) > g.Width-2 {
			t.Fatalf("tick %d: food at %v outside the interior", tick, p)
		}
		if g.At(p) != types.Food {
			t.Fatalf("tick %d: cell %v not marked as food", tick, p)
		}
		g.Set(p, types.Empty)
	}
}

func TestFoodDeterministicPerTick(t *testing.T) {
	a := NewFoodManager(walledGrid(20, 12), 0)
	b := NewFoodManager(walledGrid(20, 12), 0)

	// Different history before the placement must not matter
	a.Place(3, nil)
	pa, _ := a.Place(42, nil)
	pb, _ := b.Place(42, nil)
	if pa != pb {
		t.Errorf("same tick gave %v and %v", pa, pb)
	}
}

func TestFoodAvoidsHeadsAndOccupiedCells(t *testing.T) {
	g := walledGrid(5, 4)
	// Interior is 3x2; leave only (2,3) and a head at (1,1)
	g.Set(pos(1, 2), types.Body(0))
	g.Set(pos(1, 3), types.Body(0))
	g.Set(pos(2, 1), types.Body(1))
	g.Set(pos(2, 2), types.Body(1))
	fm := NewFoodManager(g, 4)

	for tick := uint64(0); tick < 20; tick++ {
		p, ok := fm.Place(tick, []types.Position{pos(1, 1)})
		if !ok || p != pos(2, 3) {
			t.Fatalf("tick %d: got %v ok=%v, want (2,3)", tick, p, ok)
		}
		g.Set(p, types.Empty)
	}
}

func TestFoodFullBoard(t *testing.T) {
	g := walledGrid(4, 4)
	g.Set(pos(1, 1), types.Body(0))
	g.Set(pos(1, 2), types.Body(0))
	g.Set(pos(2, 1), types.Body(0))
	fm := NewFoodManager(g, 8)

	if p, ok := fm.Place(7, []types.Position{pos(2, 2)}); ok {
		t.Errorf("expected no room for food, got %v", p)
	}
	if g.Count(types.Food) != 0 {
		t.Error("full board must not gain food")
	}
}

func TestSchedulerDivisor(t *testing.T) {
	ts := NewTickScheduler(3)
	var steps []bool
	for i := 0; i < 7; i++ {
		steps = append(steps, ts.Due())
	}
	want := []bool{false, false, true, false, false, true, false}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("tick %d: due=%v, want %v (all %v)", i+1, steps[i], want[i], steps)
		}
	}
	if ts.Countdown() != 2 {
		t.Errorf("countdown = %d, want 2", ts.Countdown())
	}
}

func TestSchedulerEveryTick(t *testing.T) {
	for _, divisor := range []int{-2, 0, 1} {
		ts := NewTickScheduler(divisor)
		if ts.Divisor() != 1 {
			t.Errorf("divisor %d normalised to %d", divisor, ts.Divisor())
		}
		for i := 0; i < 5; i++ {
			if !ts.Due() {
				t.Fatalf("divisor %d: tick %d skipped", divisor, i)
			}
		}
	}
}

func TestInputLastWriteWins(t *testing.T) {
	im := NewInputManager()
	im.Buffer(types.Unicode('w'))
	im.Buffer(types.Unicode('d'))
	im.Buffer(types.RawKey(types.KeyArrowDown))

	if d, ok := im.Pending(0); !ok || d != types.East {
		t.Errorf("player 1 pending %v ok=%v, want East", d, ok)
	}
	if d, ok := im.Pending(1); !ok || d != types.South {
		t.Errorf("player 2 pending %v ok=%v, want South", d, ok)
	}

	im.Clear()
	for player := 0; player < types.MaxPlayers; player++ {
		if _, ok := im.Pending(player); ok {
			t.Errorf("player %d still pending after Clear", player+1)
		}
	}
}

func TestInputIgnoresOtherKeys(t *testing.T) {
	im := NewInputManager()
	for _, ev := range []types.KeyEvent{types.Unicode('x'), types.Unicode('W'), types.Unicode('1'), types.RawKey(types.Key2)} {
		if im.Buffer(ev) {
			t.Errorf("%+v should not steer", ev)
		}
	}
}

func TestDirectionFor(t *testing.T) {
	p1 := map[rune]types.Direction{'w': types.North, 'a': types.West, 's': types.South, 'd': types.East}
	for r, want := range p1 {
		if got, ok := DirectionFor(0, types.Unicode(r)); !ok || got != want {
			t.Errorf("player 1 %q: got %v ok=%v", r, got, ok)
		}
		if _, ok := DirectionFor(1, types.Unicode(r)); ok {
			t.Errorf("player 2 must not steer with %q", r)
		}
	}
	p2 := map[types.KeyCode]types.Direction{
		types.KeyArrowUp:    types.North,
		types.KeyArrowDown:  types.South,
		types.KeyArrowLeft:  types.West,
		types.KeyArrowRight: types.East,
	}
	for code, want := range p2 {
		if got, ok := DirectionFor(1, types.RawKey(code)); !ok || got != want {
			t.Errorf("player 2 %v: got %v ok=%v", code, got, ok)
		}
		if _, ok := DirectionFor(0, types.RawKey(code)); ok {
			t.Errorf("player 1 must not steer with %v", code)
		}
	}
}

func TestModeFor(t *testing.T) {
	cases := []struct {
		ev   types.KeyEvent
		want int
		ok   bool
	}{
		{types.Unicode('1'), 1, true},
		{types.Unicode('2'), 2, true},
		{types.RawKey(types.Key1), 1, true},
		{types.RawKey(types.Key2), 2, true},
		{types.Unicode('3'), 0, false},
		{types.RawKey(types.KeyArrowUp), 0, false},
	}
	for _, c := range cases {
		got, ok := ModeFor(c.ev)
		if got != c.want || ok != c.ok {
			t.Errorf("ModeFor(%+v) = %d, %v; want %d, %v", c.ev, got, ok, c.want, c.ok)
		}
	}
}

func TestPopulation(t *testing.T) {
	g := walledGrid(8, 6)
	pm := NewPopulationManager(g)
	pm.InitializePopulation([]Spawn{
		{Pos: pos(1, 1), Direction: types.East},
		{Pos: pos(4, 6), Direction: types.West},
	})

	if pm.Players() != 2 {
		t.Fatalf("players = %d", pm.Players())
	}
	heads := pm.Heads()
	if len(heads) != 2 || heads[0] != pos(1, 1) || heads[1] != pos(4, 6) {
		t.Errorf("heads = %v", heads)
	}
	if pm.Snake(1).Direction != types.West {
		t.Errorf("player 2 heading %v", pm.Snake(1).Direction)
	}
	if pm.Snake(0).Capacity() != g.Size() {
		t.Errorf("capacity %d, want %d", pm.Snake(0).Capacity(), g.Size())
	}

	pm.InitializePopulation([]Spawn{{Pos: pos(2, 2), Direction: types.North}})
	if len(pm.Heads()) != 1 || len(pm.Scores()) != 1 {
		t.Error("one-player round should expose one head and one score")
	}
}

func TestLossPhase(t *testing.T) {
	cases := []struct {
		player, players int
		want            types.Phase
	}{
		{0, 1, types.PhaseOver},
		{0, 2, types.PhaseOver2},
		{1, 2, types.PhaseOver1},
	}
	for _, c := range cases {
		if got := LossPhase(c.player, c.players); got != c.want {
			t.Errorf("LossPhase(%d, %d) = %v, want %v", c.player, c.players, got, c.want)
		}
	}
}

func TestStateRoundLifecycle(t *testing.T) {
	sm := NewStateManager()
	if sm.Phase() != types.PhaseStart {
		t.Fatalf("new state in %v", sm.Phase())
	}

	id := sm.Begin(2)
	if id == uuid.Nil || sm.Phase() != types.PhaseNormal {
		t.Fatalf("Begin: id=%v phase=%v", id, sm.Phase())
	}

	// Both crash in one step: the later elimination wins
	sm.Eliminate(0)
	sm.Eliminate(1)
	if sm.Phase() != types.PhaseOver1 {
		t.Fatalf("phase %v, want Over1", sm.Phase())
	}
	if w, ok := sm.Winner(); !ok || w != 0 {
		t.Errorf("winner %d ok=%v", w, ok)
	}
	if !sm.Eliminated(1) || sm.Eliminated(0) {
		t.Error("only player 2 should be eliminated")
	}

	rec := sm.Record([]int{3, 5}, 17)
	if rec.ID != id || rec.Outcome != types.PhaseOver1 || rec.Steps != 17 {
		t.Errorf("record = %+v", rec)
	}
	if sm.GamesPlayed() != 1 || sm.HighScore() != 5 {
		t.Errorf("games=%d high=%d", sm.GamesPlayed(), sm.HighScore())
	}
	if last, ok := sm.LastRound(); !ok || last.ID != id {
		t.Errorf("last round %+v ok=%v", last, ok)
	}

	if next := sm.Begin(1); next == id {
		t.Error("each round needs its own id")
	}
}

func TestStateStats(t *testing.T) {
	sm := NewStateManager()
	if sm.AverageScore() != 0 || sm.MedianScore() != 0 {
		t.Error("empty history should report zero")
	}

	for _, score := range []int{3, 9, 1, 2, 5} {
		sm.Begin(1)
		sm.Eliminate(0)
		sm.Record([]int{score}, 1)
	}
	if avg := sm.AverageScore(); avg != 4 {
		t.Errorf("average = %v, want 4", avg)
	}
	if med := sm.MedianScore(); med != 3 {
		t.Errorf("median = %v, want 3", med)
	}
	if sm.HighScore() != 9 {
		t.Errorf("high = %d", sm.HighScore())
	}
}

func TestScoreHistoryCapped(t *testing.T) {
	sm := NewStateManager()
	for i := 0; i < MaxScoreHistory+10; i++ {
		sm.Begin(1)
		sm.Eliminate(0)
		sm.Record([]int{i}, 1)
	}
	if sm.GamesPlayed() != MaxScoreHistory+10 {
		t.Errorf("games played %d", sm.GamesPlayed())
	}
	if last, ok := sm.LastRound(); !ok || last.Scores[0] != MaxScoreHistory+9 {
		t.Errorf("last round %+v ok=%v", last, ok)
	}
	hist := sm.ScoreHistory()
	if len(hist) != MaxScoreHistory {
		t.Fatalf("history length %d", len(hist))
	}
	if hist[0] != 10 || hist[len(hist)-1] != MaxScoreHistory+9 {
		t.Errorf("history should keep the newest scores, got first=%d last=%d", hist[0], hist[len(hist)-1])
	}
}
