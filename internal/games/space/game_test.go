package space

import (
	"errors"
	"testing"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/registry"
)

func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	// Keep user and working-directory configs out of the test.
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg := core.DefaultConfig()
	cfg.Seed = 42
	g.Reset(cfg)
	return g
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{ModeSpace, ModeStarfield} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestGameInitialTasks(t *testing.T) {
	g := newTestGame(t, New())
	stars := g.World().Config.Stars.Amount

	// clock, spawner, stars, opening shot, ship, hud
	if want := 2 + stars + 1 + 1 + 1; g.Tasks() != want {
		t.Errorf("Tasks() = %d, want %d", g.Tasks(), want)
	}

	sf := newTestGame(t, NewStarfield())
	if want := stars + 2; sf.Tasks() != want {
		t.Errorf("starfield Tasks() = %d, want %d", sf.Tasks(), want)
	}
}

func TestGameRunsEarlyYears(t *testing.T) {
	g := newTestGame(t, New())
	in := core.NewInputFrame()

	for i := 0; i < 200; i++ {
		res, err := g.Step(in)
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if res.State.GameOver {
			// Debris can fall onto the idle ship; that is a legal outcome.
			break
		}
	}

	st := g.State()
	if st.Year <= 1957 {
		t.Errorf("year did not advance: %d", st.Year)
	}
	if st.Score != 0 {
		t.Errorf("no shots fired before 2020, score = %d", st.Score)
	}
}

func TestGameStarfieldFiresImmediately(t *testing.T) {
	g := newTestGame(t, NewStarfield())
	before := g.Tasks()

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	if _, err := g.Step(in); err != nil {
		t.Fatal(err)
	}
	// The new shot first runs next tick but is already in the live set.
	if g.Tasks() != before+1 {
		t.Errorf("Tasks() = %d, want %d after firing", g.Tasks(), before+1)
	}
	if g.State().Year != 1957 {
		t.Errorf("starfield has no clock, year = %d", g.State().Year)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, New())
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	res, err := g.Step(pause)
	if err != nil {
		t.Fatal(err)
	}
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	for i := 0; i < 30; i++ {
		if _, err := g.Step(core.NewInputFrame()); err != nil {
			t.Fatal(err)
		}
	}
	if g.State().Year != 1957 {
		t.Error("paused game should not advance")
	}

	if res, _ := g.Step(pause); res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestGameOverOnCollision(t *testing.T) {
	g := newTestGame(t, New())
	if _, err := g.Step(core.NewInputFrame()); err != nil {
		t.Fatal(err)
	}

	w := g.World()
	nose := w.Ship.Nose()
	w.AddObstacle(nose.Row, nose.Col, core.Size{Rows: 1, Cols: 1})

	// The ship finds the collision, the banner runs on the next tick.
	for i := 0; i < 2; i++ {
		if _, err := g.Step(core.NewInputFrame()); err != nil {
			t.Fatal(err)
		}
	}
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	// Pause is ignored once the game is over.
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if res, _ := g.Step(pause); res.State.Paused {
		t.Error("game over should not pause")
	}
}

func TestGameTaskErrorIsFatal(t *testing.T) {
	g := newTestGame(t, New())
	boom := errors.New("boom")
	if err := g.sched.Add(engine.TaskFunc[*World](func(*World) (engine.Result[*World], error) {
		return engine.Result[*World]{}, boom
	})); err != nil {
		t.Fatal(err)
	}

	_, err := g.Step(core.NewInputFrame())
	if !errors.Is(err, boom) {
		t.Fatalf("Step() error = %v, want boom", err)
	}
	if _, err2 := g.Step(core.NewInputFrame()); !errors.Is(err2, boom) {
		t.Errorf("later Step() error = %v, want the same failure", err2)
	}
}

func TestGameRenderBorder(t *testing.T) {
	g := newTestGame(t, New())
	if _, err := g.Step(core.NewInputFrame()); err != nil {
		t.Fatal(err)
	}

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	corners := map[[2]int]rune{
		{0, 0}:   '┌',
		{79, 0}:  '┐',
		{0, 23}:  '└',
		{79, 23}: '┘',
	}
	for pos, want := range corners {
		if got := dst.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner %v = %q, want %q", pos, got, want)
		}
	}
	if dst.String() == core.NewScreen(80, 24).String() {
		t.Error("nothing rendered")
	}
}

func TestGameResetRestarts(t *testing.T) {
	g := newTestGame(t, New())
	for i := 0; i < 40; i++ {
		if _, err := g.Step(core.NewInputFrame()); err != nil {
			t.Fatal(err)
		}
	}
	g.Reset(core.DefaultConfig())

	st := g.State()
	if st.Year != 1957 || st.Score != 0 || st.GameOver || st.Paused {
		t.Errorf("state after reset = %+v", st)
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	defer SetDifficultyPreset("")

	SetDifficultyPreset("fixed")
	g := newTestGame(t, New())
	for i := 0; i < 60; i++ {
		if _, err := g.Step(core.NewInputFrame()); err != nil {
			t.Fatal(err)
		}
	}
	if g.State().Year != 1957 {
		t.Errorf("fixed preset should freeze the year, got %d", g.State().Year)
	}

	SetDifficultyPreset("bogus")
	if difficultyPreset != "" {
		t.Errorf("unknown preset should be ignored, got %q", difficultyPreset)
	}
}

func TestSetFramesDirError(t *testing.T) {
	defer SetFramesDir("")
	if err := SetFramesDir(t.TempDir()); err == nil {
		t.Error("empty frames dir should be an error")
	}
}
