package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/storage"
)

// stubGame records the input it is stepped with.
type stubGame struct {
	resets int
	steps  int
	last   core.InputFrame
	state  core.GameState
	err    error
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Year: 1957}
}

func (g *stubGame) Step(in core.InputFrame) (core.StepResult, error) {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.state}, g.err
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState  { return g.state }

func newTestModel(t *testing.T, g *stubGame, store *storage.Store) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(g, store, cfg).
		WithLogger(log.New(os.Stderr)).
		WithScreenshotDir(t.TempDir())
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelForwardsInputOncePerTick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, runeKey('w'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg{})

	if !g.last.Has(core.ActionUp) || !g.last.Fire() {
		t.Errorf("stepped with %v, want up and fire", g.last.Actions)
	}

	update(t, m, TickMsg{})
	if len(g.last.Actions) != 0 {
		t.Errorf("input not cleared between ticks: %v", g.last.Actions)
	}
}

func TestModelStepErrorQuits(t *testing.T) {
	boom := errors.New("boom")
	g := &stubGame{}
	m := newTestModel(t, g, nil)
	g.err = boom

	next, cmd := m.Update(TickMsg{})
	m = next.(Model)

	if !errors.Is(m.Err(), boom) {
		t.Errorf("Err() = %v, want %v", m.Err(), boom)
	}
	if !m.IsQuitting() || cmd == nil {
		t.Error("model should quit on a simulation error")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelSavesRunOnceOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	g := &stubGame{}
	m := newTestModel(t, g, store)
	g.state = core.GameState{Score: 4, Year: 1991, GameOver: true}

	m = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	scores, err := store.AllScores("stub")
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d runs, want 1", len(scores))
	}
	if scores[0].Score != 4 || scores[0].Year != 1991 {
		t.Errorf("saved %+v", scores[0])
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if g.resets != 1 {
		t.Fatalf("restart during a live run reset the game (%d resets)", g.resets)
	}

	g.state.GameOver = true
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('r'))
	update(t, m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
}

func TestModelBackOnlyInSession(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)
	g.state.GameOver = true
	m = update(t, m, TickMsg{})

	if update(t, m, runeKey('b')).BackToMenu() {
		t.Error("back should be ignored outside a session")
	}

	m.inSession = true
	if !update(t, m, runeKey('b')).BackToMenu() {
		t.Error("back should return to the menu after game over")
	}
}

func TestModelScreenshot(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.shotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("screenshot wrote %d files, want 2", len(entries))
	}
}
