// Package term runs a game directly on a tcell screen, paced by engine.Loop.
// It is the lightweight alternative to the Bubble Tea front end.
package term

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/registry"
	"github.com/vovakirdan/space-garbage/internal/storage"
)

// colors maps screen colors to the terminal palette.
var colors = map[core.Color]tcell.Color{
	core.ColorRed:          tcell.ColorMaroon,
	core.ColorGreen:        tcell.ColorGreen,
	core.ColorYellow:       tcell.ColorOlive,
	core.ColorBlue:         tcell.ColorNavy,
	core.ColorMagenta:      tcell.ColorPurple,
	core.ColorCyan:         tcell.ColorTeal,
	core.ColorWhite:        tcell.ColorSilver,
	core.ColorBrightRed:    tcell.ColorRed,
	core.ColorBrightYellow: tcell.ColorYellow,
	core.ColorBrightWhite:  tcell.ColorWhite,
	core.ColorOrange:       tcell.ColorOrange,
	core.ColorGray:         tcell.ColorGray,
}

// Style converts a cell style to a tcell style.
func Style(st core.Style) tcell.Style {
	out := tcell.StyleDefault
	if c, ok := colors[st.Color]; ok {
		out = out.Foreground(c)
	}
	switch {
	case st.Has(core.AttrDim):
		out = out.Dim(true)
	case st.Has(core.AttrBold):
		out = out.Bold(true)
	}
	return out
}

// Runner owns one game on one tcell screen.
type Runner struct {
	screen tcell.Screen
	game   registry.Game
	store  *storage.Store
	logger *log.Logger
	cfg    core.RuntimeConfig

	buf        *core.Screen
	input      core.InputFrame
	state      core.GameState
	restart    bool
	quit       bool
	scoreSaved bool
}

// NewRunner prepares a game for screen. The screen must already be
// initialized; its size overrides cfg's.
func NewRunner(screen tcell.Screen, game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenW, cfg.ScreenH = screen.Size()

	r := &Runner{
		screen: screen,
		game:   game,
		store:  store,
		logger: logger,
		cfg:    cfg,
		buf:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		input:  core.NewInputFrame(),
	}
	game.Reset(cfg)
	r.state = game.State()
	return r
}

// keyAction maps a key event to a game action.
func keyAction(ev *tcell.EventKey) (action core.Action, quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionQuit, true
	case tcell.KeyUp:
		return core.ActionUp, false
	case tcell.KeyDown:
		return core.ActionDown, false
	case tcell.KeyLeft:
		return core.ActionLeft, false
	case tcell.KeyRight:
		return core.ActionRight, false
	case tcell.KeyEscape:
		return core.ActionPause, false
	case tcell.KeyRune:
	default:
		return core.ActionNone, false
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return core.ActionQuit, true
	case 'w', 'W':
		return core.ActionUp, false
	case 's', 'S':
		return core.ActionDown, false
	case 'a', 'A':
		return core.ActionLeft, false
	case 'd', 'D':
		return core.ActionRight, false
	case ' ':
		return core.ActionFire, false
	case 'p', 'P':
		return core.ActionPause, false
	case 'r', 'R':
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// HandleEvent folds one terminal event into the pending input.
func (r *Runner) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, quit := keyAction(ev)
		switch {
		case quit:
			r.quit = true
		case action == core.ActionRestart:
			r.restart = r.state.GameOver
		case action != core.ActionNone:
			r.input.Set(action)
		}
	case *tcell.EventResize:
		r.screen.Sync()
		r.cfg.ScreenW, r.cfg.ScreenH = r.screen.Size()
		r.buf.Resize(r.cfg.ScreenW, r.cfg.ScreenH)
		if !r.state.GameOver {
			r.game.Reset(r.cfg)
		}
	}
}

// Frame runs one simulation tick and draws the result.
// Returns engine.ErrStopLoop once the player quits.
func (r *Runner) Frame() error {
	if r.quit {
		return engine.ErrStopLoop
	}

	if r.restart {
		r.restart = false
		r.cfg.Seed = time.Now().UnixNano()
		r.game.Reset(r.cfg)
		r.scoreSaved = false
		r.input.Clear()
	}

	result, err := r.game.Step(r.input)
	r.input.Clear()
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	r.state = result.State

	if r.state.GameOver && !r.scoreSaved {
		r.scoreSaved = true
		if r.store != nil {
			if _, err := r.store.SaveScore(r.game.ID(), r.state.Score, r.state.Year); err != nil {
				r.logger.Warn("could not save score", "err", err)
			}
		}
	}

	r.draw()
	return nil
}

// draw blits the game's screen buffer to the terminal.
func (r *Runner) draw() {
	r.buf.Clear()
	r.game.Render(r.buf)

	for y := 0; y < r.buf.Height(); y++ {
		for x := 0; x < r.buf.Width(); x++ {
			c := r.buf.GetCell(x, y)
			r.screen.SetContent(x, y, c.Rune, nil, Style(c.Style))
		}
	}
	r.screen.Show()
}

// State returns the last observed game state.
func (r *Runner) State() core.GameState {
	return r.state
}

// Run plays game on the real terminal until the player quits, ctx ends or
// the simulation fails.
func Run(ctx context.Context, game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	runner := NewRunner(screen, game, store, cfg, logger)

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	loop := engine.NewLoop(time.Second / time.Duration(tickRate))

	err = loop.Run(ctx, func() error {
		if !drain(events, runner) {
			return engine.ErrStopLoop
		}
		return runner.Frame()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollEvents forwards terminal events until the screen is finalized or done
// is closed. It never blocks on a full channel once done is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// drain hands every pending event to r without blocking. It reports false
// once the event source is gone.
func drain(events <-chan tcell.Event, r *Runner) bool {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			r.HandleEvent(ev)
		default:
			return true
		}
	}
}
