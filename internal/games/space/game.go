// Package space implements Space Garbage: steer a rocket through falling
// orbital debris, survive the decades, and shoot the garbage down once the
// plasma gun is invented.
//
// Every moving thing is a Task stepped once per tick by a cooperative
// engine.Scheduler. Tasks share a single World and draw on a persistent
// canvas, erasing their previous frame before drawing the next one.
package space

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/frames"
	"github.com/vovakirdan/space-garbage/internal/registry"
)

// Registered game IDs.
const (
	ModeSpace     = "space"
	ModeStarfield = "starfield"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	frameSet         *frames.Set
	observer         engine.Observer
	sounder          core.Sounder = core.SilentSounder{}
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Empty or unknown names use the config as is.
func SetDifficultyPreset(preset string) {
	if preset == "" {
		difficultyPreset = ""
		return
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetFramesDir loads frames from dir for every game created afterwards.
// Kinds missing from dir fall back to the built-in frames. An empty dir
// resets to the built-in set.
func SetFramesDir(dir string) error {
	if dir == "" {
		frameSet = nil
		return nil
	}
	set, err := frames.LoadDir(dir)
	if err != nil {
		return err
	}
	set = set.WithDefaults()
	frameSet = &set
	return nil
}

// SetObserver attaches a tick observer to every scheduler created afterwards.
func SetObserver(o engine.Observer) {
	observer = o
}

// SetSound sets the sounder used for shots and explosions.
func SetSound(s core.Sounder) {
	if s == nil {
		s = core.SilentSounder{}
	}
	sounder = s
}

func init() {
	registry.Register(ModeSpace, func() registry.Game { return New() })
	registry.Register(ModeStarfield, func() registry.Game { return NewStarfield() })
}

// Game runs the simulation for one player.
type Game struct {
	id    string
	title string
	full  bool // Debris, year clock and HUD are enabled

	runtime core.RuntimeConfig
	cfg     config.SpaceConfig
	world   *World
	sched   *engine.Scheduler[*World]
	paused  bool
	err     error
}

// New creates the full game.
func New() *Game {
	return &Game{id: ModeSpace, title: "Space Garbage", full: true}
}

// NewStarfield creates the calm mode: twinkling stars and a free-flying
// rocket with the gun always loaded.
func NewStarfield() *Game {
	return &Game{id: ModeStarfield, title: "Starfield", full: false}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.err = nil

	cfg, err := config.LoadSpace(configPath)
	if err != nil {
		g.err = err
		cfg = config.DefaultSpaceConfig()
	}
	if difficultyPreset != "" {
		config.ApplySpacePreset(&cfg, difficultyPreset)
	}
	if !g.full {
		cfg.Timeline.WeaponYear = cfg.Timeline.StartYear
	}
	g.cfg = cfg

	set := frames.Default()
	if frameSet != nil {
		set = *frameSet
	}

	canvas := core.NewScreen(runtime.ScreenW, runtime.ScreenH)
	rng := rand.New(rand.NewSource(runtime.Seed))
	g.world = NewWorld(canvas, set, cfg, rng)
	g.world.Sound = sounder

	g.sched = engine.NewScheduler[*World]()
	if observer != nil {
		g.sched.SetObserver(observer)
	}
	if err := g.sched.Add(g.initialTasks()...); err != nil && g.err == nil {
		g.err = fmt.Errorf("space: %w", err)
	}
}

// initialTasks builds the task list for a fresh world. The clock runs
// before the spawner so a new year takes effect on the tick it begins.
func (g *Game) initialTasks() []Task {
	w := g.world
	var tasks []Task
	if g.full {
		tasks = append(tasks, NewClockTask(g.cfg.Timeline.TicksPerYear), NewSpawnerTask())
	}
	tasks = append(tasks, NewStarTasks(w)...)
	tasks = append(tasks, NewFireTask(w, float64(w.Rows()/2), float64(w.Cols()/2)))
	tasks = append(tasks, NewShipTask(w))
	if g.full {
		tasks = append(tasks, NewHUDTask())
	}
	return tasks
}

// Step advances the game by one tick. A task error is fatal and is
// returned on every later call.
func (g *Game) Step(in core.InputFrame) (core.StepResult, error) {
	if g.err != nil {
		return core.StepResult{State: g.State()}, g.err
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.world.GameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}, nil
	}

	g.world.Input = in
	if err := g.sched.Tick(g.world); err != nil {
		g.err = fmt.Errorf("space: %w", err)
		return core.StepResult{State: g.State()}, g.err
	}
	return core.StepResult{State: g.State()}, nil
}

// Render copies the canvas to dst and frames it with a border.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		return
	}
	dst.CopyFrom(g.world.Canvas)
	dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()))

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score(),
		Year:     g.world.Year,
		GameOver: g.world.GameOver,
		Paused:   g.paused,
	}
}

// World exposes the simulation state.
func (g *Game) World() *World {
	return g.world
}

// Tasks returns the number of live tasks.
func (g *Game) Tasks() int {
	if g.sched == nil {
		return 0
	}
	return g.sched.Len()
}
