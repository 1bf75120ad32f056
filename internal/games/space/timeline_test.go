package space

import (
	"testing"

	"github.com/vovakirdan/space-garbage/internal/engine"
)

func TestClockAdvancesYear(t *testing.T) {
	w := newTestWorld(t, 20, 40)
	clock := NewClockTask(15)

	for i := 1; i <= 45; i++ {
		step(t, clock, w)
		want := 1957 + i/15
		if w.Year != want {
			t.Fatalf("tick %d: year = %d, want %d", i, w.Year, want)
		}
	}
}

func TestClockFrozen(t *testing.T) {
	w := newTestWorld(t, 20, 40)
	clock := NewClockTask(0)
	for i := 0; i < 100; i++ {
		step(t, clock, w)
	}
	if w.Year != 1957 {
		t.Errorf("frozen clock moved to %d", w.Year)
	}
}

func TestSpawnerIdlesWhileOff(t *testing.T) {
	w := newTestWorld(t, 20, 40)
	spawner := NewSpawnerTask()

	for i := 0; i < 50; i++ {
		if res := step(t, spawner, w); len(res.Spawn) != 0 {
			t.Fatalf("tick %d: spawned in %d", i, w.Year)
		}
	}
	if len(w.Obstacles) != 0 {
		t.Error("no obstacles expected before spawning starts")
	}
}

func TestSpawnerCadence(t *testing.T) {
	w := newTestWorld(t, 20, 40)
	w.Year = 1961
	spawner := NewSpawnerTask()

	var spawnTicks []int
	for i := 0; i < 61; i++ {
		if res := step(t, spawner, w); len(res.Spawn) > 0 {
			if len(res.Spawn) != 1 {
				t.Fatalf("tick %d: spawned %d tasks", i, len(res.Spawn))
			}
			if _, ok := res.Spawn[0].(*debrisTask); !ok {
				t.Fatalf("spawned %T, want *debrisTask", res.Spawn[0])
			}
			spawnTicks = append(spawnTicks, i)
		}
	}

	want := []int{0, 20, 40, 60}
	if len(spawnTicks) != len(want) {
		t.Fatalf("spawned at %v, want %v", spawnTicks, want)
	}
	for i := range want {
		if spawnTicks[i] != want[i] {
			t.Errorf("spawned at %v, want %v", spawnTicks, want)
			break
		}
	}
}

// spawnCounter keeps the spawn count of the latest tick.
type spawnCounter struct {
	last int
}

func (c *spawnCounter) ObserveTick(s engine.TickStats) {
	c.last = s.Spawned
}

// TestSpawnScheduleScenario runs the clock and spawner together from 1957:
// nothing spawns until the clock reaches 1961 after 60 ticks, then debris
// appears on that tick and every 20 ticks after.
func TestSpawnScheduleScenario(t *testing.T) {
	w := newTestWorld(t, 40, 60)
	sched := engine.NewScheduler[*World]()
	var spawned spawnCounter
	sched.SetObserver(&spawned)
	if err := sched.Add(NewClockTask(15), NewSpawnerTask()); err != nil {
		t.Fatal(err)
	}

	var spawnTicks []int
	for tick := 1; tick <= 130; tick++ {
		if err := sched.Tick(w); err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
		if spawned.last > 0 {
			spawnTicks = append(spawnTicks, tick)
		}
		if tick == 59 && w.Year != 1960 {
			t.Fatalf("year at tick 59 = %d, want 1960", w.Year)
		}
	}

	want := []int{60, 80, 100, 120}
	if len(spawnTicks) != len(want) {
		t.Fatalf("spawned at ticks %v, want %v", spawnTicks, want)
	}
	for i := range want {
		if spawnTicks[i] != want[i] {
			t.Fatalf("spawned at ticks %v, want %v", spawnTicks, want)
		}
	}
}

func TestHUDLines(t *testing.T) {
	tests := []struct {
		year   int
		phrase string
		score  int
		want   []string
	}{
		{1957, "First Sputnik", 0, []string{"year: 1957 - First Sputnik", "score: 0"}},
		{1958, "", 3, []string{"year: 1958", "score: 3"}},
	}
	for _, tt := range tests {
		got := HUDLines(tt.year, tt.phrase, tt.score)
		if len(got) != 2 || got[0] != tt.want[0] || got[1] != tt.want[1] {
			t.Errorf("HUDLines(%d) = %q, want %q", tt.year, got, tt.want)
		}
	}
}

func TestHUDRedrawsWithoutSmear(t *testing.T) {
	const rows, cols = 20, 60
	w := newTestWorld(t, rows, cols)
	w.Year = 1961
	hud := NewHUDTask()

	step(t, hud, w)
	if got := w.Canvas.Row(rows - 3); got[2:2+len("year: 1961 - Gagarin flew!")] != "year: 1961 - Gagarin flew!" {
		t.Errorf("year line = %q", got)
	}

	w.Year = 1962
	step(t, hud, w)
	want := "year: 1962"
	row := w.Canvas.Row(rows - 3)
	if row[2:2+len(want)] != want {
		t.Errorf("year line = %q", row)
	}
	for i := 2 + len(want); i < cols; i++ {
		if row[i] != ' ' {
			t.Fatalf("stale phrase left at col %d: %q", i, row)
		}
	}
	if got := w.Canvas.Row(rows - 2); got[2:10] != "score: 0" {
		t.Errorf("score line = %q", got)
	}
}

func TestGameOverTask(t *testing.T) {
	const rows, cols = 24, 80
	w := newTestWorld(t, rows, cols)
	task := NewGameOverTask()

	for i := 0; i < 3; i++ {
		if res := step(t, task, w); res.Done {
			t.Fatal("game over banner should stay forever")
		}
	}
	if !w.GameOver {
		t.Error("world should be marked over")
	}

	f := w.Frames.GameOver
	row := (rows - f.Rows()) / 2
	if w.Canvas.Row(row) == w.Canvas.Row(0) {
		t.Error("banner not drawn in the middle of the canvas")
	}
}
