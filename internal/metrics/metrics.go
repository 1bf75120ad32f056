// Package metrics exports scheduler activity as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vovakirdan/space-garbage/internal/engine"
)

// Recorder is an engine.Observer backed by its own Prometheus registry.
// Label values are bounded: only game IDs appear as labels.
type Recorder struct {
	registry *prometheus.Registry
	game     string

	tickDuration prometheus.Observer
	ticks        prometheus.Counter
	spawned      prometheus.Counter
	finished     prometheus.Counter
	live         prometheus.Gauge
}

var _ engine.Observer = (*Recorder)(nil)

// NewRecorder creates a recorder for one game mode.
func NewRecorder(game string) *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	labels := prometheus.Labels{"game": game}

	return &Recorder{
		registry: reg,
		game:     game,
		tickDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "spacegarbage_tick_duration_seconds",
			Help:        "Time spent stepping all tasks in one tick",
			Buckets:     []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
			ConstLabels: labels,
		}),
		ticks: factory.NewCounter(prometheus.CounterOpts{
			Name:        "spacegarbage_ticks_total",
			Help:        "Scheduler ticks run",
			ConstLabels: labels,
		}),
		spawned: factory.NewCounter(prometheus.CounterOpts{
			Name:        "spacegarbage_tasks_spawned_total",
			Help:        "Tasks spawned by other tasks",
			ConstLabels: labels,
		}),
		finished: factory.NewCounter(prometheus.CounterOpts{
			Name:        "spacegarbage_tasks_finished_total",
			Help:        "Tasks that ran to completion",
			ConstLabels: labels,
		}),
		live: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "spacegarbage_tasks_live",
			Help:        "Tasks live after the last tick",
			ConstLabels: labels,
		}),
	}
}

// ObserveTick records one scheduler tick.
func (r *Recorder) ObserveTick(s engine.TickStats) {
	r.ticks.Inc()
	r.tickDuration.Observe(s.Duration.Seconds())
	r.spawned.Add(float64(s.Spawned))
	r.finished.Add(float64(s.Finished))
	r.live.Set(float64(s.Live))
}

// Registry returns the registry holding the recorder's metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Game returns the game mode the recorder was created for.
func (r *Recorder) Game() string {
	return r.game
}
