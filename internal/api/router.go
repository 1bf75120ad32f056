// Package api serves the stats endpoint: Prometheus metrics, a health check
// and the local scoreboard as JSON.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/space-garbage/internal/registry"
	"github.com/vovakirdan/space-garbage/internal/storage"
)

const (
	defaultScoreLimit = 10
	maxScoreLimit     = 100
)

// ScoreSource is the part of the score store the router reads.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

// RouterConfig contains the dependencies of the router.
type RouterConfig struct {
	// Gatherer supplies /metrics. Defaults to the global registry.
	Gatherer prometheus.Gatherer

	// Scores backs /scores. If nil the endpoint answers 503.
	Scores ScoreSource

	// DisableLogging drops the request logger middleware.
	DisableLogging bool
}

// ScoreJSON is one scoreboard row on the wire.
type ScoreJSON struct {
	Rank      int       `json:"rank"`
	Score     int       `json:"score"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRouter builds the HTTP handler. It starts no goroutines and opens no
// listeners, so tests can wrap it in httptest.NewServer.
func NewRouter(cfg RouterConfig) *chi.Mux {
	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/games", handleGames)
	r.Get("/scores/{game}", scoresHandler(cfg.Scores))

	return r
}

func handleGames(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, registry.List())
}

func scoresHandler(src ScoreSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if src == nil {
			writeError(w, "scores unavailable", http.StatusServiceUnavailable)
			return
		}

		game := chi.URLParam(r, "game")
		if !registry.Exists(game) {
			writeError(w, "unknown game", http.StatusNotFound)
			return
		}

		limit := defaultScoreLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				writeError(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = min(n, maxScoreLimit)
		}

		entries, err := src.TopScores(game, limit)
		if err != nil {
			writeError(w, "cannot read scores", http.StatusInternalServerError)
			return
		}

		rows := make([]ScoreJSON, len(entries))
		for i, e := range entries {
			rows[i] = ScoreJSON{Rank: i + 1, Score: e.Score, Year: e.Year, CreatedAt: e.CreatedAt}
		}
		writeJSON(w, rows)
	}
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
