package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vovakirdan/space-garbage/internal/registry"
	"github.com/vovakirdan/space-garbage/internal/storage"

	_ "github.com/vovakirdan/space-garbage/internal/games/space"
)

type fakeScores struct {
	entries []storage.ScoreEntry
	err     error
	limit   int
}

func (f *fakeScores) TopScores(_ string, limit int) ([]storage.ScoreEntry, error) {
	f.limit = limit
	if limit < len(f.entries) {
		return f.entries[:limit], f.err
	}
	return f.entries, f.err
}

func newTestServer(t *testing.T, cfg RouterConfig) *httptest.Server {
	t.Helper()
	cfg.DisableLogging = true
	ts := httptest.NewServer(NewRouter(cfg))
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read %s: %v", url, err)
	}
	return resp, string(body)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, RouterConfig{})
	resp, body := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK || body != "OK" {
		t.Errorf("healthz = %d %q", resp.StatusCode, body)
	}
}

func TestMetricsUsesGatherer(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_counter_total", Help: "test"})
	reg.MustRegister(c)
	c.Inc()

	ts := newTestServer(t, RouterConfig{Gatherer: reg})
	_, body := get(t, ts.URL+"/metrics")
	if !strings.Contains(body, "test_counter_total 1") {
		t.Errorf("metrics body missing counter:\n%s", body)
	}
}

func TestGames(t *testing.T) {
	ts := newTestServer(t, RouterConfig{})
	_, body := get(t, ts.URL+"/games")

	var games []registry.GameInfo
	if err := json.Unmarshal([]byte(body), &games); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(games) < 2 {
		t.Errorf("games = %v", games)
	}
}

func TestScores(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	src := &fakeScores{entries: []storage.ScoreEntry{
		{Score: 9, Year: 2003, CreatedAt: now},
		{Score: 4, Year: 1990, CreatedAt: now},
		{Score: 1, Year: 1970, CreatedAt: now},
	}}
	ts := newTestServer(t, RouterConfig{Scores: src})

	resp, body := get(t, ts.URL+"/scores/space?limit=2")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	var rows []ScoreJSON
	if err := json.Unmarshal([]byte(body), &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].Rank != 1 || rows[0].Year != 2003 || rows[1].Score != 4 {
		t.Errorf("rows = %+v", rows)
	}

	get(t, ts.URL+"/scores/space?limit=1000")
	if src.limit != maxScoreLimit {
		t.Errorf("limit not capped: %d", src.limit)
	}
}

func TestScoresErrors(t *testing.T) {
	tests := []struct {
		name   string
		cfg    RouterConfig
		path   string
		status int
	}{
		{"no store", RouterConfig{}, "/scores/space", http.StatusServiceUnavailable},
		{"unknown game", RouterConfig{Scores: &fakeScores{}}, "/scores/pong", http.StatusNotFound},
		{"bad limit", RouterConfig{Scores: &fakeScores{}}, "/scores/space?limit=x", http.StatusBadRequest},
		{"store error", RouterConfig{Scores: &fakeScores{err: errors.New("disk")}}, "/scores/space", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, tt.cfg)
			resp, _ := get(t, ts.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
		})
	}
}
