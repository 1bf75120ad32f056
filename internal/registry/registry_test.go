package registry

import (
	"testing"

	"github.com/vovakirdan/space-garbage/internal/core"
)

type testGame struct{ id string }

func (g testGame) ID() string { return g.id }
func (g testGame) Title() string { return "Title " + g.id }
func (g testGame) Reset(core.RuntimeConfig) {}
func (g testGame) Step(core.InputFrame) (core.StepResult, error) { return core.StepResult{}, nil }
func (g testGame) Render(*core.Screen) {}
func (g testGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_test_b", func() Game { return testGame{id: "zz_test_b"} })
	Register("zz_test_a", func() Game { return testGame{id: "zz_test_a"} })

	if !Exists("zz_test_a") || Exists("zz_missing") {
		t.Fatal("Exists() wrong")
	}

	g, err := Create("zz_test_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_test_b" {
		t.Errorf("created %q", g.ID())
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "zz_test_a" && info.Title != "Title zz_test_a" {
			t.Errorf("title = %q", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return testGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("zz_dup", func() Game { return testGame{id: "zz_dup"} })
}
