package registry

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type stubGame struct {
	id, title string
	state     core.GameState
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return g.state }

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func stub(id, title string) Factory {
	return func() Game { return &stubGame{id: id, title: title} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", stub("zz_stub_b", "Stub B"))
	Register("zz_stub_a", stub("zz_stub_a", "Stub A"))

	if !Exists("zz_stub_a") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Stub A" {
		t.Errorf("Title() = %q", g.Title())
	}

	other, _ := Create("zz_stub_a")
	g.Step(core.NewInputFrame())
	if other.State().Score != 0 {
		t.Error("each Create should return a fresh instance")
	}
}

func TestListSorted(t *testing.T) {
	Register("zz_list_2", stub("zz_list_2", "Two"))
	Register("zz_list_1", stub("zz_list_1", "One"))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("list not sorted at %d: %q >= %q", i, list[i-1].ID, list[i].ID)
		}
	}

	var found bool
	for _, info := range list {
		if info.ID == "zz_list_1" {
			found = info.Title == "One"
		}
	}
	if !found {
		t.Error("List should carry the title from the factory")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("no_such_game") {
		t.Error("unknown game reported as existing")
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"duplicate", "zz_dup"},
		{"empty", "  "},
	}
	Register("zz_dup", stub("zz_dup", "Dup"))

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) should panic", tc.id)
				}
			}()
			Register(tc.id, stub(tc.id, "x"))
		})
	}
}
