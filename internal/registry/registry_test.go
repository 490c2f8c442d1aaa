package registry

import (
	"testing"

	"github.com/vovakirdan/turtle-adventure/internal/core"
)

type stubGame struct{ id, title string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return g.title }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{"stub_b", "Stub B"} })
	Register("stub_a", func() Game { return stubGame{"stub_a", "Stub A"} })

	if !Exists("stub_a") {
		t.Error("Exists(stub_a) = false after Register")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub B" {
		t.Errorf("Title() = %q, expected Stub B", g.Title())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	if len(ids) < 2 || ids[0] != "stub_a" || ids[1] != "stub_b" {
		t.Errorf("List() ids = %v, expected sorted stub_a, stub_b", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{"stub_dup", "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("second Register() did not panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{"stub_dup", "Dup"} })
}
