package registry

import (
	"testing"

	"github.com/vovakirdan/tui-parley/internal/core"
)

type stubScene struct {
	id, title string
}

func (s *stubScene) ID() string                        { return s.id }
func (s *stubScene) Title() string                     { return s.title }
func (s *stubScene) Reset(core.RuntimeConfig) error    { return nil }
func (s *stubScene) Update(core.Frame) core.StepResult { return core.StepResult{} }
func (s *stubScene) Render(*core.Screen)               {}
func (s *stubScene) State() core.SceneState            { return core.SceneState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Scene { return &stubScene{id: "zz-stub", title: "Stub"} })
	Register("aa-stub", func() Scene { return &stubScene{id: "aa-stub", title: "First"} })

	if !Exists("zz-stub") {
		t.Fatal("registered scene should exist")
	}
	if Exists("nope") {
		t.Error("unregistered scene should not exist")
	}

	s, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if s.ID() != "zz-stub" {
		t.Errorf("ID() = %q", s.ID())
	}

	if _, err := Create("nope"); err == nil {
		t.Error("Create() of unknown scene should fail")
	}

	list := List()
	if len(list) < 2 {
		t.Fatalf("List() returned %d scenes", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	if list[0].ID != "aa-stub" || list[0].Title != "First" {
		t.Errorf("List()[0] = %+v", list[0])
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Scene { return &stubScene{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-stub", func() Scene { return &stubScene{id: "dup-stub"} })
}
