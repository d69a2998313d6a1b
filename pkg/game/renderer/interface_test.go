package renderer

import (
	"testing"

	"darkvale/pkg/game/state"
)

type fakeRenderer struct{ name string }

func (f *fakeRenderer) Init() error { return nil }
func (f *fakeRenderer) Run(sess *state.Session) error { return nil }

func TestSelect(t *testing.T) {
	constructors := map[string]func() Renderer{
		BackendTUI: func() Renderer { return &fakeRenderer{name: BackendTUI} },
	}

	r, err := Select(BackendTUI, constructors)
	if err != nil {
		t.Fatalf("Select(tui) error: %v", err)
	}
	if r.(*fakeRenderer).name != BackendTUI {
		t.Errorf("Select(tui) built %q", r.(*fakeRenderer).name)
	}

	if _, err := Select(BackendEbiten, constructors); err == nil {
		t.Error("Select(ebiten) without a constructor should fail")
	}
	if _, err := Select("sdl", constructors); err == nil {
		t.Error("Select(sdl) should fail")
	}
}
