// Package renderer composes map-mode frames and defines the display backends.
package renderer

import (
	"fmt"
	"slices"

	"darkvale/pkg/game/state"
)

// Renderer defines the interface for display backends.
// Implementations are the terminal (tui) and the window (ebiten).
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init() error

	// Run drives the session until the player quits
	Run(sess *state.Session) error
}

// Names of the available backends
const (
	BackendTUI    = "tui"
	BackendEbiten = "ebiten"
)

// Backends lists the names accepted by Select
var Backends = []string{BackendEbiten, BackendTUI}

// Select returns the renderer built by the constructor matching name
func Select(name string, constructors map[string]func() Renderer) (Renderer, error) {
	if !slices.Contains(Backends, name) {
		return nil, fmt.Errorf("unknown renderer %q (want one of %v)", name, Backends)
	}
	build, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("renderer %q is not available in this build", name)
	}
	return build(), nil
}
