// Package roster describes the ants a colony run starts with.
// A roster is plain data: built in, or loaded from a TOML or YAML file.
package roster

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/ant-colony/constant"
)

var (
	ErrEmptyRoster       = errors.New("roster has no entities")
	ErrUnknownKind       = errors.New("unknown entity kind")
	ErrNegativeRadius    = errors.New("orbit radius must not be negative")
	ErrUnsupportedFormat = errors.New("unsupported roster format")
	ErrInvalidGlyph      = errors.New("glyph must be one printable single-column character")
)

// Width conditions for narrow and East Asian terminals
// A glyph must be one column under both, otherwise an erase leaves half of it behind
var (
	narrowWidth = newWidthCondition(false)
	eastAsian   = newWidthCondition(true)
)

func newWidthCondition(eastAsianWidth bool) *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = eastAsianWidth
	return c
}

// Kind selects an entity's motion pattern
type Kind string

const (
	// KindWorker walks in a straight line to the corner and back
	KindWorker Kind = "worker"

	// KindWarrior orbits a fixed centre
	KindWarrior Kind = "warrior"
)

// Entity is one ant's parameters
// X, Y is the start position for workers and the orbit centre for warriors
type Entity struct {
	Name   string `toml:"name" yaml:"name"`
	Kind   Kind   `toml:"kind" yaml:"kind"`
	X      int    `toml:"x" yaml:"x"`
	Y      int    `toml:"y" yaml:"y"`
	Speed  int    `toml:"speed" yaml:"speed"`
	Radius int    `toml:"radius,omitempty" yaml:"radius,omitempty"`
	Glyph  string `toml:"glyph,omitempty" yaml:"glyph,omitempty"`
}

// Roster is the full list of ants for a run
type Roster struct {
	Entities []Entity `toml:"entity" yaml:"entities"`
}

// Default returns the built-in colony: three workers and two warriors
func Default() Roster {
	return Roster{Entities: []Entity{
		{Name: "worker-1", Kind: KindWorker, X: 20, Y: 10, Speed: 20},
		{Name: "worker-2", Kind: KindWorker, X: 30, Y: 15, Speed: 15},
		{Name: "worker-3", Kind: KindWorker, X: 10, Y: 20, Speed: 25},
		{Name: "warrior-1", Kind: KindWarrior, X: 30, Y: 12, Radius: 5, Speed: 30},
		{Name: "warrior-2", Kind: KindWarrior, X: 30, Y: 12, Radius: 8, Speed: 15},
	}}
}

// Validate checks every entity and reports the first problem
// Speed is not validated here; non-positive speeds are clamped at run time
func (r Roster) Validate() error {
	if len(r.Entities) == 0 {
		return ErrEmptyRoster
	}
	for i, e := range r.Entities {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("entity %d (%s): %w", i, e.Name, err)
		}
	}
	return nil
}

// Validate checks the entity kind, radius and glyph
func (e Entity) Validate() error {
	switch e.Kind {
	case KindWorker:
	case KindWarrior:
		if e.Radius < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeRadius, e.Radius)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
	}
	if e.Glyph == "" {
		return nil
	}
	runes := []rune(e.Glyph)
	if len(runes) != 1 || !glyphFits(runes[0]) {
		return fmt.Errorf("%w: %q", ErrInvalidGlyph, e.Glyph)
	}
	return nil
}

// glyphFits rejects control, format and space characters and anything wider or
// narrower than one cell; such runes would corrupt escape sequences or leave
// stale columns after an erase
func glyphFits(r rune) bool {
	if r == unicode.ReplacementChar || unicode.IsSpace(r) || !unicode.IsGraphic(r) {
		return false
	}
	return narrowWidth.RuneWidth(r) == 1 && eastAsian.RuneWidth(r) == 1
}

// Symbol returns the entity glyph, falling back to the kind default
func (e Entity) Symbol() rune {
	if r := []rune(e.Glyph); len(r) == 1 {
		return r[0]
	}
	if e.Kind == KindWarrior {
		return constant.WarriorGlyph
	}
	return constant.WorkerGlyph
}
