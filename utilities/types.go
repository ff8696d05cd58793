package utilities

import (
	"iter"
	"slices"
)

// CSS properties produced by generators.
const (
	PropAnimationName           = "animation-name"
	PropAnimationFillMode       = "animation-fill-mode"
	PropAnimationDelay          = "animation-delay"
	PropAnimationTimingFunction = "animation-timing-function"
	PropAnimationDuration       = "animation-duration"
)

// Property is a single CSS property and its value.
type Property struct {
	Name  string
	Value string
}

// Declaration is a CSS declaration block. Property order is preserved.
type Declaration []Property

// Get returns value of the named property.
func (d Declaration) Get(name string) (string, bool) {
	for _, p := range d {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Keyframe is a named animation. Definition is carried along for consumers
// which need it (e.g. to emit @keyframes), generators only look at the name.
type Keyframe struct {
	Name       string
	Definition any
}

// Sequence is an ordered list of animation delays ("0s", ".25s", ...).
type Sequence []string

// Duration is a single entry of a duration scale ("500" -> "500ms").
type Duration struct {
	Key   string
	Value string
}

// Utilities maps class selectors to declarations keeping insertion order,
// so output is deterministic and follows the order of configuration.
type Utilities struct {
	order []string
	decls map[string]Declaration
}

// New returns an empty set with room for size utilities.
func New(size int) *Utilities {
	return &Utilities{
		order: make([]string, 0, size),
		decls: make(map[string]Declaration, size),
	}
}

// Set adds utility to the set. Setting existing selector replaces its
// declaration in place.
func (u *Utilities) Set(selector string, d Declaration) {
	if _, exists := u.decls[selector]; !exists {
		u.order = append(u.order, selector)
	}
	u.decls[selector] = d
}

// Get returns declaration for selector.
func (u *Utilities) Get(selector string) (Declaration, bool) {
	if u == nil {
		return nil, false
	}
	d, ok := u.decls[selector]
	return d, ok
}

// Len returns number of utilities in the set.
func (u *Utilities) Len() int {
	if u == nil {
		return 0
	}
	return len(u.order)
}

// Selectors returns selectors in insertion order.
func (u *Utilities) Selectors() []string {
	if u == nil {
		return nil
	}
	return slices.Clone(u.order)
}

// All iterates over utilities in insertion order.
func (u *Utilities) All() iter.Seq2[string, Declaration] {
	return func(yield func(string, Declaration) bool) {
		if u == nil {
			return
		}
		for _, sel := range u.order {
			if !yield(sel, u.decls[sel]) {
				return
			}
		}
	}
}

// Merge adds all utilities from other to u, other wins on collision.
func (u *Utilities) Merge(other *Utilities) {
	for sel, d := range other.All() {
		u.Set(sel, d)
	}
}

// Equal reports whether both sets hold the same utilities in the same order.
func (u *Utilities) Equal(other *Utilities) bool {
	if u.Len() != other.Len() {
		return false
	}
	for i, sel := range u.Selectors() {
		if other.order[i] != sel {
			return false
		}
		if !slices.Equal(u.decls[sel], other.decls[sel]) {
			return false
		}
	}
	return true
}
