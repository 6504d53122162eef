package wm

import (
	"errors"
	"fmt"

	xp "github.com/BurntSushi/xgb/xproto"
)

// ErrDuplicateBinding marks two key bindings on the same modifiers and key.
// Which one wins is up to the runtime, so Validate only reports it.
var ErrDuplicateBinding = errors.New("duplicate key binding")

// ValidationError is one problem found by Validate.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// Duplicate is a pair of key bindings where the later one shadows, or is
// shadowed by, the earlier one.
type Duplicate struct {
	First, Second int
	Mods          Mods
	Keysym        xp.Keysym
}

// Duplicates returns every (mods, keysym) pair bound more than once, as
// index pairs in binding order.
func Duplicates(keys []Key) []Duplicate {
	type chord struct {
		mods   Mods
		keysym xp.Keysym
	}
	seen := make(map[chord]int, len(keys))
	var dups []Duplicate
	for i, k := range keys {
		c := chord{k.Mods, k.Keysym}
		if j, ok := seen[c]; ok {
			dups = append(dups, Duplicate{First: j, Second: i, Mods: k.Mods, Keysym: c.keysym})
			continue
		}
		seen[c] = i
	}
	return dups
}

// Validate checks the structural properties the runtime relies on but does
// not itself check. It returns nil or a joined list of *ValidationError.
func Validate(c *Config) error {
	var errs []error
	add := func(field string, err error) {
		errs = append(errs, &ValidationError{Field: field, Err: err})
	}

	if len(c.layouts) == 0 {
		add("layouts", errors.New("no layouts"))
	}
	for i, g := range c.groups {
		if len(g.Label) != 1 || !IsKeysymName(g.Label) {
			add(fmt.Sprintf("groups[%d]", i), fmt.Errorf("label %q is not a single-key name", g.Label))
		}
	}
	for i, k := range c.keys {
		if k.Command == nil {
			add(fmt.Sprintf("keys[%d]", i), errors.New("no command"))
			continue
		}
		if s, ok := k.Command.(Spawn); ok && (len(s.Argv) == 0 || s.Argv[0] == "") {
			add(fmt.Sprintf("keys[%d]", i), errors.New("spawn with empty argv"))
		}
	}
	for _, d := range Duplicates(c.keys) {
		add(fmt.Sprintf("keys[%d]", d.Second), fmt.Errorf("%w: %s+%s also bound at keys[%d]",
			ErrDuplicateBinding, d.Mods, KeysymString(d.Keysym), d.First))
	}
	for i, s := range c.screens {
		for _, eb := range s.bars() {
			for j, w := range eb.bar.Widgets {
				field := fmt.Sprintf("screens[%d].%s.widgets[%d]", i, eb.edge, j)
				for _, idx := range w.colors() {
					if idx < 0 || idx >= len(c.palette) {
						add(field, fmt.Errorf("color index %d outside palette of %d", idx, len(c.palette)))
					}
				}
			}
		}
	}
	return errors.Join(errs...)
}

// MaxColorIndex is the largest palette index referenced by any widget, or -1.
func (c *Config) MaxColorIndex() int {
	m := -1
	for _, s := range c.screens {
		for _, eb := range s.bars() {
			for _, w := range eb.bar.Widgets {
				for _, idx := range w.colors() {
					m = max(m, idx)
				}
			}
		}
	}
	return m
}
