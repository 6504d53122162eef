package wm

import (
	"fmt"
	"strings"

	xp "github.com/BurntSushi/xgb/xproto"
)

// Mods is a set of X11 core modifier bits.
type Mods uint16

const (
	Shift   Mods = xp.ModMaskShift
	Control Mods = xp.ModMaskControl
	Alt     Mods = xp.ModMask1
	Super   Mods = xp.ModMask4
)

var modNames = []struct {
	mask Mods
	name string
}{
	{Super, "mod4"},
	{Alt, "mod1"},
	{Control, "control"},
	{Shift, "shift"},
}

var modAliases = map[string]Mods{
	"mod4":    Super,
	"super":   Super,
	"mod1":    Alt,
	"alt":     Alt,
	"control": Control,
	"ctrl":    Control,
	"shift":   Shift,
}

// Has reports whether every bit of m2 is in m.
func (m Mods) Has(m2 Mods) bool { return m&m2 == m2 }

// String renders m as, for example, "mod4+shift". The empty set is "".
func (m Mods) String() string {
	return strings.Join(modList(m), "+")
}

// ParseMods parses a "+" separated list of modifier names.
func ParseMods(s string) (Mods, error) {
	m := Mods(0)
	if s == "" {
		return m, nil
	}
	for _, p := range strings.Split(s, "+") {
		mask, ok := modAliases[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return 0, fmt.Errorf("unknown modifier %q", p)
		}
		m |= mask
	}
	return m, nil
}
