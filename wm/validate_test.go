package wm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		keys: []Key{
			{Super, mustKeysym("Return"), Spawn{[]string{"xterm"}}, ""},
		},
		groups:  []Group{{"1"}},
		layouts: []Layout{{Kind: LayoutMax}},
		screens: []Screen{{Top: &Bar{Widgets: []Widget{{Kind: WidgetClock, Fg: 0, Bg: NoColor}}}}},
		palette: Palette{{"#ffffff", "#000000"}},
	}
}

func validationErrors(t *testing.T, err error) []*ValidationError {
	t.Helper()
	require.Error(t, err)
	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok, "want a joined error, got %T", err)
	var out []*ValidationError
	for _, e := range joined.Unwrap() {
		var ve *ValidationError
		require.True(t, errors.As(e, &ve))
		out = append(out, ve)
	}
	return out
}

func TestValidateOK(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidateEmptyLayouts(t *testing.T) {
	c := validConfig()
	c.layouts = nil
	errs := validationErrors(t, Validate(c))
	require.Len(t, errs, 1)
	assert.Equal(t, "layouts", errs[0].Field)
}

func TestValidatePaletteIndex(t *testing.T) {
	c := validConfig()
	c.screens[0].Top.Widgets = append(c.screens[0].Top.Widgets,
		Widget{Kind: WidgetVolume, Fg: 0, Bg: 1},
		Widget{Kind: WidgetClock, Fg: 0, Bg: 0, Decorations: []Decoration{{Kind: "border", Color: 5}}},
	)
	c.screens[0].Bottom = &Bar{Widgets: []Widget{
		{Kind: WidgetTextBox, Fg: NoColor, Bg: NoColor, FgLiteral: "474747"},
		{Kind: WidgetGroupBox, Fg: 0, Bg: 0, Roles: map[string]int{"active": 0, "inactive": 3}},
	}}
	errs := validationErrors(t, Validate(c))
	require.Len(t, errs, 3)
	assert.Equal(t, "screens[0].top.widgets[1]", errs[0].Field)
	assert.Contains(t, errs[0].Error(), "color index 1 outside palette of 1")
	assert.Equal(t, "screens[0].top.widgets[2]", errs[1].Field)
	assert.Contains(t, errs[1].Error(), "color index 5")
	assert.Equal(t, "screens[0].bottom.widgets[1]", errs[2].Field)
	assert.Contains(t, errs[2].Error(), "color index 3")
}

func TestMaxColorIndex(t *testing.T) {
	c := validConfig()
	assert.Equal(t, 0, c.MaxColorIndex())
	c.screens[0].Bottom = &Bar{Widgets: []Widget{
		{Kind: WidgetGroupBox, Fg: NoColor, Bg: 1, Roles: map[string]int{"inactive": 4}},
	}}
	assert.Equal(t, 4, c.MaxColorIndex())
	assert.Equal(t, -1, (&Config{}).MaxColorIndex())
}

func TestValidateGroupLabel(t *testing.T) {
	c := validConfig()
	c.groups = append(c.groups, Group{"web"}, Group{"!"})
	errs := validationErrors(t, Validate(c))
	require.Len(t, errs, 2)
	assert.Equal(t, "groups[1]", errs[0].Field)
	assert.Equal(t, "groups[2]", errs[1].Field)
}

func TestValidateEmptySpawn(t *testing.T) {
	c := validConfig()
	c.keys = append(c.keys, Key{Super, mustKeysym("b"), Spawn{}, ""}, Key{Super, mustKeysym("c"), nil, ""})
	errs := validationErrors(t, Validate(c))
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "spawn with empty argv")
	assert.Contains(t, errs[1].Error(), "no command")
}

func TestValidateReportsDuplicates(t *testing.T) {
	c := validConfig()
	c.keys = append(c.keys, GroupKeys(Super, c.groups)...)
	// A static binding on mod+1 collides with the derived switch binding.
	c.keys = append([]Key{{Super, mustKeysym("1"), NextLayout{}, ""}}, c.keys...)

	err := Validate(c)
	assert.ErrorIs(t, err, ErrDuplicateBinding)
	errs := validationErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "keys[2]", errs[0].Field)
	assert.Contains(t, errs[0].Error(), "mod4+1 also bound at keys[0]")

	// Both bindings are kept, in order.
	assert.Equal(t, NextLayout{}, c.keys[0].Command)
	assert.Equal(t, SwitchGroup{"1"}, c.keys[2].Command)
}

func TestDuplicates(t *testing.T) {
	keys := []Key{
		{Super, mustKeysym("a"), NextLayout{}, ""},
		{Super | Shift, mustKeysym("a"), NextLayout{}, ""},
		{Super, mustKeysym("a"), KillWindow{}, ""},
		{Super, mustKeysym("a"), Reload{}, ""},
	}
	assert.Equal(t, []Duplicate{
		{First: 0, Second: 2, Mods: Super, Keysym: mustKeysym("a")},
		{First: 0, Second: 3, Mods: Super, Keysym: mustKeysym("a")},
	}, Duplicates(keys))
	assert.Empty(t, Duplicates(keys[:2]))
}
