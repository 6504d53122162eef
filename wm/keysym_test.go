package wm

import (
	"testing"

	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeysym(t *testing.T) {
	testCases := []struct {
		name string
		want xp.Keysym
	}{
		{"a", 'a'},
		{"9", '9'},
		{"Return", 0xff0d},
		{"F1", 0xffbe},
		{"F12", 0xffc9},
		{"XF86AudioMute", 0x1008ff12},
		{"period", '.'},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseKeysym(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.name, KeysymString(got))
		})
	}
}

func TestParseKeysymUnknown(t *testing.T) {
	_, err := ParseKeysym("Hyperspace")
	assert.ErrorIs(t, err, ErrUnknownKeysym)
	assert.False(t, IsKeysymName("Hyperspace"))
	assert.False(t, IsKeysymName("A"))
}

func TestKeysymStringUnnamed(t *testing.T) {
	assert.Equal(t, "0xfe03", KeysymString(0xfe03))
}

func TestMods(t *testing.T) {
	testCases := []struct {
		in   string
		want Mods
		str  string
	}{
		{"", 0, ""},
		{"mod4", Super, "mod4"},
		{"super+shift", Super | Shift, "mod4+shift"},
		{"Ctrl + Alt", Control | Alt, "mod1+control"},
		{"shift+mod4+control", Super | Control | Shift, "mod4+control+shift"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMods(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.str, got.String())
		})
	}

	_, err := ParseMods("mod4+meta")
	assert.EqualError(t, err, `unknown modifier "meta"`)

	assert.True(t, (Super | Shift).Has(Shift))
	assert.False(t, Super.Has(Super|Shift))
}
