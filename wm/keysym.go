package wm

// These constants come from /usr/include/X11/keysymdef.h and XF86keysym.h.

import (
	"errors"
	"fmt"

	xp "github.com/BurntSushi/xgb/xproto"
)

// ErrUnknownKeysym is returned when a key name has no keysym.
var ErrUnknownKeysym = errors.New("unknown keysym")

const (
	xkSpace      = 0x0020
	xkComma      = 0x002c
	xkMinus      = 0x002d
	xkPeriod     = 0x002e
	xkSlash      = 0x002f
	xkISOLeftTab = 0xfe20
	xkBackspace  = 0xff08
	xkTab        = 0xff09
	xkReturn     = 0xff0d
	xkEscape     = 0xff1b
	xkHome       = 0xff50
	xkLeft       = 0xff51
	xkUp         = 0xff52
	xkRight      = 0xff53
	xkDown       = 0xff54
	xkPageUp     = 0xff55
	xkPageDown   = 0xff56
	xkEnd        = 0xff57
	xkPrint      = 0xff61
	xkF1         = 0xffbe
	xkShiftL     = 0xffe1
	xkShiftR     = 0xffe2
	xkControlL   = 0xffe3
	xkControlR   = 0xffe4
	xkCapsLock   = 0xffe5
	xkSuperL     = 0xffeb
	xkSuperR     = 0xffec
	xkDelete     = 0xffff

	xkMonBrightnessUp   = 0x1008ff02
	xkMonBrightnessDown = 0x1008ff03
	xkAudioLowerVolume  = 0x1008ff11
	xkAudioMute         = 0x1008ff12
	xkAudioRaiseVolume  = 0x1008ff13
	xkAudioPlay         = 0x1008ff14
	xkAudioStop         = 0x1008ff15
	xkAudioPrev         = 0x1008ff16
	xkAudioNext         = 0x1008ff17
)

var keysymNames = map[string]xp.Keysym{
	"space":                 xkSpace,
	"comma":                 xkComma,
	"minus":                 xkMinus,
	"period":                xkPeriod,
	"slash":                 xkSlash,
	"ISO_Left_Tab":          xkISOLeftTab,
	"BackSpace":             xkBackspace,
	"Tab":                   xkTab,
	"Return":                xkReturn,
	"Escape":                xkEscape,
	"Home":                  xkHome,
	"Left":                  xkLeft,
	"Up":                    xkUp,
	"Right":                 xkRight,
	"Down":                  xkDown,
	"Page_Up":               xkPageUp,
	"Page_Down":             xkPageDown,
	"End":                   xkEnd,
	"Print":                 xkPrint,
	"Shift_L":               xkShiftL,
	"Shift_R":               xkShiftR,
	"Control_L":             xkControlL,
	"Control_R":             xkControlR,
	"Caps_Lock":             xkCapsLock,
	"Super_L":               xkSuperL,
	"Super_R":               xkSuperR,
	"Delete":                xkDelete,
	"XF86MonBrightnessUp":   xkMonBrightnessUp,
	"XF86MonBrightnessDown": xkMonBrightnessDown,
	"XF86AudioLowerVolume":  xkAudioLowerVolume,
	"XF86AudioMute":         xkAudioMute,
	"XF86AudioRaiseVolume":  xkAudioRaiseVolume,
	"XF86AudioPlay":         xkAudioPlay,
	"XF86AudioStop":         xkAudioStop,
	"XF86AudioPrev":         xkAudioPrev,
	"XF86AudioNext":         xkAudioNext,
}

var keysymValues = make(map[xp.Keysym]string, len(keysymNames)+64)

func init() {
	// Latin-1 keysyms for digits and lower case letters equal their ASCII code.
	for c := '0'; c <= '9'; c++ {
		keysymNames[string(c)] = xp.Keysym(c)
	}
	for c := 'a'; c <= 'z'; c++ {
		keysymNames[string(c)] = xp.Keysym(c)
	}
	for i := 0; i < 12; i++ {
		keysymNames[fmt.Sprintf("F%d", i+1)] = xp.Keysym(xkF1 + i)
	}
	for name, k := range keysymNames {
		keysymValues[k] = name
	}
}

// ParseKeysym returns the keysym for an X11 key name such as "Return" or "a".
func ParseKeysym(name string) (xp.Keysym, error) {
	if k, ok := keysymNames[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKeysym, name)
}

// mustKeysym is for the literal tables in assemble.go.
func mustKeysym(name string) xp.Keysym {
	k, err := ParseKeysym(name)
	if err != nil {
		panic(err)
	}
	return k
}

// IsKeysymName reports whether name is a known key name.
func IsKeysymName(name string) bool {
	_, ok := keysymNames[name]
	return ok
}

// KeysymString returns the X11 name of keysym, or a hex literal if it has none.
func KeysymString(keysym xp.Keysym) string {
	if name, ok := keysymValues[keysym]; ok {
		return name
	}
	return fmt.Sprintf("0x%x", uint32(keysym))
}
