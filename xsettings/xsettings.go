// Package xsettings announces desktop settings, such as the GTK+ theme and
// font rendering options, through the XSETTINGS mechanism.
//
// The dump_xsettings program from http://code.google.com/p/xsettingsd/ will
// show the XSETTINGS key/value pairs set by other desktop environments such
// as GNOME.
package xsettings

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/xgb"
	xp "github.com/BurntSushi/xgb/xproto"
)

// Setting is one key/value pair. Value is an int or a string.
type Setting struct {
	Name  string
	Value interface{}
}

// Defaults are the settings picked up by GTK+ programs such as
// gnome-terminal.
var Defaults = []Setting{
	{"Net/IconThemeName", "Adwaita"},
	{"Net/ThemeName", "Adwaita-dark"},
	{"Xft/Antialias", 1},
	{"Xft/DPI", 96 * 1024}, // Hard-code 96 DPI, the same as what gnome-settings-daemon does.
	{"Xft/Hinting", 1},
	{"Xft/HintStyle", "hintslight"},
	{"Xft/RGBA", "none"},
}

// Encode returns the _XSETTINGS_SETTINGS property value for settings.
func Encode(settings []Setting) ([]byte, error) {
	b := new(bytes.Buffer)
	b.WriteString("\x00\x00\x00\x00") // Zero means little-endian.
	b.WriteString("\x00\x00\x00\x00") // Serial number.
	writeUint32(b, uint32(len(settings)))
	for _, s := range settings {
		switch s.Value.(type) {
		case int:
			b.WriteString("\x00\x00")
		case string:
			b.WriteString("\x01\x00")
		default:
			return nil, fmt.Errorf("xsettings: unsupported type %T for %q", s.Value, s.Name)
		}
		writeUint16(b, uint16(len(s.Name)))
		b.WriteString(s.Name)
		pad(b, len(s.Name))
		b.WriteString("\x00\x00\x00\x00") // Serial number.
		switch v := s.Value.(type) {
		case int:
			writeUint32(b, uint32(v))
		case string:
			writeUint32(b, uint32(len(v)))
			b.WriteString(v)
			pad(b, len(v))
		}
	}
	return b.Bytes(), nil
}

func pad(b *bytes.Buffer, n int) {
	if x := n % 4; x != 0 {
		b.WriteString("\x00\x00\x00\x00"[:4-x])
	}
}

func writeUint16(b *bytes.Buffer, u uint16) {
	b.WriteByte(byte(u >> 0))
	b.WriteByte(byte(u >> 8))
}

func writeUint32(b *bytes.Buffer, u uint32) {
	b.WriteByte(byte(u >> 0))
	b.WriteByte(byte(u >> 8))
	b.WriteByte(byte(u >> 16))
	b.WriteByte(byte(u >> 24))
}

// Announce makes owner the XSETTINGS manager for screen 0 and publishes
// settings on it. The settings stay published while owner exists.
func Announce(conn *xgb.Conn, owner xp.Window, settings []Setting) error {
	encoded, err := Encode(settings)
	if err != nil {
		return err
	}
	a0, err := internAtom(conn, "_XSETTINGS_S0")
	if err != nil {
		return err
	}
	if err := xp.SetSelectionOwnerChecked(conn, owner, a0,
		xp.TimeCurrentTime).Check(); err != nil {
		return fmt.Errorf("xsettings: could not own selection: %w", err)
	}
	a1, err := internAtom(conn, "_XSETTINGS_SETTINGS")
	if err != nil {
		return err
	}
	if err := xp.ChangePropertyChecked(conn, xp.PropModeReplace, owner, a1, a1,
		8, uint32(len(encoded)), encoded).Check(); err != nil {
		return fmt.Errorf("xsettings: could not set settings: %w", err)
	}
	return nil
}

func internAtom(conn *xgb.Conn, name string) (xp.Atom, error) {
	r, err := xp.InternAtom(conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("xsettings: intern %s: %w", name, err)
	}
	return r.Atom, nil
}

// NewOwnerWindow creates an unmapped window to hold the XSETTINGS selection.
func NewOwnerWindow(conn *xgb.Conn) (xp.Window, error) {
	screen := xp.Setup(conn).DefaultScreen(conn)
	w, err := xp.NewWindowId(conn)
	if err != nil {
		return 0, err
	}
	if err := xp.CreateWindowChecked(
		conn, screen.RootDepth, w, screen.Root,
		-1, -1, 1, 1, 0,
		xp.WindowClassInputOutput,
		screen.RootVisual,
		xp.CwOverrideRedirect,
		[]uint32{1},
	).Check(); err != nil {
		return 0, fmt.Errorf("xsettings: create window: %w", err)
	}
	return w, nil
}
