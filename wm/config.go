// Package wm is the data model and assembler for a tiling window manager's
// configuration.
package wm

import (
	"maps"
	"slices"

	xp "github.com/BurntSushi/xgb/xproto"
)

// Key binds a modifier set and keysym to a command.
type Key struct {
	Mods    Mods
	Keysym  xp.Keysym
	Command Command
	Desc    string
}

// Mouse binds a modifier set and button to a click or drag command. Start, if
// non-nil, captures the initial window state when a drag begins.
type Mouse struct {
	Mods    Mods
	Button  xp.Button
	Command Command
	Drag    bool
	Start   Command
}

// Group is a workspace, labelled by a single key name.
type Group struct {
	Label string
}

// LayoutKind names a tiling algorithm implemented by the runtime.
type LayoutKind string

const (
	LayoutColumns   LayoutKind = "columns"
	LayoutMax       LayoutKind = "max"
	LayoutMonadTall LayoutKind = "monadtall"
	LayoutMonadWide LayoutKind = "monadwide"
	LayoutSpiral    LayoutKind = "spiral"
	LayoutStack     LayoutKind = "stack"
	LayoutTreeTab   LayoutKind = "treetab"
	LayoutFloating  LayoutKind = "floating"
)

// Layout is one entry of a group's layout cycle. Ratio and
// NewClientPosition are zero when the layout's own defaults apply.
type Layout struct {
	Kind              LayoutKind
	Ratio             float64
	NewClientPosition string
}

// ColorPair is a foreground and background, as "#rrggbb" strings.
type ColorPair struct {
	Fg string
	Bg string
}

// Palette is addressed by position from widgets and decorations. Reordering
// it changes every widget's colors.
type Palette []ColorPair

// NoColor leaves a widget color to the runtime.
const NoColor = -1

// WidgetKind names a bar widget implemented by the runtime.
type WidgetKind string

const (
	WidgetGroupBox          WidgetKind = "groupbox"
	WidgetPrompt            WidgetKind = "prompt"
	WidgetWindowName        WidgetKind = "windowname"
	WidgetSystray           WidgetKind = "systray"
	WidgetVolume            WidgetKind = "volume"
	WidgetClock             WidgetKind = "clock"
	WidgetCurrentLayout     WidgetKind = "currentlayout"
	WidgetCurrentLayoutIcon WidgetKind = "currentlayouticon"
	WidgetTextBox           WidgetKind = "textbox"
	WidgetWlan              WidgetKind = "wlan"
	WidgetKeyboardLayout    WidgetKind = "keyboardlayout"
	WidgetSpacer            WidgetKind = "spacer"
	WidgetSep               WidgetKind = "sep"
	WidgetImage             WidgetKind = "image"
)

// Decoration is drawn behind a widget. The only kind the default bar uses
// is "border", an underline of BorderWidth (top, right, bottom, left).
type Decoration struct {
	Kind        string
	Color       int
	BorderWidth [4]int
	PaddingX    int
}

// Widget describes one bar widget. Fg and Bg are palette indices, or
// NoColor. FgLiteral, if set, is an "rrggbb" foreground outside the palette
// and overrides Fg.
type Widget struct {
	Kind      WidgetKind
	Fg        int
	Bg        int
	FgLiteral string
	Padding   int
	Font      string
	FontSize  int
	Text      string
	Format    string // "format", expanded by the widget
	Fmt       string // "fmt", wrapped around the widget's text
	IconPaths []string

	// Roles are further palette indices by widget argument name, such as a
	// group box's "active" or "this_screen_border".
	Roles map[string]int
	// Params are widget-specific scalar arguments.
	Params      map[string]any
	Decorations []Decoration
}

func (w Widget) clone() Widget {
	w.IconPaths = append([]string(nil), w.IconPaths...)
	w.Decorations = append([]Decoration(nil), w.Decorations...)
	w.Roles = maps.Clone(w.Roles)
	w.Params = maps.Clone(w.Params)
	return w
}

// colors lists every palette index w refers to.
func (w Widget) colors() []int {
	var idx []int
	for _, c := range []int{w.Fg, w.Bg} {
		if c != NoColor {
			idx = append(idx, c)
		}
	}
	for _, role := range slices.Sorted(maps.Keys(w.Roles)) {
		idx = append(idx, w.Roles[role])
	}
	for _, d := range w.Decorations {
		idx = append(idx, d.Color)
	}
	return idx
}

// WidgetDefaults apply to every widget argument a widget leaves unset.
type WidgetDefaults struct {
	Font       string
	FontSize   int
	Padding    int
	Background string
}

// Bar is a status bar along one edge of a screen.
type Bar struct {
	Size    int
	Widgets []Widget
}

func (b *Bar) clone() *Bar {
	if b == nil {
		return nil
	}
	c := *b
	c.Widgets = make([]Widget, len(b.Widgets))
	for i, w := range b.Widgets {
		c.Widgets[i] = w.clone()
	}
	return &c
}

// Screen configures one physical display.
type Screen struct {
	Wallpaper     string
	WallpaperMode string
	Top           *Bar
	Bottom        *Bar
}

type edgeBar struct {
	edge string
	bar  *Bar
}

// bars returns s's bars, top first.
func (s Screen) bars() []edgeBar {
	var out []edgeBar
	if s.Top != nil {
		out = append(out, edgeBar{"top", s.Top})
	}
	if s.Bottom != nil {
		out = append(out, edgeBar{"bottom", s.Bottom})
	}
	return out
}

// FloatRule matches windows that should always float.
type FloatRule struct {
	WMClass string
	Title   string
}

// Settings are the scalar runtime options. DefaultFloatRules keeps the
// runtime's built-in float rules ahead of FloatRules.
type Settings struct {
	FollowMouseFocus        bool
	BringFrontClick         bool
	CursorWarp              bool
	AutoFullscreen          bool
	FocusOnWindowActivation string
	ReconfigureScreens      bool
	AutoMinimize            bool
	WMName                  string
	DefaultFloatRules       bool
	FloatRules              []FloatRule
}

// Config is the assembled configuration. It is not modified after Assemble
// returns it.
type Config struct {
	keys     []Key
	mouse    []Mouse
	groups   []Group
	layouts  []Layout
	screens  []Screen
	palette  Palette
	defaults WidgetDefaults
	settings Settings
}

// Keys returns a copy of the key bindings, static bindings first.
func (c *Config) Keys() []Key { return append([]Key(nil), c.keys...) }

// Mouse returns a copy of the mouse bindings.
func (c *Config) Mouse() []Mouse { return append([]Mouse(nil), c.mouse...) }

// Groups returns a copy of the groups in declared order.
func (c *Config) Groups() []Group { return append([]Group(nil), c.groups...) }

// Layouts returns a copy of the layout cycle.
func (c *Config) Layouts() []Layout { return append([]Layout(nil), c.layouts...) }

// DefaultLayout is the layout a group starts in.
func (c *Config) DefaultLayout() Layout { return c.layouts[0] }

// Screens returns a copy of the screen configurations.
func (c *Config) Screens() []Screen {
	screens := make([]Screen, len(c.screens))
	for i, s := range c.screens {
		s.Top = s.Top.clone()
		s.Bottom = s.Bottom.clone()
		screens[i] = s
	}
	return screens
}

// Palette returns a copy of the color palette.
func (c *Config) Palette() Palette { return append(Palette(nil), c.palette...) }

// WidgetDefaults returns the defaults shared by all widgets.
func (c *Config) WidgetDefaults() WidgetDefaults { return c.defaults }

// Settings returns the scalar settings.
func (c *Config) Settings() Settings {
	s := c.settings
	s.FloatRules = append([]FloatRule(nil), s.FloatRules...)
	return s
}
