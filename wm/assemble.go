package wm

import (
	xp "github.com/BurntSushi/xgb/xproto"
)

// Options are the user-tunable inputs to Assemble.
type Options struct {
	Mod           Mods // involved in every binding
	Terminal      string
	Browser       string
	Wallpaper     string
	IconDir       string // layout icons; not checked for existence
	Font          string
	FontSize      int
	WlanInterface string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Mod:           Super,
		Terminal:      "alacritty",
		Browser:       "firefox",
		Wallpaper:     "/usr/share/backgrounds/Startrail_by_Hajime_Mizuno.jpg",
		Font:          "Ubuntu Bold",
		FontSize:      10,
		WlanInterface: "wlp4s0",
	}
}

// groupLabels are the workspace names, and also the keys that switch to them.
var groupLabels = [...]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

// palette colors, by index:
//
//	0 bar background  1 highlight  2 text    3 red     4 green
//	5 orange          6 blue       7 violet  8 cyan    9 lavender
var palette = Palette{
	{"#282c34", "#282c34"},
	{"#1c1f24", "#1c1f24"},
	{"#dfdfdf", "#dfdfdf"},
	{"#ff6c6b", "#ff6c6b"},
	{"#98be65", "#98be65"},
	{"#da8548", "#da8548"},
	{"#51afef", "#51afef"},
	{"#c678dd", "#c678dd"},
	{"#46d9ff", "#46d9ff"},
	{"#a9a1e1", "#a9a1e1"},
}

const (
	barBackground = 0
	barHighlight  = 1
	barText       = 2
	barGreen      = 4
	barBlue       = 6
	barViolet     = 7
	barCyan       = 8
)

// staticKeys lists the bindings that do not depend on the groups, in
// declared order. mod+n is bound twice; see Duplicates.
func staticKeys(mod Mods, o Options) []Key {
	return []Key{
		{mod, mustKeysym("h"), Focus{Left}, "Move focus to left"},
		{mod, mustKeysym("l"), Focus{Right}, "Move focus to right"},
		{mod, mustKeysym("j"), Focus{Down}, "Move focus down"},
		{mod, mustKeysym("k"), Focus{Up}, "Move focus up"},
		{mod, mustKeysym("space"), FocusNext{}, "Move window focus to other window"},

		{mod | Shift, mustKeysym("h"), Shuffle{Left}, "Move window to the left"},
		{mod | Shift, mustKeysym("l"), Shuffle{Right}, "Move window to the right"},
		{mod | Shift, mustKeysym("j"), Shuffle{Down}, "Move window down"},
		{mod | Shift, mustKeysym("k"), Shuffle{Up}, "Move window up"},

		{mod | Control, mustKeysym("h"), Grow{Left}, "Grow window to the left"},
		{mod | Control, mustKeysym("l"), Grow{Right}, "Grow window to the right"},
		{mod | Control, mustKeysym("j"), Grow{Down}, "Grow window down"},
		{mod | Control, mustKeysym("k"), Grow{Up}, "Grow window up"},
		{mod, mustKeysym("n"), Normalize{}, "Reset all window sizes"},

		{mod | Shift, mustKeysym("Return"), ToggleSplit{}, "Toggle between split and unsplit sides of stack"},
		{mod, mustKeysym("Tab"), NextLayout{}, "Toggle between layouts"},

		{mod, mustKeysym("Return"), Spawn{[]string{o.Terminal}}, "Launch terminal"},
		{mod, mustKeysym("b"), Spawn{[]string{o.Browser}}, "Launch browser"},
		{mod, mustKeysym("n"), Spawn{[]string{"google-chrome"}}, "Launch google chrome"},
		{mod, mustKeysym("m"), Spawn{[]string{"telegram-desktop"}}, "Launch telegram"},

		{mod, mustKeysym("w"), KillWindow{}, "Kill focused window"},
		{mod, mustKeysym("r"), SpawnPrompt{}, "Spawn a command using a prompt widget"},
		{mod | Control, mustKeysym("r"), Reload{}, "Reload the config"},
		{mod | Control, mustKeysym("q"), Shutdown{}, "Shutdown the window manager"},

		{0, mustKeysym("XF86AudioLowerVolume"), Spawn{[]string{"amixer", "sset", "Master", "5%-"}}, "Lower Volume by 5%"},
		{0, mustKeysym("XF86AudioRaiseVolume"), Spawn{[]string{"amixer", "sset", "Master", "5%+"}}, "Raise Volume by 5%"},
		{0, mustKeysym("XF86AudioMute"), Spawn{[]string{"amixer", "sset", "Master", "1+", "toggle"}}, "Mute/Unmute Volume"},

		{0, mustKeysym("Print"), Spawn{[]string{"gnome-screenshot", "-i"}}, "Launch screenshot"},
	}
}

// GroupKeys returns the two bindings derived from each group, in group order:
// mod+label switches to the group, and mod+shift+label moves the focused
// window there and follows it.
func GroupKeys(mod Mods, groups []Group) []Key {
	keys := make([]Key, 0, 2*len(groups))
	for _, g := range groups {
		// An invalid label yields keysym 0, which Validate reports.
		k, _ := ParseKeysym(g.Label)
		keys = append(keys,
			Key{mod, k, SwitchGroup{g.Label}, "Switch to group " + g.Label},
			Key{mod | Shift, k, MoveToGroup{g.Label, true}, "Switch to & move focused window to group " + g.Label},
		)
	}
	return keys
}

func mouseBindings(mod Mods) []Mouse {
	return []Mouse{
		{mod, xp.Button(xp.ButtonIndex1), DragFloatPosition{}, true, WindowPosition{}},
		{mod, xp.Button(xp.ButtonIndex3), DragFloatSize{}, true, WindowSize{}},
		{mod, xp.Button(xp.ButtonIndex2), BringToFront{}, false, nil},
	}
}

func layouts() []Layout {
	return []Layout{
		{Kind: LayoutMonadTall},
		{Kind: LayoutSpiral, Ratio: 0.5, NewClientPosition: "bottom"},
		{Kind: LayoutColumns},
		{Kind: LayoutMax},
	}
}

func widgetDefaults(o Options) WidgetDefaults {
	return WidgetDefaults{
		Font:       o.Font,
		FontSize:   o.FontSize,
		Padding:    2,
		Background: "#dfdfdf",
	}
}

// underline is the border decoration drawn under the right-hand widgets.
func underline(color int) []Decoration {
	return []Decoration{{Kind: "border", Color: color, BorderWidth: [4]int{0, 0, 2, 0}, PaddingX: 5}}
}

func widgets(o Options) []Widget {
	d := widgetDefaults(o)
	w := func(kind WidgetKind, fg int) Widget {
		return Widget{Kind: kind, Fg: fg, Bg: barBackground, Padding: d.Padding, Font: d.Font, FontSize: d.FontSize}
	}
	sep := func(fg int) Widget {
		s := w(WidgetSep, fg)
		s.Padding = 6
		s.Params = map[string]any{"linewidth": 0}
		return s
	}
	bar := func() Widget {
		t := w(WidgetTextBox, NoColor)
		t.FgLiteral = "474747"
		t.Text = "|"
		t.Font = "Ubuntu Mono"
		t.FontSize = 14
		return t
	}

	groupBox := w(WidgetGroupBox, barText)
	groupBox.FontSize = 9
	groupBox.Roles = map[string]int{
		"active":                      barText,
		"inactive":                    barViolet,
		"highlight_color":             barHighlight,
		"this_current_screen_border":  barBlue,
		"this_screen_border":          barGreen,
		"other_current_screen_border": barBlue,
		"other_screen_border":         barGreen,
	}
	groupBox.Params = map[string]any{
		"margin_y":         3,
		"margin_x":         0,
		"padding_y":        3,
		"padding_x":        3,
		"borderwidth":      3,
		"rounded":          false,
		"highlight_method": "line",
	}

	layoutIcon := w(WidgetCurrentLayoutIcon, barText)
	layoutIcon.Padding = 0
	if o.IconDir != "" {
		layoutIcon.IconPaths = []string{o.IconDir}
	}
	layoutIcon.Params = map[string]any{"scale": 0.7}

	layoutName := w(WidgetCurrentLayout, barText)
	layoutName.Padding = 5

	windowName := w(WidgetWindowName, barBlue)
	windowName.Padding = 0
	prompt := w(WidgetPrompt, barBlue)
	prompt.Padding = 0
	systray := w(WidgetSystray, NoColor)
	systray.Padding = 5

	wlan := w(WidgetWlan, barGreen)
	wlan.Padding = 5
	wlan.Format = "{essid} {percent:2.0%}"
	wlan.Params = map[string]any{"interface": o.WlanInterface}
	wlan.Decorations = underline(barGreen)

	volume := w(WidgetVolume, barViolet)
	volume.Padding = 5
	volume.Fmt = "Vol: {}"
	volume.Decorations = underline(barViolet)

	keyboard := w(WidgetKeyboardLayout, barCyan)
	keyboard.Padding = 5
	keyboard.Fmt = "Keyboard: {}"
	keyboard.Decorations = underline(barCyan)

	clock := w(WidgetClock, barBlue)
	clock.Format = "%A, %d %B %Y - %H:%M "
	clock.Decorations = underline(barBlue)

	return []Widget{
		sep(barText),
		groupBox,
		sep(barText),
		bar(),
		layoutIcon,
		layoutName,
		bar(),
		windowName,
		prompt,
		systray,
		sep(barBackground),
		wlan,
		sep(barBackground),
		volume,
		sep(barBackground),
		keyboard,
		sep(barBackground),
		clock,
		sep(barBackground),
	}
}

func settings() Settings {
	return Settings{
		FollowMouseFocus:        true,
		BringFrontClick:         false,
		CursorWarp:              false,
		AutoFullscreen:          true,
		FocusOnWindowActivation: "smart",
		ReconfigureScreens:      true,
		AutoMinimize:            true,
		// Some Java toolkits only work with a window manager they recognise.
		WMName:            "LG3D",
		DefaultFloatRules: true,
		FloatRules: []FloatRule{
			{WMClass: "confirmreset"},
			{WMClass: "makebranch"},
			{WMClass: "maketag"},
			{WMClass: "ssh-askpass"},
			{Title: "branchdialog"},
			{Title: "pinentry"},
		},
	}
}

// Assemble builds the configuration. It has no side effects, and equal
// options give equal configurations.
func Assemble(o Options) *Config {
	if o.Mod == 0 {
		o.Mod = Super
	}
	groups := make([]Group, len(groupLabels))
	for i, label := range groupLabels {
		groups[i] = Group{Label: label}
	}
	keys := staticKeys(o.Mod, o)
	keys = append(keys, GroupKeys(o.Mod, groups)...)

	return &Config{
		keys:    keys,
		mouse:   mouseBindings(o.Mod),
		groups:  groups,
		layouts: layouts(),
		screens: []Screen{{
			Wallpaper:     o.Wallpaper,
			WallpaperMode: "fill",
			Bottom: &Bar{
				Size:    24,
				Widgets: widgets(o),
			},
		}},
		palette:  append(Palette(nil), palette...),
		defaults: widgetDefaults(o),
		settings: settings(),
	}
}
