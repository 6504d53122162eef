package wm

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// Format is a wire encoding of the runtime contract.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// The document types below are the contract read by the runtime. Field names
// are fixed; renaming one breaks every runtime that loads the file.

type commandDoc struct {
	Cmd  string   `yaml:"cmd" json:"cmd"`
	Args []string `yaml:"args,omitempty" json:"args,omitempty"`
}

type keyDoc struct {
	Mods []string   `yaml:"mods,flow" json:"mods"`
	Key  string     `yaml:"key" json:"key"`
	Do   commandDoc `yaml:"do" json:"do"`
	Desc string     `yaml:"desc,omitempty" json:"desc,omitempty"`
}

type mouseDoc struct {
	Mods   []string    `yaml:"mods,flow" json:"mods"`
	Button string      `yaml:"button" json:"button"`
	Type   string      `yaml:"type" json:"type"`
	Do     commandDoc  `yaml:"do" json:"do"`
	Start  *commandDoc `yaml:"start,omitempty" json:"start,omitempty"`
}

type layoutDoc struct {
	Name              string  `yaml:"name" json:"name"`
	Ratio             float64 `yaml:"ratio,omitempty" json:"ratio,omitempty"`
	NewClientPosition string  `yaml:"new_client_position,omitempty" json:"new_client_position,omitempty"`
}

type decorationDoc struct {
	Kind        string `yaml:"kind" json:"kind"`
	Color       int    `yaml:"colour" json:"colour"`
	BorderWidth [4]int `yaml:"border_width,flow" json:"border_width"`
	PaddingX    int    `yaml:"padding_x,omitempty" json:"padding_x,omitempty"`
}

// Foreground and Background hold a palette index, a literal color string,
// or nothing.
type widgetDoc struct {
	Name            string          `yaml:"name" json:"name"`
	Foreground      any             `yaml:"foreground,omitempty" json:"foreground,omitempty"`
	Background      any             `yaml:"background,omitempty" json:"background,omitempty"`
	Padding         int             `yaml:"padding" json:"padding"`
	Font            string          `yaml:"font,omitempty" json:"font,omitempty"`
	FontSize        int             `yaml:"fontsize,omitempty" json:"fontsize,omitempty"`
	Text            string          `yaml:"text,omitempty" json:"text,omitempty"`
	Format          string          `yaml:"format,omitempty" json:"format,omitempty"`
	Fmt             string          `yaml:"fmt,omitempty" json:"fmt,omitempty"`
	CustomIconPaths []string        `yaml:"custom_icon_paths,omitempty" json:"custom_icon_paths,omitempty"`
	Colors          map[string]int  `yaml:"colors,omitempty" json:"colors,omitempty"`
	Params          map[string]any  `yaml:"params,omitempty" json:"params,omitempty"`
	Decorations     []decorationDoc `yaml:"decorations,omitempty" json:"decorations,omitempty"`
}

type widgetDefaultsDoc struct {
	Font       string `yaml:"font" json:"font"`
	FontSize   int    `yaml:"fontsize" json:"fontsize"`
	Padding    int    `yaml:"padding" json:"padding"`
	Background string `yaml:"background" json:"background"`
}

type barDoc struct {
	Size    int         `yaml:"size" json:"size"`
	Widgets []widgetDoc `yaml:"widgets" json:"widgets"`
}

type screenDoc struct {
	Wallpaper     string  `yaml:"wallpaper,omitempty" json:"wallpaper,omitempty"`
	WallpaperMode string  `yaml:"wallpaper_mode,omitempty" json:"wallpaper_mode,omitempty"`
	Top           *barDoc `yaml:"top,omitempty" json:"top,omitempty"`
	Bottom        *barDoc `yaml:"bottom,omitempty" json:"bottom,omitempty"`
}

type floatRuleDoc struct {
	WMClass string `yaml:"wm_class,omitempty" json:"wm_class,omitempty"`
	Title   string `yaml:"title,omitempty" json:"title,omitempty"`
}

type floatingDoc struct {
	DefaultFloatRules bool           `yaml:"default_float_rules" json:"default_float_rules"`
	FloatRules        []floatRuleDoc `yaml:"float_rules" json:"float_rules"`
}

type document struct {
	Keys                    []keyDoc          `yaml:"keys" json:"keys"`
	Groups                  []string          `yaml:"groups,flow" json:"groups"`
	Layouts                 []layoutDoc       `yaml:"layouts" json:"layouts"`
	Screens                 []screenDoc       `yaml:"screens" json:"screens"`
	Mouse                   []mouseDoc        `yaml:"mouse" json:"mouse"`
	Colors                  [][2]string       `yaml:"colors" json:"colors"`
	WidgetDefaults          widgetDefaultsDoc `yaml:"widget_defaults" json:"widget_defaults"`
	FloatingLayout          floatingDoc       `yaml:"floating_layout" json:"floating_layout"`
	FollowMouseFocus        bool              `yaml:"follow_mouse_focus" json:"follow_mouse_focus"`
	BringFrontClick         bool              `yaml:"bring_front_click" json:"bring_front_click"`
	CursorWarp              bool              `yaml:"cursor_warp" json:"cursor_warp"`
	AutoFullscreen          bool              `yaml:"auto_fullscreen" json:"auto_fullscreen"`
	FocusOnWindowActivation string            `yaml:"focus_on_window_activation" json:"focus_on_window_activation"`
	ReconfigureScreens      bool              `yaml:"reconfigure_screens" json:"reconfigure_screens"`
	AutoMinimize            bool              `yaml:"auto_minimize" json:"auto_minimize"`
	WMName                  string            `yaml:"wmname" json:"wmname"`
}

func modList(m Mods) []string {
	list := []string{}
	for _, n := range modNames {
		if m&n.mask != 0 {
			list = append(list, n.name)
		}
	}
	return list
}

func commandOf(c Command) commandDoc {
	if c == nil {
		return commandDoc{}
	}
	return commandDoc{Cmd: c.Path(), Args: c.Args()}
}

func colorOf(idx int) any {
	if idx == NoColor {
		return nil
	}
	return idx
}

func barOf(b *Bar) *barDoc {
	if b == nil {
		return nil
	}
	bd := &barDoc{Size: b.Size}
	for _, w := range b.Widgets {
		wd := widgetDoc{
			Name:            string(w.Kind),
			Foreground:      colorOf(w.Fg),
			Background:      colorOf(w.Bg),
			Padding:         w.Padding,
			Font:            w.Font,
			FontSize:        w.FontSize,
			Text:            w.Text,
			Format:          w.Format,
			Fmt:             w.Fmt,
			CustomIconPaths: w.IconPaths,
			Colors:          w.Roles,
			Params:          w.Params,
		}
		if w.FgLiteral != "" {
			wd.Foreground = w.FgLiteral
		}
		for _, dec := range w.Decorations {
			wd.Decorations = append(wd.Decorations, decorationDoc(dec))
		}
		bd.Widgets = append(bd.Widgets, wd)
	}
	return bd
}

func newDocument(c *Config) *document {
	d := &document{}
	for _, k := range c.keys {
		d.Keys = append(d.Keys, keyDoc{
			Mods: modList(k.Mods),
			Key:  KeysymString(k.Keysym),
			Do:   commandOf(k.Command),
			Desc: k.Desc,
		})
	}
	for _, g := range c.groups {
		d.Groups = append(d.Groups, g.Label)
	}
	for _, l := range c.layouts {
		d.Layouts = append(d.Layouts, layoutDoc{
			Name:              string(l.Kind),
			Ratio:             l.Ratio,
			NewClientPosition: l.NewClientPosition,
		})
	}
	for _, s := range c.screens {
		d.Screens = append(d.Screens, screenDoc{
			Wallpaper:     s.Wallpaper,
			WallpaperMode: s.WallpaperMode,
			Top:           barOf(s.Top),
			Bottom:        barOf(s.Bottom),
		})
	}
	for _, m := range c.mouse {
		md := mouseDoc{
			Mods:   modList(m.Mods),
			Button: fmt.Sprintf("Button%d", m.Button),
			Type:   "click",
			Do:     commandOf(m.Command),
		}
		if m.Drag {
			md.Type = "drag"
		}
		if m.Start != nil {
			start := commandOf(m.Start)
			md.Start = &start
		}
		d.Mouse = append(d.Mouse, md)
	}
	for _, p := range c.palette {
		d.Colors = append(d.Colors, [2]string{p.Fg, p.Bg})
	}
	d.WidgetDefaults = widgetDefaultsDoc(c.defaults)
	s := c.settings
	d.FloatingLayout.DefaultFloatRules = s.DefaultFloatRules
	for _, r := range s.FloatRules {
		d.FloatingLayout.FloatRules = append(d.FloatingLayout.FloatRules, floatRuleDoc(r))
	}
	d.FollowMouseFocus = s.FollowMouseFocus
	d.BringFrontClick = s.BringFrontClick
	d.CursorWarp = s.CursorWarp
	d.AutoFullscreen = s.AutoFullscreen
	d.FocusOnWindowActivation = s.FocusOnWindowActivation
	d.ReconfigureScreens = s.ReconfigureScreens
	d.AutoMinimize = s.AutoMinimize
	d.WMName = s.WMName
	return d
}

// Encode writes c to w in the given format.
func Encode(w io.Writer, c *Config, f Format) error {
	d := newDocument(c)
	switch f {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", f)
}

// WriteFile atomically replaces path with the encoding of c, so a runtime
// that reloads concurrently never reads a partial file.
func WriteFile(path string, c *Config, f Format) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending config file: %w", err)
	}
	defer pending.Cleanup()

	if err := Encode(pending, c, f); err != nil {
		return err
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}
	return nil
}
