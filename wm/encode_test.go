package wm

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var contractNames = []string{
	"keys", "groups", "layouts", "screens", "mouse", "colors",
	"follow_mouse_focus", "auto_fullscreen", "wmname", "floating_layout",
	"widget_defaults",
}

func TestEncodeYAMLContract(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Assemble(DefaultOptions()), FormatYAML))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	for _, name := range contractNames {
		assert.Contains(t, doc, name)
	}
	assert.Equal(t, "LG3D", doc["wmname"])
	assert.Equal(t, true, doc["follow_mouse_focus"])
	assert.Equal(t, []any{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, doc["groups"])

	layouts := doc["layouts"].([]any)
	assert.Equal(t, "monadtall", layouts[0].(map[string]any)["name"])
	assert.Equal(t, map[string]any{"name": "spiral", "ratio": 0.5, "new_client_position": "bottom"}, layouts[1])

	floating := doc["floating_layout"].(map[string]any)
	assert.Equal(t, true, floating["default_float_rules"])
	assert.Len(t, floating["float_rules"], 6)
}

func TestEncodeYAMLWidgets(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Assemble(DefaultOptions()), FormatYAML))

	var doc struct {
		Screens []struct {
			Top    map[string]any `yaml:"top"`
			Bottom struct {
				Size    int              `yaml:"size"`
				Widgets []map[string]any `yaml:"widgets"`
			} `yaml:"bottom"`
		} `yaml:"screens"`
		WidgetDefaults map[string]any `yaml:"widget_defaults"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Screens, 1)
	assert.Nil(t, doc.Screens[0].Top)
	bar := doc.Screens[0].Bottom
	assert.Equal(t, 24, bar.Size)
	require.Len(t, bar.Widgets, 19)

	groupBox := bar.Widgets[1]
	assert.Equal(t, "groupbox", groupBox["name"])
	assert.Equal(t, 2, groupBox["foreground"])
	assert.Equal(t, 0, groupBox["background"])
	assert.Equal(t, 6, groupBox["colors"].(map[string]any)["this_current_screen_border"])
	assert.Equal(t, "line", groupBox["params"].(map[string]any)["highlight_method"])

	textBox := bar.Widgets[3]
	assert.Equal(t, "474747", textBox["foreground"])
	assert.Equal(t, 0, textBox["background"])

	assert.NotContains(t, bar.Widgets[9], "foreground")

	keyboard := bar.Widgets[15]
	assert.Equal(t, "Keyboard: {}", keyboard["fmt"])
	assert.Equal(t, []any{map[string]any{
		"kind": "border", "colour": 8, "border_width": []any{0, 0, 2, 0}, "padding_x": 5,
	}}, keyboard["decorations"])

	assert.Equal(t, map[string]any{
		"font": "Ubuntu Bold", "fontsize": 10, "padding": 2, "background": "#dfdfdf",
	}, doc.WidgetDefaults)
}

func TestEncodeYAMLGroupKey(t *testing.T) {
	c := &Config{keys: GroupKeys(Super, []Group{{"3"}})}
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, c, FormatYAML))

	var doc struct {
		Keys []struct {
			Mods []string `yaml:"mods"`
			Key  string   `yaml:"key"`
			Do   struct {
				Cmd  string   `yaml:"cmd"`
				Args []string `yaml:"args"`
			} `yaml:"do"`
		} `yaml:"keys"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Keys, 2)
	assert.Equal(t, []string{"mod4"}, doc.Keys[0].Mods)
	assert.Equal(t, "3", doc.Keys[0].Key)
	assert.Equal(t, "group.toscreen", doc.Keys[0].Do.Cmd)
	assert.Equal(t, []string{"mod4", "shift"}, doc.Keys[1].Mods)
	assert.Equal(t, "window.togroup", doc.Keys[1].Do.Cmd)
	assert.Equal(t, []string{"3", "switch_group=true"}, doc.Keys[1].Do.Args)
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Assemble(DefaultOptions()), FormatJSON))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	for _, name := range contractNames {
		assert.Contains(t, doc, name)
	}
	mouse := doc["mouse"].([]any)
	first := mouse[0].(map[string]any)
	assert.Equal(t, "Button1", first["button"])
	assert.Equal(t, "drag", first["type"])
	assert.Equal(t, "window.get_position", first["start"].(map[string]any)["cmd"])

	colors := doc["colors"].([]any)
	assert.Len(t, colors, 10)
	assert.Equal(t, []any{"#282c34", "#282c34"}, colors[0])
}

func TestEncodeUnknownFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, Assemble(DefaultOptions()), "toml")
	assert.EqualError(t, err, `unknown format "toml"`)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runtime.yaml")
	c := Assemble(DefaultOptions())
	require.NoError(t, WriteFile(path, c, FormatYAML))

	var want bytes.Buffer
	require.NoError(t, Encode(&want, c, FormatYAML))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want.Bytes(), got)

	// A second write replaces the first.
	require.NoError(t, WriteFile(path, c, FormatJSON))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileBadFormatLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runtime.toml")
	assert.Error(t, WriteFile(path, Assemble(DefaultOptions()), "toml"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
