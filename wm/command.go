package wm

import (
	"errors"
	"fmt"
	"strconv"
)

// Direction is a layout traversal direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "direction(" + strconv.Itoa(int(d)) + ")"
}

// Kind identifies a Command variant.
type Kind int

const (
	KindSpawn Kind = iota
	KindSpawnPrompt
	KindFocus
	KindFocusNext
	KindShuffle
	KindGrow
	KindNormalize
	KindToggleSplit
	KindNextLayout
	KindKillWindow
	KindToggleFullscreen
	KindToggleFloating
	KindReload
	KindShutdown
	KindSwitchGroup
	KindMoveToGroup
	KindNextScreen
	KindDragFloatPosition
	KindDragFloatSize
	KindWindowPosition
	KindWindowSize
	KindBringToFront
	nKinds
)

// Command is one of the closed set of runtime commands below. The runtime
// resolves a Command through a Dispatcher rather than calling into it.
type Command interface {
	Kind() Kind
	// Path is the runtime's dotted command name, such as "layout.left".
	Path() string
	// Args are the positional arguments that go with Path.
	Args() []string
}

type (
	// Spawn runs a program.
	Spawn struct{ Argv []string }
	// SpawnPrompt opens the bar's command prompt.
	SpawnPrompt struct{}
	// Focus moves the focus within the layout.
	Focus struct{ Dir Direction }
	// FocusNext moves the focus to the next window.
	FocusNext struct{}
	// Shuffle swaps the focused window with its neighbour.
	Shuffle struct{ Dir Direction }
	// Grow resizes the focused window.
	Grow struct{ Dir Direction }
	// Normalize resets all window sizes.
	Normalize struct{}
	// ToggleSplit toggles between split and unsplit sides of a stack.
	ToggleSplit struct{}
	// NextLayout cycles the group to its next layout.
	NextLayout struct{}
	// KillWindow closes the focused window.
	KillWindow struct{}
	// ToggleFullscreen toggles fullscreen on the focused window.
	ToggleFullscreen struct{}
	// ToggleFloating toggles floating on the focused window.
	ToggleFloating struct{}
	// Reload re-reads the configuration.
	Reload struct{}
	// Shutdown ends the session.
	Shutdown struct{}
	// SwitchGroup shows the group on the active screen.
	SwitchGroup struct{ Label string }
	// MoveToGroup moves the focused window to a group, following it if
	// Follow is set.
	MoveToGroup struct {
		Label  string
		Follow bool
	}
	// NextScreen moves the focus to the next screen.
	NextScreen struct{}
	// DragFloatPosition moves a floating window during a mouse drag.
	DragFloatPosition struct{}
	// DragFloatSize resizes a floating window during a mouse drag.
	DragFloatSize struct{}
	// WindowPosition captures the window position when a drag starts.
	WindowPosition struct{}
	// WindowSize captures the window size when a drag starts.
	WindowSize struct{}
	// BringToFront raises the clicked window.
	BringToFront struct{}
)

func (Spawn) Kind() Kind             { return KindSpawn }
func (SpawnPrompt) Kind() Kind       { return KindSpawnPrompt }
func (Focus) Kind() Kind             { return KindFocus }
func (FocusNext) Kind() Kind         { return KindFocusNext }
func (Shuffle) Kind() Kind           { return KindShuffle }
func (Grow) Kind() Kind              { return KindGrow }
func (Normalize) Kind() Kind         { return KindNormalize }
func (ToggleSplit) Kind() Kind       { return KindToggleSplit }
func (NextLayout) Kind() Kind        { return KindNextLayout }
func (KillWindow) Kind() Kind        { return KindKillWindow }
func (ToggleFullscreen) Kind() Kind  { return KindToggleFullscreen }
func (ToggleFloating) Kind() Kind    { return KindToggleFloating }
func (Reload) Kind() Kind            { return KindReload }
func (Shutdown) Kind() Kind          { return KindShutdown }
func (SwitchGroup) Kind() Kind       { return KindSwitchGroup }
func (MoveToGroup) Kind() Kind       { return KindMoveToGroup }
func (NextScreen) Kind() Kind        { return KindNextScreen }
func (DragFloatPosition) Kind() Kind { return KindDragFloatPosition }
func (DragFloatSize) Kind() Kind     { return KindDragFloatSize }
func (WindowPosition) Kind() Kind    { return KindWindowPosition }
func (WindowSize) Kind() Kind        { return KindWindowSize }
func (BringToFront) Kind() Kind      { return KindBringToFront }

func (Spawn) Path() string             { return "spawn" }
func (SpawnPrompt) Path() string       { return "spawncmd" }
func (c Focus) Path() string           { return "layout." + c.Dir.String() }
func (FocusNext) Path() string         { return "layout.next" }
func (c Shuffle) Path() string         { return "layout.shuffle_" + c.Dir.String() }
func (c Grow) Path() string            { return "layout.grow_" + c.Dir.String() }
func (Normalize) Path() string         { return "layout.normalize" }
func (ToggleSplit) Path() string       { return "layout.toggle_split" }
func (NextLayout) Path() string        { return "next_layout" }
func (KillWindow) Path() string        { return "window.kill" }
func (ToggleFullscreen) Path() string  { return "window.toggle_fullscreen" }
func (ToggleFloating) Path() string    { return "window.toggle_floating" }
func (Reload) Path() string            { return "reload_config" }
func (Shutdown) Path() string          { return "shutdown" }
func (SwitchGroup) Path() string       { return "group.toscreen" }
func (MoveToGroup) Path() string       { return "window.togroup" }
func (NextScreen) Path() string        { return "next_screen" }
func (DragFloatPosition) Path() string { return "window.set_position_floating" }
func (DragFloatSize) Path() string     { return "window.set_size_floating" }
func (WindowPosition) Path() string    { return "window.get_position" }
func (WindowSize) Path() string        { return "window.get_size" }
func (BringToFront) Path() string      { return "window.bring_to_front" }

func (c Spawn) Args() []string           { return append([]string(nil), c.Argv...) }
func (SpawnPrompt) Args() []string       { return nil }
func (Focus) Args() []string             { return nil }
func (FocusNext) Args() []string         { return nil }
func (Shuffle) Args() []string           { return nil }
func (Grow) Args() []string              { return nil }
func (Normalize) Args() []string         { return nil }
func (ToggleSplit) Args() []string       { return nil }
func (NextLayout) Args() []string        { return nil }
func (KillWindow) Args() []string        { return nil }
func (ToggleFullscreen) Args() []string  { return nil }
func (ToggleFloating) Args() []string    { return nil }
func (Reload) Args() []string            { return nil }
func (Shutdown) Args() []string          { return nil }
func (c SwitchGroup) Args() []string     { return []string{c.Label} }
func (NextScreen) Args() []string        { return nil }
func (DragFloatPosition) Args() []string { return nil }
func (DragFloatSize) Args() []string     { return nil }
func (WindowPosition) Args() []string    { return nil }
func (WindowSize) Args() []string        { return nil }
func (BringToFront) Args() []string      { return nil }

func (c MoveToGroup) Args() []string {
	return []string{c.Label, "switch_group=" + strconv.FormatBool(c.Follow)}
}

// ErrNoHandler is returned by Dispatch for a command kind nobody handles.
var ErrNoHandler = errors.New("no handler for command")

// Dispatcher maps command kinds to the runtime's handlers for them.
type Dispatcher struct {
	handlers [nKinds]func(Command) error
}

// Handle registers fn for kind, replacing any earlier handler.
func (d *Dispatcher) Handle(kind Kind, fn func(Command) error) {
	if kind < 0 || kind >= nKinds {
		panic(fmt.Sprintf("wm: invalid command kind %d", kind))
	}
	d.handlers[kind] = fn
}

// Dispatch runs the handler registered for c's kind.
func (d *Dispatcher) Dispatch(c Command) error {
	if c == nil {
		return ErrNoHandler
	}
	k := c.Kind()
	if k < 0 || k >= nKinds || d.handlers[k] == nil {
		return fmt.Errorf("%w: %s", ErrNoHandler, c.Path())
	}
	return d.handlers[k](c)
}
