/*
Taoconf assembles the configuration of a tiling window manager: its key
bindings, mouse bindings, workspace groups, layout cycle, status bar widgets,
color palette and scalar settings. It does not manage windows itself. The
window manager runtime reads the file that taoconf writes, once at startup
and again whenever asked to reload.


INSTALLATION

To install taoconf:
	1. Install Go (as per http://golang.org/doc/install or get it from
	   your distribution).
	2. Run "go install github.com/nigeltao/taoconf/taoconf@latest".


USAGE

"taoconf dump" prints the assembled configuration as YAML, or as JSON with
"--format json". "taoconf keys" prints a table of every key binding, and
"taoconf check" reports bindings that shadow each other, palette indexes
that are out of range and other defects. With "--probe", check also
connects to the X display and warns if it has more screens than there are
bar configurations.

"taoconf run" is meant to be started by the desktop session. It registers
with the session manager if DESKTOP_AUTOSTART_ID is set, writes the runtime
file, announces XSETTINGS, and rewrites the runtime file whenever
config.yaml changes.

Every binding involves the Super key, the one typically between the left
Control and Alt keys. Super and a number key 1 to 9 shows that group on the
current screen. Super, Shift and a number key moves the focused window to
that group and follows it there. Super and H, J, K or L moves the focus
left, down, up or right; adding Shift moves the window and adding Control
grows it. Super and Tab cycles through the layouts. Super and the Enter key
will open a new terminal emulator window.


CUSTOMIZATION

The terminal, browser, wallpaper, layout icon directory, font, wireless
interface and the modifier key are read from
$XDG_CONFIG_HOME/taoconf/config.yaml, for example:
	mod: alt
	terminal: kitty
	wlan_interface: wlan0
Any of these can be overridden by an environment variable such as
TAOCONF_TERMINAL. Changing the bindings themselves is done by editing
wm/assemble.go and re-compiling.
*/
package main
