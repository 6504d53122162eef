// Package display finds the physical screens of an X display.
package display

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	xp "github.com/BurntSushi/xgb/xproto"
)

// Screens returns one rectangle per physical screen. Without Xinerama, or
// when it reports no screens, the root window is the only screen.
func Screens(conn *xgb.Conn) ([]xp.Rectangle, error) {
	setup := xp.Setup(conn)
	if len(setup.Roots) != 1 {
		return nil, fmt.Errorf("X setup has unsupported number of roots: %d", len(setup.Roots))
	}
	root := setup.Roots[0]
	var infos []xinerama.ScreenInfo
	if err := xinerama.Init(conn); err == nil {
		xine, err := xinerama.QueryScreens(conn).Reply()
		if err != nil {
			return nil, fmt.Errorf("xinerama: %w", err)
		}
		infos = xine.ScreenInfo
	}
	return rects(infos, root.WidthInPixels, root.HeightInPixels), nil
}

func rects(infos []xinerama.ScreenInfo, width, height uint16) []xp.Rectangle {
	if len(infos) == 0 {
		return []xp.Rectangle{{X: 0, Y: 0, Width: width, Height: height}}
	}
	rs := make([]xp.Rectangle, len(infos))
	for i, si := range infos {
		rs[i] = xp.Rectangle{
			X:      si.XOrg,
			Y:      si.YOrg,
			Width:  si.Width,
			Height: si.Height,
		}
	}
	return rs
}

// Connect opens the display named by name, or $DISPLAY if name is empty.
func Connect(name string) (*xgb.Conn, error) {
	if name == "" {
		return xgb.NewConn()
	}
	return xgb.NewConnDisplay(name)
}
