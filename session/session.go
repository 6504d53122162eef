// Package session registers the window manager with a desktop session
// manager when it was started by one.
package session

import (
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// AutostartEnv is set by session managers that launch autostart clients.
const AutostartEnv = "DESKTOP_AUTOSTART_ID"

// Starter starts a program without waiting for it.
type Starter interface {
	Start(argv []string) error
}

type execStarter struct {
	log zerolog.Logger
}

func (s execStarter) Start(argv []string) error {
	c := exec.Command(argv[0], argv[1:]...)
	if err := c.Start(); err != nil {
		return err
	}
	go func() {
		if err := c.Wait(); err != nil {
			s.log.Debug().Err(err).Str("program", argv[0]).Msg("session registration failed")
		}
	}()
	return nil
}

// Registrar sends the one-shot RegisterClient message.
type Registrar struct {
	// App is the client name given to the session manager.
	App     string
	Lookup  func(string) (string, bool)
	Starter Starter
	Log     zerolog.Logger
}

// NewRegistrar returns a Registrar that reads the real environment and runs
// dbus-send.
func NewRegistrar(app string, log zerolog.Logger) *Registrar {
	return &Registrar{
		App:     app,
		Lookup:  os.LookupEnv,
		Starter: execStarter{log: log},
		Log:     log,
	}
}

// Command returns the dbus-send invocation that registers id.
func (r *Registrar) Command(id string) []string {
	return []string{
		"dbus-send",
		"--session",
		"--print-reply",
		"--dest=org.gnome.SessionManager",
		"/org/gnome/SessionManager",
		"org.gnome.SessionManager.RegisterClient",
		"string:" + r.App,
		"string:" + id,
	}
}

// Register spawns the registration command if AutostartEnv is set, and
// reports whether it did. It neither waits for the command nor reports its
// failure.
func (r *Registrar) Register() bool {
	id, ok := r.Lookup(AutostartEnv)
	if !ok || id == "" {
		return false
	}
	argv := r.Command(id)
	if err := r.Starter.Start(argv); err != nil {
		r.Log.Debug().Err(err).Strs("argv", argv).Msg("session registration not started")
		return true
	}
	r.Log.Debug().Str("id", id).Msg("session registration started")
	return true
}
