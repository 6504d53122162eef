package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nigeltao/taoconf/display"
	"github.com/nigeltao/taoconf/internal/log"
	"github.com/nigeltao/taoconf/internal/prefs"
	"github.com/nigeltao/taoconf/session"
	"github.com/nigeltao/taoconf/wm"
	"github.com/nigeltao/taoconf/xsettings"
)

func (a *app) runCmd() *cobra.Command {
	var output, format, displayName string
	var noXSettings bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Register with the session, write the runtime file and keep it current",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session.NewRegistrar("taoconf", log.WithComponent("session")).Register()

			if output == "" {
				output = filepath.Join(prefs.Dir(), "runtime."+format)
			}
			if err := writeRuntime(output, wm.Format(format), a.prefs.Get(), a.log); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if !noXSettings {
				go a.announce(ctx, displayName)
			}

			a.prefs.OnChange(func(p *prefs.Prefs) {
				if err := writeRuntime(output, wm.Format(format), p, a.log); err != nil {
					a.log.Warn().Err(err).Msg("runtime file not rewritten")
				}
			})
			if err := a.prefs.Watch(log.WithComponent("prefs")); err != nil {
				a.log.Warn().Err(err).Msg("preference changes will not be picked up")
			}

			<-ctx.Done()
			a.log.Info().Msg("exiting")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "runtime file (default $XDG_CONFIG_HOME/taoconf/runtime.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", string(wm.FormatYAML), `runtime file format, "yaml" or "json"`)
	cmd.Flags().StringVar(&displayName, "display", "", "X display for XSETTINGS (default $DISPLAY)")
	cmd.Flags().BoolVar(&noXSettings, "no-xsettings", false, "leave XSETTINGS to another program")
	return cmd
}

// writeRuntime assembles p and replaces the runtime file with it. The
// configuration is written even if it fails validation; the problems are
// logged for "taoconf check" to explain.
func writeRuntime(path string, f wm.Format, p *prefs.Prefs, l zerolog.Logger) error {
	c, err := assemble(p)
	if err != nil {
		return err
	}
	if err := wm.Validate(c); err != nil {
		l.Warn().Err(err).Msg("configuration has problems")
	}
	if err := wm.WriteFile(path, c, f); err != nil {
		return err
	}
	l.Info().Str("file", path).Int("keys", len(c.Keys())).Msg("runtime file written")
	return nil
}

// announce publishes XSETTINGS until ctx is done. Without a display it logs
// and gives up.
func (a *app) announce(ctx context.Context, name string) {
	l := log.WithComponent("xsettings")
	conn, err := display.Connect(name)
	if err != nil {
		l.Warn().Err(err).Msg("could not connect to the X display")
		return
	}
	defer conn.Close()
	owner, err := xsettings.NewOwnerWindow(conn)
	if err != nil {
		l.Warn().Err(err).Send()
		return
	}
	if err := xsettings.Announce(conn, owner, xsettings.Defaults); err != nil {
		l.Warn().Err(err).Send()
		return
	}
	l.Info().Int("settings", len(xsettings.Defaults)).Msg("xsettings announced")
	<-ctx.Done()
}
