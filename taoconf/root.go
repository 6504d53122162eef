package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nigeltao/taoconf/display"
	"github.com/nigeltao/taoconf/internal/log"
	"github.com/nigeltao/taoconf/internal/prefs"
	"github.com/nigeltao/taoconf/wm"
)

type app struct {
	configPath string
	logLevel   string
	logFormat  string

	prefs *prefs.Manager
	log   zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "taoconf",
		Short:         "Assemble a tiling window manager configuration",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.init()
		},
	}
	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/taoconf/config.yaml)")
	f.StringVar(&a.logLevel, "log-level", "", "log level, overriding the config file")
	f.StringVar(&a.logFormat, "log-format", "", `log format, "console" or "json"`)

	root.AddCommand(a.dumpCmd(), a.checkCmd(), a.keysCmd(), a.runCmd())
	return root
}

func (a *app) init() error {
	a.prefs = prefs.NewManager(a.configPath)
	if err := a.prefs.Load(); err != nil {
		return err
	}
	p := a.prefs.Get()
	cfg := log.Config{Level: p.Log.Level, Format: p.Log.Format}
	if a.logLevel != "" {
		cfg.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Format = a.logFormat
	}
	log.Configure(cfg)
	a.log = log.WithComponent("taoconf")
	if file := a.prefs.ConfigFile(); file != "" {
		a.log.Debug().Str("file", file).Msg("config loaded")
	}
	return nil
}

func (a *app) assemble() (*wm.Config, error) {
	return assemble(a.prefs.Get())
}

func assemble(p *prefs.Prefs) (*wm.Config, error) {
	o, err := p.Options()
	if err != nil {
		return nil, err
	}
	return wm.Assemble(o), nil
}

func (a *app) dumpCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the assembled configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.assemble()
			if err != nil {
				return err
			}
			if output != "" {
				return wm.WriteFile(output, c, wm.Format(format))
			}
			return wm.Encode(cmd.OutOrStdout(), c, wm.Format(format))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(wm.FormatYAML), `output format, "yaml" or "json"`)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	var probe bool
	var displayName string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report defects in the assembled configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.assemble()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			n := 0
			for _, e := range problems(wm.Validate(c)) {
				// Which of two duplicate bindings wins is the runtime's call.
				if errors.Is(e, wm.ErrDuplicateBinding) {
					fmt.Fprintln(out, "warning:", e)
					continue
				}
				fmt.Fprintln(out, e)
				n++
			}
			if probe {
				a.probeScreens(displayName, len(c.Screens()))
			}
			if n > 0 {
				return fmt.Errorf("%d problem(s) found", n)
			}
			fmt.Fprintf(out, "ok: %d keys, %d groups, %d layouts\n",
				len(c.Keys()), len(c.Groups()), len(c.Layouts()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&probe, "probe", false, "compare against the screens of the X display")
	cmd.Flags().StringVar(&displayName, "display", "", "X display to probe (default $DISPLAY)")
	return cmd
}

// problems splits a Validate error into its parts.
func problems(err error) []error {
	if err == nil {
		return nil
	}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}

// probeScreens only warns: the runtime reuses the last screen configuration
// for any extra physical screens.
func (a *app) probeScreens(name string, configured int) {
	conn, err := display.Connect(name)
	if err != nil {
		a.log.Warn().Err(err).Msg("could not connect to the X display")
		return
	}
	defer conn.Close()
	rects, err := display.Screens(conn)
	if err != nil {
		a.log.Warn().Err(err).Msg("could not query screens")
		return
	}
	if len(rects) > configured {
		a.log.Warn().Int("physical", len(rects)).Int("configured", configured).
			Msg("more screens than bar configurations")
		return
	}
	a.log.Info().Int("physical", len(rects)).Int("configured", configured).Msg("screens ok")
}
