// Package prefs loads the user's preferences, the inputs to wm.Assemble,
// from a config file and the environment.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/nigeltao/taoconf/wm"
)

const (
	appName    = "taoconf"
	configName = "config"
)

// Prefs is the contents of config.yaml.
type Prefs struct {
	Mod           string   `mapstructure:"mod" yaml:"mod"`
	Terminal      string   `mapstructure:"terminal" yaml:"terminal"`
	Browser       string   `mapstructure:"browser" yaml:"browser"`
	Wallpaper     string   `mapstructure:"wallpaper" yaml:"wallpaper"`
	IconDir       string   `mapstructure:"icon_dir" yaml:"icon_dir"`
	Font          string   `mapstructure:"font" yaml:"font"`
	FontSize      int      `mapstructure:"font_size" yaml:"font_size"`
	WlanInterface string   `mapstructure:"wlan_interface" yaml:"wlan_interface"`
	Log           LogPrefs `mapstructure:"log" yaml:"log"`
}

// LogPrefs configures internal/log. An empty Level defers to $LOG_LEVEL.
type LogPrefs struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Dir returns the configuration directory, $XDG_CONFIG_HOME/taoconf.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName)
}

// Options converts p to assembler options.
func (p *Prefs) Options() (wm.Options, error) {
	mod, err := wm.ParseMods(p.Mod)
	if err != nil {
		return wm.Options{}, fmt.Errorf("mod: %w", err)
	}
	if mod == 0 {
		return wm.Options{}, errors.New("mod: must name at least one modifier")
	}
	return wm.Options{
		Mod:           mod,
		Terminal:      p.Terminal,
		Browser:       p.Browser,
		Wallpaper:     p.Wallpaper,
		IconDir:       p.IconDir,
		Font:          p.Font,
		FontSize:      p.FontSize,
		WlanInterface: p.WlanInterface,
	}, nil
}

// Manager handles loading, watching and reloading preferences.
type Manager struct {
	viper     *viper.Viper
	dir       string // searched when no explicit path is given
	mu        sync.RWMutex
	prefs     *Prefs
	callbacks []func(*Prefs)
	watching  bool
}

// NewManager returns a Manager reading path, or config.{yaml,json,toml} in
// Dir() if path is empty.
func NewManager(path string) *Manager {
	v := viper.New()
	dir := Dir()
	if path != "" {
		v.SetConfigFile(path)
		dir = filepath.Dir(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix("TAOCONF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return &Manager{viper: v, dir: dir}
}

func setDefaults(v *viper.Viper) {
	d := wm.DefaultOptions()
	dir := Dir()
	v.SetDefault("mod", d.Mod.String())
	v.SetDefault("terminal", d.Terminal)
	v.SetDefault("browser", d.Browser)
	v.SetDefault("wallpaper", d.Wallpaper)
	v.SetDefault("icon_dir", filepath.Join(dir, "icons"))
	v.SetDefault("font", d.Font)
	v.SetDefault("font_size", d.FontSize)
	v.SetDefault("wlan_interface", d.WlanInterface)
	v.SetDefault("log.format", "console")
	// No level default, so that $LOG_LEVEL applies when nothing is
	// configured. Without a default, AutomaticEnv alone cannot find the key.
	_ = v.BindEnv("log.level", "TAOCONF_LOG_LEVEL")
}

// Load reads the config file, if any, and the environment. A missing
// config file is not an error.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load()
}

// load must be called with m.mu held.
func (m *Manager) load() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	p := &Prefs{}
	if err := m.viper.Unmarshal(p); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := p.Options(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	m.prefs = p
	return nil
}

// Get returns a copy of the current preferences.
func (m *Manager) Get() *Prefs {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p := *m.prefs
	return &p
}

// ConfigFile is the explicit config path, or the config file found in Dir(),
// or "" if there is none yet.
func (m *Manager) ConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.ConfigFileUsed()
}

// OnChange registers a callback run after every successful reload.
func (m *Manager) OnChange(callback func(*Prefs)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// Watch reloads the preferences whenever the config file changes. A reload
// that fails keeps the previous preferences. If no config file exists yet,
// Watch waits for one to be created in the config directory.
func (m *Manager) Watch(log zerolog.Logger) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watching {
		return nil
	}
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		m.mu.Lock()
		err := m.load()
		m.notifyLocked(log, e.Name, err)
	})
	if m.viper.ConfigFileUsed() == "" {
		log.Warn().Str("dir", m.dir).Msg("no config file yet, watching the directory for one")
		if err := m.awaitConfig(log); err != nil {
			return err
		}
	} else {
		m.viper.WatchConfig()
	}
	m.watching = true
	return nil
}

// notifyLocked logs the outcome of a reload and, if it succeeded, runs the
// callbacks. It must be called with m.mu held, and releases it.
func (m *Manager) notifyLocked(log zerolog.Logger, file string, err error) {
	prefs := m.prefs
	callbacks := append([]func(*Prefs)(nil), m.callbacks...)
	m.mu.Unlock()
	if err != nil {
		log.Warn().Err(err).Str("file", file).Msg("config reload failed")
		return
	}
	log.Info().Str("file", file).Msg("config reloaded")
	for _, cb := range callbacks {
		p := *prefs
		cb(&p)
	}
}

func isConfigFile(path string) bool {
	switch filepath.Base(path) {
	case configName + ".yaml", configName + ".yml", configName + ".json", configName + ".toml":
		return true
	}
	return false
}

// awaitConfig watches m.dir until a config file appears, loads it, and hands
// over to viper's own watch. It must be called with m.mu held.
func (m *Manager) awaitConfig(log zerolog.Logger) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config dir: %w", err)
	}
	if err := w.Add(m.dir); err != nil {
		w.Close()
		return fmt.Errorf("watch config dir: %w", err)
	}
	go func() {
		defer w.Close()
		for {
			select {
			case e, ok := <-w.Events:
				if !ok {
					return
				}
				if e.Op&(fsnotify.Create|fsnotify.Write) == 0 || !isConfigFile(e.Name) {
					continue
				}
				m.mu.Lock()
				err := m.load()
				found := m.viper.ConfigFileUsed() != ""
				if found {
					m.viper.WatchConfig()
					// Pick up anything written before viper's watch started.
					err = m.load()
				}
				m.notifyLocked(log, e.Name, err)
				if found {
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Str("dir", m.dir).Msg("config dir watch failed")
			}
		}
	}()
	return nil
}
