package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Prefs represents persisted presenter preferences.
type Prefs struct {
	Theme               string        `yaml:"theme"`
	MarkdownStyle       string        `yaml:"markdown_style"`
	AutoAdvanceInterval time.Duration `yaml:"auto_advance_interval"`
	SwipeThresholdPx    int           `yaml:"swipe_threshold_px"`
	ShowNotes           bool          `yaml:"show_notes"`
	AltScreen           *bool         `yaml:"alt_screen"`
}

const (
	DefaultTheme               = "dark"
	DefaultAutoAdvanceInterval = 30 * time.Second
	DefaultSwipeThresholdPx    = 50
)

// Defaults returns the preferences used when nothing is configured.
func Defaults() Prefs {
	alt := true
	return Prefs{
		Theme:               DefaultTheme,
		MarkdownStyle:       DefaultTheme,
		AutoAdvanceInterval: DefaultAutoAdvanceInterval,
		SwipeThresholdPx:    DefaultSwipeThresholdPx,
		AltScreen:           &alt,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/slidium/config.yaml, or the
// platform config dir equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, "slidium", "config.yaml"), nil
}

// Load reads preferences from path. A missing file yields defaults.
func Load(path string) (Prefs, error) {
	p := Defaults()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read prefs: %w", err)
	}
	var u Prefs
	if err := yaml.Unmarshal(b, &u); err != nil {
		return p, fmt.Errorf("parse prefs %s: %w", path, err)
	}
	// Merge, keeping defaults for unset fields
	if t := strings.ToLower(strings.TrimSpace(u.Theme)); t != "" {
		p.Theme = t
		p.MarkdownStyle = t
	}
	if u.MarkdownStyle != "" {
		p.MarkdownStyle = u.MarkdownStyle
	}
	if u.AutoAdvanceInterval > 0 {
		p.AutoAdvanceInterval = u.AutoAdvanceInterval
	}
	if u.SwipeThresholdPx > 0 {
		p.SwipeThresholdPx = u.SwipeThresholdPx
	}
	if u.AltScreen != nil {
		p.AltScreen = u.AltScreen
	}
	p.ShowNotes = u.ShowNotes
	return p, nil
}

// UseAltScreen reports whether the presentation starts full screen.
func (p Prefs) UseAltScreen() bool {
	return p.AltScreen == nil || *p.AltScreen
}

// Save writes preferences to path, replacing it atomically.
func Save(path string, p Prefs) error {
	if p.AutoAdvanceInterval < 0 {
		return fmt.Errorf("invalid auto-advance interval: %s", p.AutoAdvanceInterval)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	b, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.yaml")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
