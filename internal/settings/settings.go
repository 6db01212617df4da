// Package settings persists desktop preferences in ~/.basalt/config.toml.
package settings

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

const (
	defaultTheme    = "dark"
	defaultFontSize = 14
	minFontSize     = 8
	maxFontSize     = 32
)

// Desktop represents the [desktop] section of config.toml.
type Desktop struct {
	Theme  string `toml:"theme" json:"theme"` // "dark", "light", or "auto"
	Editor Editor `toml:"editor" json:"editor"`
}

// Editor represents editor preferences for the note surface.
type Editor struct {
	// FontSize is the editor font size in pixels. Range: 8-32.
	FontSize int `toml:"font_size" json:"fontSize"`
}

// fileConfig is the on-disk shape of config.toml.
type fileConfig struct {
	Desktop Desktop `toml:"desktop"`
}

// Store reads and writes desktop settings. A mutex serializes access
// so concurrent setters never lose each other's read-modify-write.
type Store struct {
	mu         sync.Mutex
	configPath string
}

// NewStore returns a store backed by the user's config file.
func NewStore() *Store {
	home, _ := os.UserHomeDir()
	return NewStoreAt(filepath.Join(home, ".basalt", "config.toml"))
}

// NewStoreAt returns a store backed by an explicit config path.
func NewStoreAt(path string) *Store {
	return &Store{configPath: path}
}

// Load reads the desktop settings, applying defaults for a missing file,
// an unparseable file, or out-of-range values.
func (s *Store) Load() (*Desktop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// load reads without locking; callers must hold mu.
func (s *Store) load() (*Desktop, error) {
	defaults := &Desktop{
		Theme:  defaultTheme,
		Editor: Editor{FontSize: defaultFontSize},
	}

	data, err := os.ReadFile(s.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return nil, err
	}

	var config fileConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return defaults, nil // Return defaults on parse error
	}

	desktop := config.Desktop
	if !validTheme(desktop.Theme) {
		desktop.Theme = defaultTheme
	}
	if desktop.Editor.FontSize < minFontSize || desktop.Editor.FontSize > maxFontSize {
		desktop.Editor.FontSize = defaultFontSize
	}
	return &desktop, nil
}

// SetTheme validates and persists the theme preference.
func (s *Store) SetTheme(theme string) error {
	if !validTheme(theme) {
		return fmt.Errorf("invalid theme %q: must be dark, light, or auto", theme)
	}
	return s.update(func(d *Desktop) {
		d.Theme = theme
	})
}

// SetFontSize validates and persists the editor font size.
func (s *Store) SetFontSize(size int) error {
	if size < minFontSize || size > maxFontSize {
		return fmt.Errorf("invalid font size %d: must be between %d and %d", size, minFontSize, maxFontSize)
	}
	return s.update(func(d *Desktop) {
		d.Editor.FontSize = size
	})
}

func (s *Store) update(mutate func(*Desktop)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return err
	}
	mutate(current)

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(fileConfig{Desktop: *current}); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(s.configPath, buf.Bytes(), 0644)
}

func validTheme(theme string) bool {
	switch theme {
	case "dark", "light", "auto":
		return true
	}
	return false
}
