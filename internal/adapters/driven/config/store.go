package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Store is a TOML-backed settings file. Values are held in memory; Set
// persists immediately.
type Store struct {
	mu       sync.RWMutex
	filePath string
	settings Settings
}

// NewStore creates a store rooted at configDir.
// If configDir is empty, defaults to ~/.esq/config.toml.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".esq")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &Store{
		filePath: filepath.Join(configDir, "config.toml"),
		settings: Default(),
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Set updates a single key from its string form and persists. Keys use the
// TOML names, nested tables dotted: "es_path", "mcp.rate_burst".
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case "es_path":
		s.settings.ESPath = value
	case "default_timeout_ms":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s wants an integer: %w", key, err)
		}
		s.settings.DefaultTimeoutMS = n
	case "default_max_results":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s wants an integer: %w", key, err)
		}
		s.settings.DefaultMaxResults = n
	case "mcp.rate_per_second":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s wants a number: %w", key, err)
		}
		s.settings.MCP.RatePerSecond = f
	case "mcp.rate_burst":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s wants an integer: %w", key, err)
		}
		s.settings.MCP.RateBurst = n
	default:
		return fmt.Errorf("unknown setting %q (known: %s)", key, knownKeys)
	}

	return s.save()
}

const knownKeys = "es_path, default_timeout_ms, default_max_results, mcp.rate_per_second, mcp.rate_burst"

// Save persists the current settings to disk.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes settings to the TOML file (caller must hold lock).
func (s *Store) save() error {
	data, err := toml.Marshal(s.settings)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads settings from the TOML file. A missing file leaves the
// defaults in place.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.settings = Default()
			return nil
		}
		return err
	}

	loaded := Default()
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}

	s.settings = loaded
	return nil
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.filePath
}
