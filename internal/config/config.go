// Package config provides configuration management for the key toggler.
package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	// Key is the name of the virtual key to toggle (e.g. "capslock", "f15")
	Key string `json:"key"`

	// IntervalMS is the injection cycle period in milliseconds
	IntervalMS int `json:"interval_ms"`

	// SendKeyUp pairs every key-down with a key-up event
	SendKeyUp bool `json:"send_key_up"`

	// StartPaused starts the loop with injection suppressed
	StartPaused bool `json:"start_paused"`

	// StartOnBoot determines if the app starts on login
	StartOnBoot bool `json:"start_on_boot"`

	// ShowNotifications shows desktop notifications on pause/resume
	ShowNotifications bool `json:"show_notifications"`

	// PauseHotkey is the global hotkey to toggle pause (e.g. "Ctrl+Alt+P")
	PauseHotkey string `json:"pause_hotkey,omitempty"`
}

// Interval returns the cycle period as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// DefaultConfig returns a new Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Key:               "capslock",
		IntervalMS:        1000,
		SendKeyUp:         false,
		ShowNotifications: true,
		PauseHotkey:       "Ctrl+Alt+P",
	}
}

// Manager handles loading and saving configuration
type Manager struct {
	mu         sync.Mutex
	configPath string
	config     *Config
	onChanged  func()
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	return &Manager{
		configPath: configPath,
		config:     DefaultConfig(),
	}, nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, "Library", "Application Support", "vktoggle")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, "vktoggle")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config", "vktoggle")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load reads the configuration from disk and applies environment variable
// overrides on top of it. Overrides beat the file; flags beat both.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.configPath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if err == nil {
		if err := json.Unmarshal(data, m.config); err != nil {
			return err
		}
	}

	m.applyEnv()

	if m.onChanged != nil {
		m.onChanged()
	}
	return nil
}

// applyEnv overrides config fields from VKTOGGLE_* environment variables,
// honoring a .env file in the working directory. Called with mu held.
func (m *Manager) applyEnv() {
	// A missing .env file is the normal case.
	godotenv.Load()

	if key := os.Getenv("VKTOGGLE_KEY"); key != "" {
		m.config.Key = key
	}
	if v := os.Getenv("VKTOGGLE_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			m.config.IntervalMS = ms
		} else {
			log.Printf("Config: ignoring invalid VKTOGGLE_INTERVAL_MS=%q", v)
		}
	}
	if v := os.Getenv("VKTOGGLE_SEND_KEY_UP"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			m.config.SendKeyUp = b
		}
	}
	if hk := os.Getenv("VKTOGGLE_PAUSE_HOTKEY"); hk != "" {
		m.config.PauseHotkey = hk
	}
}

// Save writes the configuration to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return err
	}

	log.Printf("Config: Saving configuration to %s (%d bytes)", m.configPath, len(data))
	return os.WriteFile(m.configPath, data, 0644)
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.config
}

// Set updates the configuration
func (m *Manager) Set(config *Config) {
	m.mu.Lock()
	m.config = config
	m.mu.Unlock()
	if m.onChanged != nil {
		m.onChanged()
	}
}

// RegisterChangeCallback registers a function to be called when config changes
func (m *Manager) RegisterChangeCallback(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChanged = fn
}
