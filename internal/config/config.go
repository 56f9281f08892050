package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	appName      = "basemaster"
	configFile   = "config.yaml"
	tomlFile     = "config.toml"
	logFile      = "basemaster.log"
	configHeader = `# basemaster configuration file
#
# parse.mode:     permissive (read the leading numeral, wrap negatives)
#                 or strict (digits of the radix only)
# ui.start_field: dec, hex, oct or bin
# log.level:      debug, info, warn or error (empty = silent)
`
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/basemaster or $HOME/.config/basemaster
//   - macOS: $HOME/.config/basemaster
//   - Windows: %LOCALAPPDATA%\basemaster
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			return filepath.Join(xdgConfigHome, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetConfigPath returns the path of the configuration file that Load reads
// when no explicit path is given: config.yaml, or config.toml when only
// that one exists.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	yamlPath := filepath.Join(configDir, configFile)
	if _, err := os.Stat(yamlPath); errors.Is(err, os.ErrNotExist) {
		tomlPath := filepath.Join(configDir, tomlFile)
		if _, err := os.Stat(tomlPath); err == nil {
			return tomlPath, nil
		}
	}
	return yamlPath, nil
}

// DefaultLogPath returns the log file used by the interactive UI when the
// config does not name one.
func DefaultLogPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, logFile), nil
}

// Load reads the configuration at path, or the default location when path
// is empty. A missing file yields the defaults. Files ending in .toml are
// decoded as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Decode over the defaults so keys missing from the file keep them
	cfg := NewConfig()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to path, or the default location when path
// is empty. Performs an atomic write to prevent corruption on crash.
func (c *Config) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if path == "" {
		configDir, err := GetConfigDir()
		if err != nil {
			return fmt.Errorf("failed to get config directory: %w", err)
		}
		path = filepath.Join(configDir, configFile)
	}

	// Create directory with user-only permissions (0700)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Encode(path)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// Encode renders the configuration in the format implied by path's
// extension, with a comment header.
func (c *Config) Encode(path string) ([]byte, error) {
	var b strings.Builder
	b.WriteString(configHeader)
	b.WriteString("\n")

	if isTOML(path) {
		if err := toml.NewEncoder(&b).Encode(c); err != nil {
			return nil, fmt.Errorf("failed to marshal config: %w", err)
		}
		return []byte(b.String()), nil
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	b.Write(data)
	return []byte(b.String()), nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
