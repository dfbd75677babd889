package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "BRUSHPAINT_CONFIG"

// Loader handles loading the configuration.
type Loader struct {
	Version      string // Build version, used to determine dev mode
	OverridePath string // Set at compile time or from the command line
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load reads the first config file found, or returns defaults when there is
// none.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// GetConfigPath returns the path to the configuration file, or empty string if not found.
func (l *Loader) GetConfigPath() string {
	for _, path := range l.candidates() {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// DefaultSavePath is where `config save` writes when no file exists yet.
func (l *Loader) DefaultSavePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.rc"), nil
}

func (l *Loader) candidates() []string {
	paths := []string{l.OverridePath, os.Getenv(EnvConfigPath)}
	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, filepath.Join(wd, ".brushpaintrc"))
		}
	}
	if dir, err := configDir(); err == nil {
		paths = append(paths,
			filepath.Join(dir, "config.rc"),
			filepath.Join(dir, "brushpaint.rc"),
		)
	}
	return paths
}

func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "brushpaint"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "brushpaint"), nil
}
