package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/samber/lo"

	"github.com/zbiljic/vconfig-go"
)

const (
	appName        = "lee"
	configFileName = appName + ".json"
)

var (
	// Cached configuration to avoid loading multiple times
	cachedConfig *Config
	// Mutex for thread-safe access to config file
	configMutex = &sync.Mutex{}
)

// Load returns the effective configuration: the first file found on the
// search path (or defaults), migrated to the latest version, with
// environment overrides applied and validated.
func Load() (*Config, error) {
	configMutex.Lock()
	defer configMutex.Unlock()

	if cachedConfig != nil {
		return cachedConfig, nil
	}

	config, err := loadCreateMigrate()
	if err != nil {
		return nil, err
	}

	applyEnv(config, os.LookupEnv)

	if err := config.Validate(); err != nil {
		return nil, errInvalidConfig(err)
	}

	cachedConfig = config
	return config, nil
}

// LoadFile reads the configuration stored on disk without environment
// overrides. It is used before modifying and saving the file so that
// environment values are not persisted.
func LoadFile() (*Config, error) {
	configMutex.Lock()
	defer configMutex.Unlock()

	return loadCreateMigrate()
}

// Save saves configuration to a file
func Save(config *Config, filename string) error {
	if config == nil || filename == "" {
		return errInvalidArgument
	}

	if err := config.Validate(); err != nil {
		return errInvalidConfig(err)
	}

	configMutex.Lock()
	defer configMutex.Unlock()

	// ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errFailedToCreateDirectory(dir, err)
	}

	if err := vconfig.SaveConfig(config, filename); err != nil {
		return errFailedToSaveConfig(filename, err)
	}

	// next Load re-reads the file and re-applies the environment
	cachedConfig = nil

	return nil
}

// FindFile searches for configuration file in hierarchical order
func FindFile() (string, error) {
	searchPaths := GetSearchPaths()

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", os.ErrNotExist
}

// GetSearchPaths returns the list of paths to search for configuration files
func GetSearchPaths() []string {
	var paths []string

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	// project config, hidden and visible
	paths = append(paths, filepath.Join(cwd, "."+configFileName))
	paths = append(paths, filepath.Join(cwd, configFileName))

	// walk up until the root or the home directory
	dir := cwd
	homeDir := lo.Must(os.UserHomeDir())
	for {
		parent := filepath.Dir(dir)
		if parent == dir || parent == homeDir {
			break
		}
		dir = parent
		paths = append(paths, filepath.Join(dir, configFileName))
	}

	// user config
	paths = append(paths, GetDefaultPath())

	// user home fallback
	paths = append(paths, filepath.Join(homeDir, "."+configFileName))

	return paths
}

// GetPath returns the path where configuration would be loaded from
func GetPath() (string, bool) {
	path, err := FindFile()
	return path, err == nil
}

// GetDefaultPath returns the default path for user configuration
func GetDefaultPath() string {
	homeDir := lo.Must(os.UserHomeDir())
	return filepath.Join(homeDir, ".config", appName, configFileName)
}

// ResetCache clears the cached configuration (useful for testing)
func ResetCache() {
	configMutex.Lock()
	defer configMutex.Unlock()

	cachedConfig = nil
}
