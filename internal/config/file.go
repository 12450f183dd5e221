package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned by WriteDefault when the file is already there
var ErrConfigExists = errors.New("config file already exists")

// Serializes writers within this process
var fileMutex sync.Mutex

// WriteDefault writes the default configuration to path, or to the default
// location when path is empty. An existing file is kept unless force is set.
// The write is atomic. It returns the path written.
func WriteDefault(path string, force bool) (string, error) {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return "", fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	// User-only permissions: the file holds the API key
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	body, err := yaml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# plantdeck configuration
#
# api.key is your RapidAPI key. It can also come from PLANTDECK_API_KEY
# or RAPIDAPI_KEY. api.timeout of 0s leaves request timeouts to the network.
# log.level (debug, info, warn, error) stays empty to disable logging;
# the interactive browser only logs when log.file is set.
#
# Location: ` + path + `

`)
	data := append(header, body...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to save config file: %w", err)
	}

	return path, nil
}
