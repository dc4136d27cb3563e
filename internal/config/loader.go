package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the configuration file name searched for in the
	// current and home directories.
	DefaultConfigFile = ".sigdec.yaml"

	// xdgConfigFile is the configuration file name inside XDGConfigDir.
	xdgConfigFile = "config.yaml"
)

// LoadConfigFile reads a configuration file.
// A missing file yields ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if f.Profiles == nil {
		f.Profiles = make(map[string]Analysis)
	}
	return &f, nil
}

// FindConfigFile returns the first configuration file found in:
//  1. configPath, when not empty
//  2. .sigdec.yaml in the current directory
//  3. config.yaml in XDGConfigDir
//  4. .sigdec.yaml in the home directory
//
// It returns an empty string when nothing exists.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	for _, candidate := range searchPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func searchPaths() []string {
	paths := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, DefaultConfigFile))
	}
	paths = append(paths, filepath.Join(XDGConfigDir(), xdgConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, DefaultConfigFile))
	}
	return paths
}

// ApplyConfigFile locates the configuration file, merges its defaults and
// the selected profile into c.Analysis and returns the path used. An
// explicit ConfigFilePath that does not exist is an error; a missing file
// found by search is not. Selecting a profile without any file is an error.
func (c *Config) ApplyConfigFile() (string, error) {
	path := FindConfigFile(c.ConfigFilePath)
	if path == "" {
		if c.ConfigFilePath != "" {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, c.ConfigFilePath)
		}
		if c.Profile != "" {
			return "", fmt.Errorf("%w: %q (no configuration file found)", ErrUnknownProfile, c.Profile)
		}
		return "", nil
	}

	f, err := LoadConfigFile(path)
	if err != nil {
		return "", err
	}
	resolved, err := f.Resolve(c.Analysis, c.Profile)
	if err != nil {
		return "", err
	}
	c.Analysis = resolved
	return path, nil
}
