// Package configloader finds and loads the mdlinkcheck configuration
// file.
package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdlinkcheck/pkg/config"
)

// FileName is the configuration file searched for in the working
// directory and its ancestors.
const FileName = ".mdlinkcheck.yaml"

// ErrNotFound is returned by Discover when no config file exists.
var ErrNotFound = errors.New("no config file found")

// Load reads and decodes the config file at path. Unknown keys are
// rejected so typos surface instead of silently doing nothing.
func Load(path string) (*config.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg := config.Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Format == "" {
		cfg.Format = config.FormatText
	}
	if !cfg.Format.IsValid() {
		return nil, fmt.Errorf("config %s: unknown format %q", path, cfg.Format)
	}

	return cfg, nil
}

// Discover walks from dir toward the filesystem root looking for a
// config file, returning its path or ErrNotFound.
func Discover(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	for {
		candidate := filepath.Join(current, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrNotFound
		}
		current = parent
	}
}

// Resolve returns the effective configuration: the explicit path if
// given, otherwise the discovered file, otherwise defaults.
func Resolve(explicitPath, workDir string) (*config.Config, error) {
	if explicitPath != "" {
		return Load(explicitPath)
	}

	path, err := Discover(workDir)
	if errors.Is(err, ErrNotFound) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg, err := Load(path)
	if err != nil {
		// A vanished file between Discover and Load is equivalent to
		// no file at all.
		if errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}
