package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const manifestName = "piyathon.toml"

// projectManifest is a piyathon.toml found above the working directory.
// Relative paths inside it are resolved against Root.
type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Mapping mappingConfig `toml:"mapping"`
	Convert convertConfig `toml:"convert"`
	Run     runConfig     `toml:"run"`
}

type mappingConfig struct {
	Table string `toml:"table"`
}

type convertConfig struct {
	Jobs int `toml:"jobs"`
}

type runConfig struct {
	Lib []string `toml:"lib"`
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadProjectManifest returns nil without error when no manifest exists.
func loadProjectManifest(startDir string) (*projectManifest, error) {
	manifestPath, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return projectConfig{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("convert", "jobs") && cfg.Convert.Jobs < 0 {
		return projectConfig{}, fmt.Errorf("%s: [convert].jobs must not be negative", path)
	}
	return cfg, nil
}

func (m *projectManifest) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.Root, filepath.FromSlash(path))
}

// tablePath is [mapping].table resolved against the manifest directory.
func (m *projectManifest) tablePath() string {
	if m == nil {
		return ""
	}
	return m.resolve(m.Config.Mapping.Table)
}

func (m *projectManifest) libDirs() []string {
	if m == nil {
		return nil
	}
	dirs := make([]string, 0, len(m.Config.Run.Lib))
	for _, dir := range m.Config.Run.Lib {
		dirs = append(dirs, m.resolve(dir))
	}
	return dirs
}

func (m *projectManifest) jobs() int {
	if m == nil {
		return 0
	}
	return m.Config.Convert.Jobs
}
