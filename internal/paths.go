package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvHome is the environment variable naming the memoria home directory
const EnvHome = "MEMORIA_HOME"

// ConfigFile is the optional per-home configuration file
const ConfigFile = "memoria.yaml"

// Paths holds the resolved storage and vault locations
type Paths struct {
	Home       string
	MemoryPath string // relational store root, holds sessions.db
	VaultPath  string // knowledge vault root
}

// Config is the optional memoria.yaml override file
type Config struct {
	MemoryPath string `yaml:"memory_path,omitempty"`
	VaultPath  string `yaml:"vault_path,omitempty"`
}

// ResolvePaths resolves the memoria home directory and derives storage and
// vault paths from it. Resolution order: explicit override, MEMORIA_HOME,
// then the working directory (or its parent when the working directory shows
// no trace of a memoria layout).
func ResolvePaths(override string) (*Paths, error) {
	home := override
	if home == "" {
		home = os.Getenv(EnvHome)
	}
	if home == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		home = wd
		if !dirExists(filepath.Join(wd, ".memory")) && !dirExists(filepath.Join(wd, "knowledge")) {
			home = filepath.Dir(wd)
		}
		LogWarn("%s not set, using default path: %s", EnvHome, home)
	}

	paths := &Paths{
		Home:       home,
		MemoryPath: filepath.Join(home, ".memory"),
		VaultPath:  filepath.Join(home, "knowledge"),
	}

	// Optional per-home overrides
	if cfg, err := loadConfig(filepath.Join(home, ConfigFile)); err != nil {
		return nil, err
	} else if cfg != nil {
		if cfg.MemoryPath != "" {
			paths.MemoryPath = resolveAgainst(home, cfg.MemoryPath)
		}
		if cfg.VaultPath != "" {
			paths.VaultPath = resolveAgainst(home, cfg.VaultPath)
		}
	}

	return paths, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &FileSystemError{Path: path, Op: "read", Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Source: path, Err: err}
	}
	return &cfg, nil
}

func resolveAgainst(home, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(home, path)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// DatabasePath returns the sessions database location
func (p *Paths) DatabasePath() string {
	return filepath.Join(p.MemoryPath, "sessions.db")
}

// DailyDir returns the daily-notes area of the vault
func (p *Paths) DailyDir() string {
	return filepath.Join(p.VaultPath, "Daily")
}

// DecisionsDir returns the decisions area of the vault
func (p *Paths) DecisionsDir() string {
	return filepath.Join(p.VaultPath, "Decisions")
}

// SkillsDir returns the skills area of the vault
func (p *Paths) SkillsDir() string {
	return filepath.Join(p.VaultPath, "Skills")
}

// EnsureDirs creates the storage root and the three vault areas
func (p *Paths) EnsureDirs() error {
	for _, dir := range []string{p.MemoryPath, p.DailyDir(), p.DecisionsDir(), p.SkillsDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &FileSystemError{Path: dir, Op: "write", Err: err}
		}
	}
	return nil
}
