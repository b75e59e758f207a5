// Package config defines the configuration record produced by the question
// wizard and its on-disk form, appgen.yml, written into every generated
// project.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the blueprint file written into generated projects.
const ConfigFile = "appgen.yml"

const generatedSeparator = "\n# Generated state — auto-generated by appgen, do not edit below this line\n"

// Config is the complete set of answers for one generation run.
// It is built once by the wizard and consumed read-only afterwards.
type Config struct {
	Version  int    `yaml:"version"`
	Project  string `yaml:"project"`
	Platform string `yaml:"platform"`
	Category string `yaml:"category"`

	Auth            AuthConfig `yaml:"auth"`
	Database        string     `yaml:"database"`
	StateManagement string     `yaml:"state_management,omitempty"`
	UIFramework     string     `yaml:"ui_framework,omitempty"`

	Features Features    `yaml:"features"`
	Game     *GameConfig `yaml:"game,omitempty"`

	Generated *Generated `yaml:"generated,omitempty"`
}

// configUserFields is the subset of Config that reflects user answers.
// Used for two-pass marshaling so the generated section stays below a comment.
type configUserFields struct {
	Version         int         `yaml:"version"`
	Project         string      `yaml:"project"`
	Platform        string      `yaml:"platform"`
	Category        string      `yaml:"category"`
	Auth            AuthConfig  `yaml:"auth"`
	Database        string      `yaml:"database"`
	StateManagement string      `yaml:"state_management,omitempty"`
	UIFramework     string      `yaml:"ui_framework,omitempty"`
	Features        Features    `yaml:"features"`
	Game            *GameConfig `yaml:"game,omitempty"`
}

// configGeneratedFields is the auto-generated portion of the file.
type configGeneratedFields struct {
	Generated *Generated `yaml:"generated,omitempty"`
}

// New returns a record with the question defaults applied: Flutter
// transactional app, Firebase auth, Firestore, provider state management,
// routing and theming on, everything else off.
func New() *Config {
	return &Config{
		Version:         1,
		Platform:        PlatformFlutter,
		Category:        CategoryTransactional,
		Auth:            AuthConfig{Enabled: true, Provider: AuthFirebase},
		Database:        DatabaseFirestore,
		StateManagement: StateProvider,
		Features: Features{
			Routing: true,
			Theme:   true,
		},
	}
}

// Exists checks whether an appgen.yml exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFile))
	return err == nil
}

// Load reads and validates the blueprint file from the given directory.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no %s found in %s — is this an appgen project?", ConfigFile, dir)
		}
		return nil, fmt.Errorf("reading %s: %w", ConfigFile, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFile, err)
	}

	if c.Version == 0 {
		c.Version = 1
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Save writes the blueprint file into dir. It uses two-pass marshaling:
// the user answers first, then a comment separator, then the generated
// section. The write is atomic (tmp + rename).
func Save(dir string, c *Config) error {
	userPart := configUserFields{
		Version:         c.Version,
		Project:         c.Project,
		Platform:        c.Platform,
		Category:        c.Category,
		Auth:            c.Auth,
		Database:        c.Database,
		StateManagement: c.StateManagement,
		UIFramework:     c.UIFramework,
		Features:        c.Features,
		Game:            c.Game,
	}

	userBytes, err := yaml.Marshal(userPart)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	content := userBytes
	if c.Generated != nil {
		genBytes, marshalErr := yaml.Marshal(configGeneratedFields{Generated: c.Generated})
		if marshalErr != nil {
			return fmt.Errorf("marshaling generated state: %w", marshalErr)
		}
		content = append(content, []byte(generatedSeparator)...)
		content = append(content, genBytes...)
	}

	path := filepath.Join(dir, ConfigFile)
	tmpPath := path + ".tmp"

	if err := os.WriteFile(tmpPath, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", ConfigFile, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("saving %s: %w", ConfigFile, err)
	}

	return nil
}

// Validate checks that every enum-valued field holds a value from its
// declared option set. A violation is a programmer error or a hand-edited
// file, not a recoverable condition.
func (c *Config) Validate() error {
	if c.Version < 1 {
		return fmt.Errorf("invalid config version: %d", c.Version)
	}
	if c.Project == "" {
		return fmt.Errorf("project name is required")
	}
	if !oneOf(c.Platform, Platforms) {
		return fmt.Errorf("unknown platform %q", c.Platform)
	}

	switch c.Platform {
	case PlatformFlutter:
		return c.validateFlutter()
	case PlatformMacOS:
		return c.validateMacOS()
	}
	return nil
}

func (c *Config) validateFlutter() error {
	if !oneOf(c.Category, FlutterCategories) {
		return fmt.Errorf("unknown app category %q", c.Category)
	}
	if c.Auth.Enabled && !oneOf(c.Auth.Provider, FlutterAuth) {
		return fmt.Errorf("unknown auth provider %q", c.Auth.Provider)
	}
	if !oneOf(c.Database, FlutterDatabases) {
		return fmt.Errorf("unknown database %q", c.Database)
	}
	if !oneOf(c.StateManagement, StateManagement) {
		return fmt.Errorf("unknown state management %q", c.StateManagement)
	}
	if c.Category == CategoryGame {
		if c.Game == nil {
			return fmt.Errorf("game category requires game settings")
		}
		if !oneOf(c.Game.Engine, GameEngines) {
			return fmt.Errorf("unknown game engine %q", c.Game.Engine)
		}
		if c.Game.Multiplayer {
			if !oneOf(c.Game.MultiplayerType, MultiplayerTypes) {
				return fmt.Errorf("unknown multiplayer type %q", c.Game.MultiplayerType)
			}
			if c.Game.MultiplayerType == MultiplayerP2P && !oneOf(c.Game.P2PLibrary, P2PLibraries) {
				return fmt.Errorf("unknown p2p library %q", c.Game.P2PLibrary)
			}
		}
	}
	return nil
}

func (c *Config) validateMacOS() error {
	if !oneOf(c.Category, MacOSCategories) {
		return fmt.Errorf("unknown app category %q", c.Category)
	}
	if !oneOf(c.UIFramework, UIFrameworks) {
		return fmt.Errorf("unknown UI framework %q", c.UIFramework)
	}
	if c.Auth.Enabled && !oneOf(c.Auth.Provider, MacOSAuth) {
		return fmt.Errorf("unknown auth provider %q", c.Auth.Provider)
	}
	if !oneOf(c.Database, MacOSDatabases) {
		return fmt.Errorf("unknown database %q", c.Database)
	}
	return nil
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
