package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kennyg/skillbrowser/internal/skill"
)

// Following the XDG Base Directory layout:
// User config: ~/.config/skillbrowser/ (or $XDG_CONFIG_HOME/skillbrowser/)

const (
	// ConfigDir is the subdirectory name under .config
	ConfigDir = "skillbrowser"
	// SettingsFile is the filename for user settings
	SettingsFile = "config.yaml"

	// EnvSkillsDir overrides the skills base directory
	EnvSkillsDir = "SKILLBROWSER_SKILLS_DIR"
	// EnvConfigDir overrides the config directory
	EnvConfigDir = "SKILLBROWSER_CONFIG_DIR"
	// EnvAPIKey overrides the translation API key
	EnvAPIKey = "DEEPSEEK_API_KEY"
)

// Paths holds the various paths skillbrowser uses
type Paths struct {
	// Home is the user's home directory
	Home string

	// UserConfigDir is ~/.config/skillbrowser (or $XDG_CONFIG_HOME/skillbrowser)
	UserConfigDir string
	// SettingsFile is ~/.config/skillbrowser/config.yaml
	SettingsFile string
	// CacheDir holds cache files; the same as UserConfigDir
	CacheDir string

	// SkillsDir is scanned for skills, e.g. ~/.claude/skills
	SkillsDir string
}

// Overrides replace derived paths, typically from CLI flags
type Overrides struct {
	SkillsDir string
	ConfigDir string
}

// GetPaths returns the standard paths, honoring environment overrides
func GetPaths() (*Paths, error) {
	return GetPathsWith(Overrides{})
}

// GetPathsWith returns the standard paths with explicit overrides applied.
// Explicit overrides win over environment variables.
func GetPathsWith(o Overrides) (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", skill.ErrHomeDirUnavailable, err)
	}
	if home == "" {
		return nil, skill.ErrHomeDirUnavailable
	}

	// Follow XDG Base Directory spec
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	userConfigDir := filepath.Join(configHome, ConfigDir)
	if v := os.Getenv(EnvConfigDir); v != "" {
		userConfigDir = v
	}
	if o.ConfigDir != "" {
		userConfigDir = o.ConfigDir
	}

	skillsDir := filepath.Join(home, skill.AgentDirName, skill.SkillsDirName)
	if v := os.Getenv(EnvSkillsDir); v != "" {
		skillsDir = v
	}
	if o.SkillsDir != "" {
		skillsDir = o.SkillsDir
	}

	return &Paths{
		Home:          home,
		UserConfigDir: userConfigDir,
		SettingsFile:  filepath.Join(userConfigDir, SettingsFile),
		CacheDir:      userConfigDir,
		SkillsDir:     expandHome(skillsDir, home),
	}, nil
}

// expandHome resolves a leading ~ against home
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator) {
		return filepath.Join(home, path[2:])
	}
	return path
}

// EnsureDirs creates the config directory
func (p *Paths) EnsureDirs() error {
	return os.MkdirAll(p.UserConfigDir, 0755)
}

// Settings are the user-editable options
type Settings struct {
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

// LoadSettings loads settings from disk. A missing file yields empty settings.
// The API key environment variable wins over the file.
func LoadSettings(path string) (*Settings, error) {
	s, err := LoadSettingsFile(path)
	if err != nil {
		return nil, err
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		s.APIKey = v
	}
	return s, nil
}

// LoadSettingsFile loads settings from disk only, ignoring the environment.
// Use it before SaveSettings so environment values are not persisted.
func LoadSettingsFile(path string) (*Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &s, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return &s, nil
}

// SaveSettings writes settings to disk, readable only by the owner
func SaveSettings(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// MaskedAPIKey returns the key with all but the last four characters hidden
func (s *Settings) MaskedAPIKey() string {
	if s.APIKey == "" {
		return ""
	}
	if len(s.APIKey) <= 4 {
		return "****"
	}
	return "****" + s.APIKey[len(s.APIKey)-4:]
}
