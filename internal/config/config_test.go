package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv(EnvSkillsDir, "")
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvAPIKey, "")
	return home
}

func TestGetPaths_Defaults(t *testing.T) {
	home := setHome(t)

	paths, err := GetPaths()
	if err != nil {
		t.Fatalf("GetPaths() error = %v", err)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Home", paths.Home, home},
		{"UserConfigDir", paths.UserConfigDir, filepath.Join(home, ".config", "skillbrowser")},
		{"SettingsFile", paths.SettingsFile, filepath.Join(home, ".config", "skillbrowser", "config.yaml")},
		{"CacheDir", paths.CacheDir, filepath.Join(home, ".config", "skillbrowser")},
		{"SkillsDir", paths.SkillsDir, filepath.Join(home, ".claude", "skills")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestGetPaths_XDG(t *testing.T) {
	setHome(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	paths, err := GetPaths()
	if err != nil {
		t.Fatalf("GetPaths() error = %v", err)
	}
	if want := filepath.Join(xdg, "skillbrowser"); paths.UserConfigDir != want {
		t.Errorf("UserConfigDir = %v, want %v", paths.UserConfigDir, want)
	}
}

func TestGetPathsWith_Precedence(t *testing.T) {
	home := setHome(t)
	t.Setenv(EnvSkillsDir, "~/custom-skills")
	t.Setenv(EnvConfigDir, "/env/config")

	paths, err := GetPaths()
	if err != nil {
		t.Fatalf("GetPaths() error = %v", err)
	}
	if want := filepath.Join(home, "custom-skills"); paths.SkillsDir != want {
		t.Errorf("SkillsDir = %v, want %v", paths.SkillsDir, want)
	}
	if paths.UserConfigDir != "/env/config" {
		t.Errorf("UserConfigDir = %v, want /env/config", paths.UserConfigDir)
	}

	paths, err = GetPathsWith(Overrides{SkillsDir: "/flag/skills", ConfigDir: "/flag/config"})
	if err != nil {
		t.Fatalf("GetPathsWith() error = %v", err)
	}
	if paths.SkillsDir != "/flag/skills" {
		t.Errorf("SkillsDir = %v, want /flag/skills", paths.SkillsDir)
	}
	if paths.SettingsFile != filepath.Join("/flag/config", "config.yaml") {
		t.Errorf("SettingsFile = %v", paths.SettingsFile)
	}
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"~", "/home/u"},
		{"~/x/y", filepath.Join("/home/u", "x/y")},
		{"/abs", "/abs"},
		{"~other", "~other"},
		{"rel", "rel"},
	}
	for _, tt := range tests {
		if got := expandHome(tt.path, "/home/u"); got != tt.want {
			t.Errorf("expandHome(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLoadSettings_NewFile(t *testing.T) {
	setHome(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.APIKey != "" || s.Model != "" {
		t.Errorf("LoadSettings() = %+v, want empty", s)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	setHome(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	in := &Settings{APIKey: "sk-abcdef1234", Model: "deepseek-chat"}
	if err := SaveSettings(path, in); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal("settings file was not created")
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		t.Errorf("settings perm = %v, want owner-only", perm)
	}

	out, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if *out != *in {
		t.Errorf("LoadSettings() = %+v, want %+v", out, in)
	}
	if out.MaskedAPIKey() != "****1234" {
		t.Errorf("MaskedAPIKey() = %v", out.MaskedAPIKey())
	}
}

func TestLoadSettings_EnvOverridesKey(t *testing.T) {
	setHome(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := SaveSettings(path, &Settings{APIKey: "from-file"}); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvAPIKey, "from-env")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.APIKey != "from-env" {
		t.Errorf("APIKey = %v, want from-env", s.APIKey)
	}

	fileOnly, err := LoadSettingsFile(path)
	if err != nil {
		t.Fatalf("LoadSettingsFile() error = %v", err)
	}
	if fileOnly.APIKey != "from-file" {
		t.Errorf("APIKey = %v, want from-file", fileOnly.APIKey)
	}
}

func TestLoadSettings_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_key: [oops"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Error("LoadSettings() error = nil, want parse error")
	}
}

func TestMaskedAPIKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", ""},
		{"abc", "****"},
		{"sk-123456", "****3456"},
	}
	for _, tt := range tests {
		s := &Settings{APIKey: tt.key}
		if got := s.MaskedAPIKey(); got != tt.want {
			t.Errorf("MaskedAPIKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
