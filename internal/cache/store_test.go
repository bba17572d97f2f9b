package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStore_LoadRaw_Missing(t *testing.T) {
	s := NewStore(t.TempDir())

	_, err := s.LoadRaw(DefaultFileName)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadRaw() error = %v, want fs.ErrNotExist", err)
	}
}

func TestStore_SaveRawAndLoadRaw(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	s := NewStore(dir)

	if err := s.SaveRaw("data.json", `{"a":1}`); err != nil {
		t.Fatalf("SaveRaw() error = %v", err)
	}
	got, err := s.LoadRaw("data.json")
	if err != nil {
		t.Fatalf("LoadRaw() error = %v", err)
	}
	if got != `{"a":1}` {
		t.Errorf("LoadRaw() = %q", got)
	}

	// Overwrite replaces the content and leaves no temp files behind.
	if err := s.SaveRaw("data.json", "{}"); err != nil {
		t.Fatalf("SaveRaw() error = %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("dir has %d entries, want 1", len(entries))
	}
}

func TestStore_InvalidFileName(t *testing.T) {
	s := NewStore(t.TempDir())

	for _, name := range []string{"", ".", "..", "../escape.json", "sub/file.json", `sub\file.json`} {
		t.Run(name, func(t *testing.T) {
			if _, err := s.LoadRaw(name); !errors.Is(err, ErrInvalidFileName) {
				t.Errorf("LoadRaw(%q) error = %v, want ErrInvalidFileName", name, err)
			}
			if err := s.SaveRaw(name, "{}"); !errors.Is(err, ErrInvalidFileName) {
				t.Errorf("SaveRaw(%q) error = %v, want ErrInvalidFileName", name, err)
			}
		})
	}
}

func TestStore_Load_NewFile(t *testing.T) {
	s := NewStore(t.TempDir())

	c, err := s.Load(DefaultFileName)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c == nil || len(c) != 0 {
		t.Errorf("Load() = %v, want empty cache", c)
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	s := NewStore(t.TempDir())

	c := Cache{
		"pdf": {NameZh: "PDF 工具", DescriptionZh: "简介：处理 PDF", LastUpdated: "2026-01-01T00:00:00Z", IsPinned: true},
	}
	if err := s.Save(DefaultFileName, c); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := s.Load(DefaultFileName)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded["pdf"] != c["pdf"] {
		t.Errorf("Load() = %+v, want %+v", loaded["pdf"], c["pdf"])
	}
}

func TestStore_Load_FrontendFormat(t *testing.T) {
	s := NewStore(t.TempDir())
	raw := `{"brainstorm":{"nameZh":"头脑风暴","descriptionZh":"简介：想点子","lastUpdated":"2025-06-01T10:00:00.000Z","isFavorite":true}}`
	if err := s.SaveRaw(DefaultFileName, raw); err != nil {
		t.Fatal(err)
	}

	c, err := s.Load(DefaultFileName)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	e := c["brainstorm"]
	if e.NameZh != "头脑风暴" || !e.IsFavorite || e.IsPinned {
		t.Errorf("entry = %+v", e)
	}
}

func TestStore_Load_Malformed(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.SaveRaw(DefaultFileName, "{not json"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(DefaultFileName); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}

func TestStore_Load_EmptyAndNull(t *testing.T) {
	s := NewStore(t.TempDir())
	for _, content := range []string{"", "  ", "null", "{}"} {
		if err := s.SaveRaw(DefaultFileName, content); err != nil {
			t.Fatal(err)
		}
		c, err := s.Load(DefaultFileName)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", content, err)
		}
		if c == nil {
			t.Errorf("Load(%q) = nil, want empty cache", content)
		}
	}
}

func TestStore_Save_DropsEmptyEntries(t *testing.T) {
	s := NewStore(t.TempDir())

	c := New()
	c.SetTranslation("pdf", "PDF 工具", "简介：处理 PDF", time.Now())
	c.SetTranslation("git", "Git 助手", "简介：提交", time.Now())
	c.ToggleFavorite("git")
	c.ToggleFavorite("docs")
	c.ToggleFavorite("docs")
	c.ClearTranslations("ghost")
	c.ClearAllTranslations()

	if err := s.Save(DefaultFileName, c); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	raw, err := s.LoadRaw(DefaultFileName)
	if err != nil {
		t.Fatalf("LoadRaw() error = %v", err)
	}

	var onDisk map[string]Entry
	if err := json.Unmarshal([]byte(raw), &onDisk); err != nil {
		t.Fatalf("saved file is not JSON: %v", err)
	}
	if len(onDisk) != 1 {
		t.Fatalf("saved entries = %v, want only git", onDisk)
	}
	if e := onDisk["git"]; !e.IsFavorite || e.Translated() {
		t.Errorf("git = %+v, want favorite without translation", e)
	}
}
