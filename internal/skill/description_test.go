package skill

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestReadDescription_Priority(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{
			name:  "skill.md wins over README.md",
			files: map[string]string{"skill.md": "from skill", "README.md": "from readme"},
			want:  "from skill",
		},
		{
			name:  "README.md wins over description.md",
			files: map[string]string{"README.md": "from readme", "description.md": "from description"},
			want:  "from readme",
		},
		{
			name:  "description.md alone",
			files: map[string]string{"description.md": "from description"},
			want:  "from description",
		},
		{
			name:  "unrecognized files ignored",
			files: map[string]string{"SKILL.txt": "nope", "notes.md": "nope"},
			want:  "",
		},
		{
			name:  "no files",
			files: nil,
			want:  "",
		},
		{
			name:  "whitespace trimmed",
			files: map[string]string{"skill.md": "\n\n  hello world \n\t"},
			want:  "hello world",
		},
		{
			name:  "empty first match still wins",
			files: map[string]string{"skill.md": "   ", "README.md": "readme"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, filepath.Join(dir, name), content)
			}
			if got := ReadDescription(dir); got != tt.want {
				t.Errorf("ReadDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadDescription_SkipsUnreadable(t *testing.T) {
	dir := t.TempDir()
	// A directory named like a candidate cannot be read as a file.
	if err := os.Mkdir(filepath.Join(dir, "skill.md"), 0755); err != nil {
		t.Fatal(err)
	}
	// Invalid UTF-8 is treated as a failed read.
	writeFile(t, filepath.Join(dir, "README.md"), string([]byte{0xff, 0xfe, 0xfd}))
	writeFile(t, filepath.Join(dir, "description.md"), "fallback")

	if got := ReadDescription(dir); got != "fallback" {
		t.Errorf("ReadDescription() = %q, want %q", got, "fallback")
	}
	if got := DescriptionFile(dir); filepath.Base(got) != "description.md" {
		t.Errorf("DescriptionFile() = %q, want description.md", got)
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantLen int
	}{
		{"short", "abc", 3},
		{"exact", strings.Repeat("a", 500), 500},
		{"long ascii", strings.Repeat("a", 501), 500},
		{"long multibyte", strings.Repeat("技", 700), 500},
		{"leading whitespace", "   " + strings.Repeat("b", 600), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.content)
			if n := utf8.RuneCountInString(got); n != tt.wantLen {
				t.Errorf("Summarize() length = %d, want %d", n, tt.wantLen)
			}
			if !utf8.ValidString(got) {
				t.Error("Summarize() produced invalid UTF-8")
			}
		})
	}
}

func TestParseMetadata(t *testing.T) {
	content := []byte(`---
name: pdf-tools
description: Work with PDF files
version: 1.2.0
tags: [pdf, docs]
---

# PDF tools
`)
	meta, body, err := ParseMetadata(content)
	if err != nil {
		t.Fatalf("ParseMetadata() error = %v", err)
	}
	if meta.Name != "pdf-tools" {
		t.Errorf("Name = %q, want pdf-tools", meta.Name)
	}
	if meta.Description != "Work with PDF files" {
		t.Errorf("Description = %q", meta.Description)
	}
	if len(meta.Tags) != 2 || meta.Tags[0] != "pdf" {
		t.Errorf("Tags = %v, want [pdf docs]", meta.Tags)
	}
	if !strings.HasPrefix(body, "# PDF tools") {
		t.Errorf("body = %q, want heading first", body)
	}
}

func TestParseMetadata_NoFrontmatter(t *testing.T) {
	meta, body, err := ParseMetadata([]byte("# Just markdown\n"))
	if err != nil {
		t.Fatalf("ParseMetadata() error = %v", err)
	}
	if !meta.IsZero() {
		t.Errorf("meta = %+v, want zero", meta)
	}
	if body != "# Just markdown\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParseMetadata_Invalid(t *testing.T) {
	_, _, err := ParseMetadata([]byte("---\nname: [unclosed\n---\nbody"))
	if err == nil {
		t.Error("ParseMetadata() error = nil, want error")
	}
}

func TestScan_DoesNotUseFrontmatterName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "dir-name", "skill.md"), "---\nname: other-name\n---\nbody")

	skills, err := NewScanner(dir).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(skills) != 1 || skills[0].Name != "dir-name" {
		t.Errorf("got %+v, want Name dir-name", skills)
	}
}
