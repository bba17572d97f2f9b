package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ReadDescription returns the description of the skill in dir.
// Returns "" if no candidate file can be read.
func ReadDescription(dir string) string {
	_, data := firstReadable(dir)
	return Summarize(string(data))
}

// DescriptionFile returns the path of the file ReadDescription would use,
// or "" if there is none.
func DescriptionFile(dir string) string {
	path, _ := firstReadable(dir)
	return path
}

// firstReadable returns the first candidate that exists and holds valid
// UTF-8 text. Later candidates are never merged in.
func firstReadable(dir string) (string, []byte) {
	for _, name := range DescriptionFiles {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if !utf8.Valid(data) {
			continue
		}
		return path, data
	}
	return "", nil
}

// Summarize trims content and cuts it to MaxDescriptionChars characters
func Summarize(content string) string {
	desc := strings.TrimSpace(content)
	if utf8.RuneCountInString(desc) <= MaxDescriptionChars {
		return desc
	}
	runes := []rune(desc)
	return strings.TrimRightFunc(string(runes[:MaxDescriptionChars]), unicode.IsSpace)
}

// ParseMetadata extracts YAML frontmatter from content.
// Returns the metadata, the body content, and any error.
func ParseMetadata(content []byte) (Metadata, string, error) {
	var meta Metadata
	text := string(content)

	if !strings.HasPrefix(text, "---") {
		return meta, text, nil
	}

	rest := strings.TrimPrefix(text[3:], "\r")
	rest = strings.TrimPrefix(rest, "\n")

	idx := strings.Index(rest, "\n---")
	if idx == -1 {
		return meta, text, nil
	}

	yamlContent := rest[:idx]
	body := strings.TrimLeft(rest[idx+4:], "\r\n")

	if err := yaml.Unmarshal([]byte(yamlContent), &meta); err != nil {
		return Metadata{}, "", fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	return meta, body, nil
}
