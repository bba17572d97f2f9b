package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidFileName is returned for cache file names that are not plain base names
var ErrInvalidFileName = errors.New("invalid cache file name")

// Store reads and writes cache files inside one directory
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store directory
func (s *Store) Dir() string {
	return s.dir
}

// Path resolves fileName inside the store directory
func (s *Store) Path(fileName string) (string, error) {
	if err := validateFileName(fileName); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, fileName), nil
}

func validateFileName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	case strings.ContainsAny(name, `/\`), filepath.Base(name) != name:
		return fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	return nil
}

// LoadRaw returns the content of fileName.
// A missing file yields an error wrapping fs.ErrNotExist.
func (s *Store) LoadRaw(fileName string) (string, error) {
	path, err := s.Path(fileName)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read cache %s: %w", fileName, err)
	}
	return string(data), nil
}

// SaveRaw replaces the content of fileName, creating the directory as needed
func (s *Store) SaveRaw(fileName, content string) error {
	path, err := s.Path(fileName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+fileName+".*")
	if err != nil {
		return fmt.Errorf("write cache %s: %w", fileName, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write cache %s: %w", fileName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write cache %s: %w", fileName, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write cache %s: %w", fileName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write cache %s: %w", fileName, err)
	}
	return nil
}

// Load reads a typed cache. A missing file yields an empty cache.
func (s *Store) Load(fileName string) (Cache, error) {
	content, err := s.LoadRaw(fileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, err
	}

	c := New()
	if strings.TrimSpace(content) == "" {
		return c, nil
	}
	if err := json.Unmarshal([]byte(content), &c); err != nil {
		return nil, fmt.Errorf("parse cache %s: %w", fileName, err)
	}
	if c == nil {
		c = New()
	}
	return c, nil
}

// Save writes a typed cache
func (s *Store) Save(fileName string, c Cache) error {
	if c == nil {
		c = New()
	}
	c.Prune()
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return s.SaveRaw(fileName, string(data))
}
