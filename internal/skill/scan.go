// Package skill discovers skills on disk.
//
// A skill is a directory directly under the skills base directory
// (~/.claude/skills by default). Its id is the directory name and its
// description comes from the first readable file in DescriptionFiles.
// Scanning is best-effort: anything that cannot be read is skipped.
package skill

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Scanner enumerates skills under a base directory
type Scanner struct {
	baseDir string
	logger  *log.Logger
}

// NewScanner returns a scanner rooted at baseDir
func NewScanner(baseDir string) *Scanner {
	return &Scanner{baseDir: baseDir, logger: log.Default()}
}

// WithLogger sets the logger used for skipped entries
func (s *Scanner) WithLogger(logger *log.Logger) *Scanner {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// DefaultBaseDir returns <home>/.claude/skills
func DefaultBaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHomeDirUnavailable, err)
	}
	if home == "" {
		return "", ErrHomeDirUnavailable
	}
	return filepath.Join(home, AgentDirName, SkillsDirName), nil
}

// Scan scans the default base directory
func Scan() ([]Info, error) {
	dir, err := DefaultBaseDir()
	if err != nil {
		return nil, err
	}
	return NewScanner(dir).Scan()
}

// Scan returns one Info per subdirectory of the base directory, in the
// order the filesystem yields them. A missing base directory is not an error.
func (s *Scanner) Scan() ([]Info, error) {
	skills := []Info{}

	if _, err := os.Stat(s.baseDir); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("skills dir not accessible", "dir", s.baseDir, "error", err)
		}
		return skills, nil
	}

	base, err := filepath.Abs(s.baseDir)
	if err != nil {
		base = s.baseDir
	}

	// os.ReadDir sorts by name; File.ReadDir keeps directory order.
	f, err := os.Open(base)
	if err != nil {
		s.logger.Debug("cannot open skills dir", "dir", base, "error", err)
		return skills, nil
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		s.logger.Debug("partial skills dir listing", "dir", base, "error", err)
	}

	for _, entry := range entries {
		path := filepath.Join(base, entry.Name())

		// Stat follows symlinks, so linked skill directories count.
		info, err := os.Stat(path)
		if err != nil {
			s.logger.Debug("skipping unreadable entry", "path", path, "error", err)
			continue
		}
		if !info.IsDir() {
			continue
		}

		skills = append(skills, newInfo(path))
	}

	return skills, nil
}

// Load builds the Info for a single skill directory
func Load(dir string) (Info, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Info{}, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Info{}, err
	}
	if !info.IsDir() {
		return Info{}, fmt.Errorf("%s is not a directory", abs)
	}
	return newInfo(abs), nil
}

func newInfo(path string) Info {
	id := filepath.Base(path)
	return Info{
		ID:          id,
		Name:        id,
		Description: ReadDescription(path),
		Path:        path,
	}
}
