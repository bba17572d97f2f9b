package skill

import "errors"

// File and directory name constants used by the scanner.
const (
	// AgentDirName is the agent configuration directory under the user's home
	AgentDirName = ".claude"

	// SkillsDirName is the directory holding one subdirectory per skill
	SkillsDirName = "skills"

	// MaxDescriptionChars is the character budget for a skill description
	MaxDescriptionChars = 500
)

// DescriptionFiles lists the description candidates in priority order.
// The first one that exists and reads successfully wins.
var DescriptionFiles = []string{"skill.md", "README.md", "description.md"}

// ErrHomeDirUnavailable is returned when the user's home directory cannot be resolved.
var ErrHomeDirUnavailable = errors.New("unable to resolve user home directory")

// Info represents one discovered skill.
// ID and Name are always equal: Name is the directory base name as well.
type Info struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

// Metadata is the optional YAML frontmatter of a description file
type Metadata struct {
	Name        string   `yaml:"name,omitempty" json:"name,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string   `yaml:"version,omitempty" json:"version,omitempty"`
	Author      string   `yaml:"author,omitempty" json:"author,omitempty"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// IsZero reports whether no frontmatter field was set
func (m Metadata) IsZero() bool {
	return m.Name == "" && m.Description == "" && m.Version == "" && m.Author == "" && len(m.Tags) == 0
}
