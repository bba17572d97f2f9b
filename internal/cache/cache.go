// Package cache persists per-skill user data: translated names and
// descriptions plus favorite and pinned flags. The cache is a JSON object
// keyed by skill id, stored as a file in the user config directory.
package cache

import (
	"time"
)

// DefaultFileName is the cache file used when none is given
const DefaultFileName = "translation-cache.json"

// Entry holds the cached data for one skill
type Entry struct {
	NameZh        string `json:"nameZh"`
	DescriptionZh string `json:"descriptionZh"`
	LastUpdated   string `json:"lastUpdated"`
	IsFavorite    bool   `json:"isFavorite,omitempty"`
	IsPinned      bool   `json:"isPinned,omitempty"`
}

// Translated reports whether the entry carries a translation
func (e Entry) Translated() bool {
	return e.NameZh != "" || e.DescriptionZh != ""
}

// Cache maps skill ids to entries
type Cache map[string]Entry

// New returns an empty cache
func New() Cache {
	return make(Cache)
}

// Get returns the entry for id and whether it exists
func (c Cache) Get(id string) (Entry, bool) {
	e, ok := c[id]
	return e, ok
}

// IsTranslated reports whether id has a non-empty translation
func (c Cache) IsTranslated(id string) bool {
	e, ok := c[id]
	return ok && e.Translated()
}

// SetTranslation stores a translation for id, keeping its flags
func (c Cache) SetTranslation(id, nameZh, descriptionZh string, at time.Time) {
	e := c[id]
	e.NameZh = nameZh
	e.DescriptionZh = descriptionZh
	e.LastUpdated = at.UTC().Format(time.RFC3339)
	c[id] = e
}

// ClearTranslations blanks the translation of each id.
// Favorite and pinned flags survive; entries left with nothing are removed.
// Unknown ids are ignored.
func (c Cache) ClearTranslations(ids ...string) {
	for _, id := range ids {
		e, ok := c[id]
		if !ok {
			continue
		}
		if !e.IsFavorite && !e.IsPinned {
			delete(c, id)
			continue
		}
		c[id] = Entry{
			IsFavorite: e.IsFavorite,
			IsPinned:   e.IsPinned,
		}
	}
}

// ClearAllTranslations blanks every translation in the cache
func (c Cache) ClearAllTranslations() {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	c.ClearTranslations(ids...)
}

// ToggleFavorite flips the favorite flag and returns the new value
func (c Cache) ToggleFavorite(id string) bool {
	e := c[id]
	e.IsFavorite = !e.IsFavorite
	c[id] = e
	return e.IsFavorite
}

// TogglePinned flips the pinned flag and returns the new value
func (c Cache) TogglePinned(id string) bool {
	e := c[id]
	e.IsPinned = !e.IsPinned
	c[id] = e
	return e.IsPinned
}

// Prune drops entries that carry neither a translation nor a flag.
// Any entry is read as "already translated" by other readers of the file.
func (c Cache) Prune() {
	for id, e := range c {
		if !e.Translated() && !e.IsFavorite && !e.IsPinned {
			delete(c, id)
		}
	}
}
