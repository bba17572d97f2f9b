// Package catalog joins scanned skills with their cached user data and
// answers the search and filter questions the list views ask.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/kennyg/skillbrowser/internal/cache"
	"github.com/kennyg/skillbrowser/internal/skill"
)

// ErrBadPattern is returned for a malformed id glob
var ErrBadPattern = errors.New("invalid skill pattern")

// Item is a skill together with its cache entry
type Item struct {
	skill.Info
	cache.Entry
}

// DisplayName returns the translated name if there is one
func (i Item) DisplayName() string {
	if i.NameZh != "" {
		return i.NameZh
	}
	return i.Name
}

// DisplayDescription returns the translated description if there is one
func (i Item) DisplayDescription() string {
	if i.DescriptionZh != "" {
		return i.DescriptionZh
	}
	return i.Description
}

// Command returns the slash command that invokes the skill
func (i Item) Command() string {
	return "/" + i.Name
}

// Query selects items from a catalog
type Query struct {
	// Text matches the name or displayed description, case-insensitively
	Text string
	// FavoritesOnly keeps only favorite skills
	FavoritesOnly bool
	// Pattern is a doublestar glob matched against the skill id
	Pattern string
}

// Build joins skills with their cache entries, keeping scan order
func Build(skills []skill.Info, c cache.Cache) []Item {
	items := make([]Item, 0, len(skills))
	for _, s := range skills {
		items = append(items, Item{Info: s, Entry: c[s.ID]})
	}
	return items
}

// Filter returns the items matching q, in their original order
func Filter(items []Item, q Query) ([]Item, error) {
	if q.Pattern != "" && !doublestar.ValidatePattern(q.Pattern) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, q.Pattern)
	}

	text := strings.ToLower(strings.TrimSpace(q.Text))
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if q.FavoritesOnly && !item.IsFavorite {
			continue
		}
		if q.Pattern != "" {
			ok, err := doublestar.Match(q.Pattern, item.ID)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadPattern, err)
			}
			if !ok {
				continue
			}
		}
		if text != "" && !matchesText(item, text) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func matchesText(item Item, text string) bool {
	return strings.Contains(strings.ToLower(item.Name), text) ||
		strings.Contains(strings.ToLower(item.DisplayDescription()), text)
}

// Arrange moves pinned items to the front, otherwise keeping order
func Arrange(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsPinned && !out[j].IsPinned
	})
	return out
}

// Find returns the item with the given id
func Find(items []Item, id string) (Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Counts summarizes a catalog for list footers
type Counts struct {
	Total      int
	Favorites  int
	Pinned     int
	Translated int
}

// Count tallies the flags across items
func Count(items []Item) Counts {
	var c Counts
	for _, item := range items {
		c.Total++
		if item.IsFavorite {
			c.Favorites++
		}
		if item.IsPinned {
			c.Pinned++
		}
		if item.Translated() {
			c.Translated++
		}
	}
	return c
}
