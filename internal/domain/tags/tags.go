// Package tags implements the recipe tag field: an ordered, bounded set of
// labels with keyboard editing and autocomplete against a vocabulary.
package tags

import (
	"sort"
	"strings"
)

const (
	// DefaultMaxTags caps how many tags a recipe may carry.
	DefaultMaxTags = 10

	// SuggestedLimit bounds the "suggested tags" panel.
	SuggestedLimit = 15
)

// Set is an insertion-ordered set of tags with a maximum size
type Set struct {
	items []string
	max   int
}

// NewSet creates a set holding at most max tags. A non-positive max means
// DefaultMaxTags. Initial tags go through Add, so duplicates and overflow
// are dropped.
func NewSet(max int, initial ...string) *Set {
	if max <= 0 {
		max = DefaultMaxTags
	}
	s := &Set{items: make([]string, 0, len(initial)), max: max}
	for _, tag := range initial {
		s.Add(tag)
	}
	return s
}

// Add appends a trimmed tag. It is a no-op when the tag is blank, already
// present, or the set is full.
func (s *Set) Add(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || s.Contains(tag) || s.Full() {
		return false
	}
	s.items = append(s.items, tag)
	return true
}

// Remove deletes tag if present
func (s *Set) Remove(tag string) bool {
	for i, existing := range s.items {
		if existing == tag {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveLast drops the most recently added tag
func (s *Set) RemoveLast() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last, true
}

// Contains reports exact (case-sensitive) membership
func (s *Set) Contains(tag string) bool {
	for _, existing := range s.items {
		if existing == tag {
			return true
		}
	}
	return false
}

// Full reports whether another tag would exceed the cap
func (s *Set) Full() bool {
	return len(s.items) >= s.max
}

// Len returns the number of tags
func (s *Set) Len() int {
	return len(s.items)
}

// Max returns the cap
func (s *Set) Max() int {
	return s.max
}

// Items returns a copy of the tags in insertion order
func (s *Set) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Suggest returns vocabulary entries containing query (case-insensitive),
// skipping tags already in applied. An empty query yields nothing.
func Suggest(query string, vocabulary []string, applied *Set) []string {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)
	var out []string
	for _, tag := range vocabulary {
		if applied != nil && applied.Contains(tag) {
			continue
		}
		if strings.Contains(strings.ToLower(tag), needle) {
			out = append(out, tag)
		}
	}
	return out
}

// Unapplied returns up to limit vocabulary entries not in applied.
func Unapplied(vocabulary []string, applied *Set, limit int) []string {
	var out []string
	for _, tag := range vocabulary {
		if limit > 0 && len(out) >= limit {
			break
		}
		if applied != nil && applied.Contains(tag) {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// Vocabulary is the sorted unique union of the given tag lists.
func Vocabulary(lists ...[]string) []string {
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, tag := range list {
			seen[tag] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
