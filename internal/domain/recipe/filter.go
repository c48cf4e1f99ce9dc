package recipe

import (
	"strings"

	"github.com/hearthhq/hearth/internal/domain/tags"
)

const (
	// FilterAll matches every category
	FilterAll = "All"
	// FilterFavorites matches favorite recipes regardless of category
	FilterFavorites = "Favorites"
)

// Filter selects recipes on the catalog page. Zero fields match everything.
type Filter struct {
	Search   string
	Category string
	Tag      string
}

// Matches reports whether r passes every criterion
func (f Filter) Matches(r *Recipe) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(r.title), strings.ToLower(f.Search)) {
		return false
	}

	switch f.Category {
	case "", FilterAll:
	case FilterFavorites:
		if !r.favorite {
			return false
		}
	default:
		if string(r.category) != f.Category {
			return false
		}
	}

	if f.Tag != "" && !r.HasTag(f.Tag) {
		return false
	}
	return true
}

// Apply keeps the recipes matching f, preserving order
func (f Filter) Apply(recipes []*Recipe) []*Recipe {
	out := make([]*Recipe, 0, len(recipes))
	for _, r := range recipes {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// TagCount pairs a tag with the number of recipes carrying it
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Vocabulary returns the sorted unique tags across recipes with their counts
func Vocabulary(recipes []*Recipe) []TagCount {
	lists := make([][]string, 0, len(recipes))
	counts := make(map[string]int)
	for _, r := range recipes {
		lists = append(lists, r.tags)
		for _, t := range r.tags {
			counts[t]++
		}
	}

	all := tags.Vocabulary(lists...)
	out := make([]TagCount, len(all))
	for i, t := range all {
		out[i] = TagCount{Tag: t, Count: counts[t]}
	}
	return out
}
