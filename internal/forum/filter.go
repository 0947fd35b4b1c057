package forum

import (
	"strings"

	"gullyconnect/internal/models"
)

// PostFilter holds up to three independent facets applied over an in-memory
// post collection. An empty facet matches everything; set facets must all
// match (logical AND). Matching is pure and preserves input order, so a
// caller that fetched by recency gets filtered results by recency.
type PostFilter struct {
	// Query is matched case-insensitively as a substring of title or body.
	Query string
	// Area matches the post's area exactly, or — for an aggregate area
	// that groups neighbourhood-level categories — as the first segment of
	// the category namespace.
	Area string
	// Topic matches when it appears as a path segment anywhere in the
	// post's category, not only as the trailing segment.
	Topic string
}

// IsZero reports whether no facet is set.
func (f PostFilter) IsZero() bool {
	return f.Query == "" && f.Area == "" && f.Topic == ""
}

// Apply returns the posts matching every set facet, in input order.
func (f PostFilter) Apply(posts []*models.Post) []*models.Post {
	if f.IsZero() {
		return posts
	}
	matched := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if f.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Matches reports whether a single post satisfies every set facet.
func (f PostFilter) Matches(p *models.Post) bool {
	return f.matchQuery(p) && f.matchArea(p) && f.matchTopic(p)
}

func (f PostFilter) matchQuery(p *models.Post) bool {
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Body), q)
}

func (f PostFilter) matchArea(p *models.Post) bool {
	if f.Area == "" {
		return true
	}
	if strings.EqualFold(p.Area, f.Area) {
		return true
	}
	// Aggregate areas (e.g. a city grouping neighbourhood categories) match
	// by category namespace prefix.
	return strings.HasPrefix(
		strings.ToLower(p.Category),
		strings.ToLower(models.CategoryRoot+"/"+f.Area+"/"),
	)
}

func (f PostFilter) matchTopic(p *models.Post) bool {
	if f.Topic == "" {
		return true
	}
	for _, segment := range strings.Split(p.Category, "/") {
		if strings.EqualFold(segment, f.Topic) {
			return true
		}
	}
	return false
}
