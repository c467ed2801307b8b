package index

import (
	"strings"

	"github.com/oaspect/oaspect/internal/model"
)

// MatchGroups resolves a group name against the document's declared tag list.
// Exact case-insensitive matches win; only when there are none does it fall
// back to substring matching.
func MatchGroups(tags []model.Tag, query string) []model.Tag {
	needle := strings.ToLower(query)

	var matches []model.Tag
	for _, tag := range tags {
		if strings.ToLower(tag.Name) == needle {
			matches = append(matches, tag)
		}
	}
	if len(matches) > 0 {
		return matches
	}

	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag.Name), needle) {
			matches = append(matches, tag)
		}
	}
	return matches
}
