// Package index builds the derived views of an API's endpoint set: the path
// hierarchy, the per-method and per-tag groupings, and the point lookups the
// inspector exposes. Views are pure projections; building twice from the same
// spec yields identical results.
package index

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/oaspect/oaspect/internal/model"
)

// UntaggedBucket collects endpoints that declare no tags.
const UntaggedBucket = "untagged"

// Index holds the extracted endpoint set in document order.
type Index struct {
	Paths []model.Path

	byPath map[string]*model.Path
}

func New(spec *model.Spec) *Index {
	ix := &Index{
		Paths:  spec.Paths,
		byPath: make(map[string]*model.Path, len(spec.Paths)),
	}
	for i := range ix.Paths {
		ix.byPath[ix.Paths[i].Path] = &ix.Paths[i]
	}
	return ix
}

// Endpoint returns the operations registered under an exact path.
func (ix *Index) Endpoint(path string) (*model.Path, bool) {
	p, ok := ix.byPath[path]
	return p, ok
}

// PathNode is one level of the by-path view. Children maps the next path
// segment to its subtree; Operations is non-empty only where a full path
// terminates at this node.
type PathNode struct {
	Children   map[string]*PathNode
	Operations []model.Operation
}

func newPathNode() *PathNode {
	return &PathNode{Children: make(map[string]*PathNode)}
}

// SortedSegments returns the child segments in lexicographic order.
func (n *PathNode) SortedSegments() []string {
	segments := make([]string, 0, len(n.Children))
	for seg := range n.Children {
		segments = append(segments, seg)
	}
	sort.Strings(segments)
	return segments
}

// ByPath builds the prefix tree keyed by slash-separated path segments.
// Leading and trailing empty segments are dropped, so "/" attaches its
// operations to the root.
func (ix *Index) ByPath() *PathNode {
	root := newPathNode()
	for _, p := range ix.Paths {
		node := root
		for _, seg := range splitSegments(p.Path) {
			child, ok := node.Children[seg]
			if !ok {
				child = newPathNode()
				node.Children[seg] = child
			}
			node = child
		}
		node.Operations = p.Operations
	}
	return root
}

func splitSegments(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// ByMethod inverts the endpoint set into verb -> supporting paths.
// Paths keep document order; callers sort for display.
func (ix *Index) ByMethod() map[model.Method][]string {
	grouped := make(map[model.Method][]string)
	for _, p := range ix.Paths {
		for _, op := range p.Operations {
			grouped[op.Method] = append(grouped[op.Method], p.Path)
		}
	}
	return grouped
}

// TagEntry is one endpoint's appearance in a tag bucket.
type TagEntry struct {
	Path    string
	Method  model.Method
	Summary string
}

// ByTag groups endpoints by declared tag. An endpoint with no tags lands in
// the UntaggedBucket, so every (path, method) pair appears max(1, len(tags))
// times across all buckets.
func (ix *Index) ByTag() map[string][]TagEntry {
	grouped := make(map[string][]TagEntry)
	for _, p := range ix.Paths {
		for _, op := range p.Operations {
			tags := op.Tags
			if len(tags) == 0 {
				tags = []string{UntaggedBucket}
			}
			for _, tag := range tags {
				grouped[tag] = append(grouped[tag], TagEntry{
					Path:    p.Path,
					Method:  op.Method,
					Summary: op.Summary,
				})
			}
		}
	}
	return grouped
}

// TagNames returns every tag bucket name, sorted.
func (ix *Index) TagNames() []string {
	grouped := ix.ByTag()
	names := make([]string, 0, len(grouped))
	for tag := range grouped {
		names = append(names, tag)
	}
	sort.Strings(names)
	return names
}

// MatchTags returns the tag buckets whose name contains the query,
// case-insensitively, sorted for stable output.
func (ix *Index) MatchTags(query string) []string {
	needle := strings.ToLower(query)
	var matches []string
	for _, tag := range ix.TagNames() {
		if strings.Contains(strings.ToLower(tag), needle) {
			matches = append(matches, tag)
		}
	}
	return matches
}

// Match is one endpoint reported by Search, with the operations to display.
type Match struct {
	Path       string
	Operations []model.Operation
}

// Search evaluates a case-insensitive pattern against each endpoint. A path
// match reports every method. Otherwise summaries and descriptions are
// checked per method: by default only the first matching method is reported
// (compatibility with the historical behavior); allMatches reports them all.
func (ix *Index) Search(pattern string, allMatches bool) ([]Match, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern %q: %w", pattern, err)
	}

	var results []Match
	for _, p := range ix.Paths {
		if re.MatchString(p.Path) {
			results = append(results, Match{Path: p.Path, Operations: p.Operations})
			continue
		}

		var matched []model.Operation
		for _, op := range p.Operations {
			if re.MatchString(op.Summary) || re.MatchString(op.Description) {
				matched = append(matched, op)
				if !allMatches {
					break
				}
			}
		}
		if len(matched) > 0 {
			results = append(results, Match{Path: p.Path, Operations: matched})
		}
	}
	return results, nil
}
