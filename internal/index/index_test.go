package index

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oaspect/oaspect/internal/model"
)

func testSpec() *model.Spec {
	return &model.Spec{
		Tags: []model.Tag{
			{Name: "Users", Description: "User management"},
			{Name: "Usage", Description: "Usage reporting"},
		},
		Paths: []model.Path{
			{Path: "/users", Operations: []model.Operation{
				{Method: model.MethodGet, Path: "/users", Summary: "List users", Description: "Returns all users", Tags: []string{"Users"}},
				{Method: model.MethodPost, Path: "/users", Summary: "Create user", Description: "Adds a user", Tags: []string{"Users", "Admin"}},
			}},
			{Path: "/users/{id}", Operations: []model.Operation{
				{Method: model.MethodGet, Path: "/users/{id}", Summary: "Get user", Tags: []string{"Users"}},
			}},
			{Path: "/usage", Operations: []model.Operation{
				{Method: model.MethodGet, Path: "/usage", Summary: "Usage report", Description: "Aggregated usage", Tags: []string{"Usage"}},
				{Method: model.MethodDelete, Path: "/usage", Summary: "Purge report data", Description: "Clears report counters", Tags: []string{"Usage"}},
			}},
			{Path: "/health", Operations: []model.Operation{
				{Method: model.MethodGet, Path: "/health", Summary: "Health check"},
			}},
		},
	}
}

func TestEndpointLookup(t *testing.T) {
	ix := New(testSpec())

	p, ok := ix.Endpoint("/users")
	require.True(t, ok)
	require.Len(t, p.Operations, 2)
	require.Equal(t, model.MethodGet, p.Operations[0].Method)

	_, ok = ix.Endpoint("/missing")
	require.False(t, ok)
}

func TestByMethod(t *testing.T) {
	ix := New(testSpec())
	grouped := ix.ByMethod()

	require.ElementsMatch(t, []string{"/users", "/users/{id}", "/usage", "/health"}, grouped[model.MethodGet])
	require.Equal(t, []string{"/users"}, grouped[model.MethodPost])
	require.Equal(t, []string{"/usage"}, grouped[model.MethodDelete])
	require.NotContains(t, grouped, model.MethodPut)
}

func TestByTag(t *testing.T) {
	ix := New(testSpec())
	grouped := ix.ByTag()

	require.Len(t, grouped["Users"], 3)
	require.Len(t, grouped["Admin"], 1)
	require.Len(t, grouped["Usage"], 2)

	require.Equal(t, []TagEntry{
		{Path: "/health", Method: model.MethodGet, Summary: "Health check"},
	}, grouped[UntaggedBucket])

	// Total records across buckets is sum over endpoints of max(1, len(tags)).
	total := 0
	for _, entries := range grouped {
		total += len(entries)
	}
	require.Equal(t, 7, total)
}

func TestByPathStructure(t *testing.T) {
	ix := New(testSpec())
	root := ix.ByPath()

	require.Equal(t, []string{"health", "usage", "users"}, root.SortedSegments())
	require.Empty(t, root.Operations)

	users := root.Children["users"]
	require.Len(t, users.Operations, 2)
	require.Equal(t, []string{"{id}"}, users.SortedSegments())
	require.Len(t, users.Children["{id}"].Operations, 1)
}

func TestByPathLossless(t *testing.T) {
	spec := testSpec()
	ix := New(spec)

	want := make(map[string]bool)
	for _, p := range spec.Paths {
		for _, op := range p.Operations {
			want[string(op.Method)+" "+p.Path] = true
		}
	}

	got := make(map[string]bool)
	var walk func(node *PathNode)
	walk = func(node *PathNode) {
		for _, op := range node.Operations {
			got[string(op.Method)+" "+op.Path] = true
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(ix.ByPath())

	require.Equal(t, want, got)
}

func TestRootPathAttachesAtRoot(t *testing.T) {
	ix := New(&model.Spec{Paths: []model.Path{
		{Path: "/", Operations: []model.Operation{
			{Method: model.MethodGet, Path: "/", Summary: "Root"},
		}},
	}})

	root := ix.ByPath()
	require.Empty(t, root.Children)
	require.Len(t, root.Operations, 1)
}

func TestViewsAreIdempotent(t *testing.T) {
	ix := New(testSpec())

	require.Equal(t, ix.ByTag(), ix.ByTag())
	require.Equal(t, ix.ByMethod(), ix.ByMethod())
	require.Equal(t, ix.ByPath(), ix.ByPath())
}

func TestSearchPathMatchReportsAllMethods(t *testing.T) {
	ix := New(testSpec())

	matches, err := ix.Search("usage", false)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "/usage", matches[0].Path)
	require.Len(t, matches[0].Operations, 2)
}

func TestSearchTextMatchFirstMethodOnly(t *testing.T) {
	ix := New(testSpec())

	// "/usage" does not contain "report"; both of its methods match on text,
	// but only the first is reported.
	matches, err := ix.Search("report", false)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "/usage", matches[0].Path)
	require.Len(t, matches[0].Operations, 1)
	require.Equal(t, model.MethodGet, matches[0].Operations[0].Method)
}

func TestSearchAllMatches(t *testing.T) {
	ix := New(testSpec())

	matches, err := ix.Search("report", true)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Len(t, matches[0].Operations, 2)
}

func TestSearchCaseInsensitive(t *testing.T) {
	ix := New(testSpec())

	matches, err := ix.Search("LIST", false)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "/users", matches[0].Path)
	require.Equal(t, model.MethodGet, matches[0].Operations[0].Method)
}

func TestSearchInvalidPattern(t *testing.T) {
	ix := New(testSpec())

	_, err := ix.Search("[", false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid search pattern")
}

func TestMatchTags(t *testing.T) {
	ix := New(testSpec())

	require.Equal(t, []string{"Usage", "Users"}, ix.MatchTags("us"))
	require.Equal(t, []string{"Users"}, ix.MatchTags("users"))
	require.Empty(t, ix.MatchTags("billing"))
}

func TestTagNames(t *testing.T) {
	ix := New(testSpec())
	require.Equal(t, []string{"Admin", "Usage", "Users", UntaggedBucket}, ix.TagNames())
}
