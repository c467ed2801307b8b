package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oaspect/oaspect/internal/index"
	"github.com/oaspect/oaspect/internal/model"
)

func testIndex() *index.Index {
	return index.New(&model.Spec{
		Paths: []model.Path{
			{Path: "/users", Operations: []model.Operation{
				{Method: model.MethodGet, Path: "/users", Summary: "List users", Tags: []string{"Users"}},
				{Method: model.MethodPost, Path: "/users", Summary: "Create user", Tags: []string{"Users"}},
			}},
			{Path: "/users/{id}", Operations: []model.Operation{
				{Method: model.MethodGet, Path: "/users/{id}", Summary: "Get user", Tags: []string{"Users"}},
			}},
			{Path: "/health", Operations: []model.Operation{
				{Method: model.MethodGet, Path: "/health", Summary: "Health check"},
			}},
		},
	})
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	Info(&buf, model.Info{Title: "Petstore", Version: "1.2.3", Description: "A sample API"})

	out := buf.String()
	require.Contains(t, out, "API Information:")
	require.Contains(t, out, "Title: Petstore")
	require.Contains(t, out, "Version: 1.2.3")
	require.Contains(t, out, "A sample API")
}

func TestAuthNoInformation(t *testing.T) {
	var buf bytes.Buffer
	Auth(&buf, &model.Spec{})
	require.Contains(t, buf.String(), "No authentication information specified")
}

func TestAuthSchemes(t *testing.T) {
	var buf bytes.Buffer
	Auth(&buf, &model.Spec{
		Security: []model.SecurityScheme{
			{Name: "bearerAuth", Type: model.SecurityTypeHTTP, Description: "Bearer token", Scheme: "bearer", BearerFormat: "JWT"},
		},
	})

	out := buf.String()
	require.Contains(t, out, "bearerAuth:")
	require.Contains(t, out, "Type: http")
	require.Contains(t, out, "Scheme: bearer")
	require.Contains(t, out, "Bearer Format: JWT")
}

func TestSchemaYAML(t *testing.T) {
	var buf bytes.Buffer
	err := Schema(&buf, "User", &model.Schema{
		Type:     model.TypeObject,
		Required: []string{"id"},
		Properties: []model.Property{
			{Name: "id", Schema: &model.Schema{Type: model.TypeString}},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Schema: User")
	require.Contains(t, out, "type: object")
	require.Contains(t, out, "name: id")
}

func TestEndpointDetails(t *testing.T) {
	var buf bytes.Buffer
	err := EndpointDetails(&buf, "/users", []model.Operation{
		{
			Method:      model.MethodPost,
			Path:        "/users",
			Summary:     "Create user",
			Description: "Adds a user",
			Tags:        []string{"Users", "Admin"},
			Parameters: []model.Parameter{
				{Name: "dryRun", In: model.LocationQuery, Description: "Validate only", Required: true},
			},
			RequestBody: &model.RequestBody{
				Required: true,
				Content:  []model.MediaTypeContent{{MediaType: "application/json"}},
			},
			Responses: []model.Response{
				{StatusCode: "201", Description: "Created"},
				{StatusCode: "400", Description: "Bad request"},
			},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Endpoint: /users")
	require.Contains(t, out, "Method: POST")
	require.Contains(t, out, "Summary: Create user")
	require.Contains(t, out, "Tags: Users, Admin")
	require.Contains(t, out, "  dryRun (query)")
	require.Contains(t, out, "    Required: true")
	require.Contains(t, out, "Request Body:")
	require.Contains(t, out, "mediaType: application/json")
	require.Contains(t, out, "  201: Created")
	require.Contains(t, out, "  400: Bad request")
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("sink closed") }

func TestEndpointDetailsPropagatesWriteError(t *testing.T) {
	err := EndpointDetails(failWriter{}, "/users", []model.Operation{{
		Method:      model.MethodPost,
		Path:        "/users",
		RequestBody: &model.RequestBody{Required: true},
	}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "sink closed")
}

func TestEndpointListSortsAndFilters(t *testing.T) {
	var buf bytes.Buffer
	EndpointList(&buf, testIndex(), "")

	out := buf.String()
	require.Less(t, strings.Index(out, "/health"), strings.Index(out, "/users"))
	require.Contains(t, out, "  POST: Create user")

	buf.Reset()
	EndpointList(&buf, testIndex(), "get")
	require.NotContains(t, buf.String(), "POST")
	require.Contains(t, buf.String(), "  GET: List users")
}

func TestPathTree(t *testing.T) {
	var buf bytes.Buffer
	PathTree(&buf, testIndex().ByPath())

	want := "\nEndpoints by Path:\n" +
		"health/\n" +
		"  GET: Health check\n" +
		"users/\n" +
		"  GET: List users\n" +
		"  POST: Create user\n" +
		"  {id}/\n" +
		"    GET: Get user\n"
	require.Equal(t, want, buf.String())
}

func TestMethodGroups(t *testing.T) {
	var buf bytes.Buffer
	MethodGroups(&buf, testIndex().ByMethod(), "")

	out := buf.String()
	require.Contains(t, out, "\nGET:\n")
	require.Contains(t, out, "\nPOST:\n")
	require.Less(t, strings.Index(out, "GET:"), strings.Index(out, "POST:"))

	buf.Reset()
	MethodGroups(&buf, testIndex().ByMethod(), "POST")
	require.NotContains(t, buf.String(), "GET:")
	require.Contains(t, buf.String(), "  /users\n")
}

func TestTagGroups(t *testing.T) {
	var buf bytes.Buffer
	TagGroups(&buf, testIndex().ByTag())

	out := buf.String()
	require.Contains(t, out, "\nUsers:\n")
	require.Contains(t, out, "\nuntagged:\n")
	require.Contains(t, out, "  /users [GET]")
	require.Contains(t, out, "  /health [GET]")
}

func TestSearchResults(t *testing.T) {
	ix := testIndex()
	matches, err := ix.Search("user", false)
	require.NoError(t, err)

	var buf bytes.Buffer
	SearchResults(&buf, matches)

	out := buf.String()
	require.Contains(t, out, "Matching Endpoints:")
	require.Contains(t, out, "/users")
	require.Contains(t, out, "  GET: List users")
}

func TestCategoryDetails(t *testing.T) {
	var buf bytes.Buffer
	err := CategoryDetails(&buf, testIndex(), "Users")
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "=== Users API Endpoints ===")
	require.Contains(t, out, "Summary:")
	require.Contains(t, out, "GET /users")
	require.Contains(t, out, "Detailed Specifications:")
	require.Contains(t, out, "Endpoint: /users/{id}")
	// Entries are path-sorted.
	require.Less(t, strings.Index(out, "GET /users\n"), strings.Index(out, "GET /users/{id}"))
}

func TestGroupList(t *testing.T) {
	var buf bytes.Buffer
	GroupList(&buf, nil)
	require.Contains(t, buf.String(), "No endpoint groups found")

	buf.Reset()
	GroupList(&buf, []model.Tag{{Name: "Users"}, {Name: "Calls"}})
	out := buf.String()
	require.Contains(t, out, "Available Endpoint Groups:")
	require.Contains(t, out, "- Users")
	require.Contains(t, out, "- Calls")
}

func TestGroupDescription(t *testing.T) {
	var buf bytes.Buffer
	GroupDescription(&buf, model.Tag{Name: "Users", Description: "<p>User management</p>"})

	out := buf.String()
	require.Contains(t, out, "=== Users API Endpoints ===")
	require.Contains(t, out, "<p>User management</p>")
}

func TestOrderedList(t *testing.T) {
	var buf bytes.Buffer
	OrderedList(&buf, testIndex(), "")

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "Available Endpoints:\n"))
	// Document order, not sorted.
	require.Less(t, strings.Index(out, "/users"), strings.Index(out, "/health"))

	buf.Reset()
	OrderedList(&buf, testIndex(), "get")
	require.Contains(t, buf.String(), "/users [GET]: List users")
	require.NotContains(t, buf.String(), "POST")
}
