// Package render prints the inspector's views as line-oriented text.
// Every printer takes an io.Writer so output is testable without touching
// os.Stdout.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/oaspect/oaspect/internal/index"
	"github.com/oaspect/oaspect/internal/model"
)

// Info prints the API title, version and description block.
func Info(w io.Writer, info model.Info) {
	fmt.Fprintln(w, "\nAPI Information:")
	fmt.Fprintf(w, "Title: %s\n", info.Title)
	fmt.Fprintf(w, "Version: %s\n", info.Version)
	fmt.Fprintln(w, "\nDescription:")
	fmt.Fprintln(w, info.Description)
}

// Auth prints the security schemes and global requirements.
func Auth(w io.Writer, spec *model.Spec) {
	fmt.Fprintln(w, "\nAuthentication Requirements:")
	if len(spec.Security) == 0 && len(spec.GlobalSecurity) == 0 {
		fmt.Fprintln(w, "No authentication information specified")
		return
	}

	for _, scheme := range spec.Security {
		fmt.Fprintf(w, "\n%s:\n", scheme.Name)
		fmt.Fprintf(w, "Type: %s\n", scheme.Type)
		fmt.Fprintf(w, "Description: %s\n", scheme.Description)
		if scheme.Scheme != "" {
			fmt.Fprintf(w, "Scheme: %s\n", scheme.Scheme)
		}
		if scheme.BearerFormat != "" {
			fmt.Fprintf(w, "Bearer Format: %s\n", scheme.BearerFormat)
		}
	}
}

// Schema prints a named component schema as YAML.
func Schema(w io.Writer, name string, schema *model.Schema) error {
	fmt.Fprintf(w, "\nSchema: %s\n", name)
	out, err := yaml.Marshal(schema)
	if err != nil {
		return fmt.Errorf("rendering schema %s: %w", name, err)
	}
	_, err = w.Write(out)
	return err
}

// EndpointDetails prints every method of one endpoint in full.
func EndpointDetails(w io.Writer, path string, operations []model.Operation) error {
	fmt.Fprintf(w, "\nEndpoint: %s\n", path)
	for _, op := range operations {
		fmt.Fprintf(w, "\nMethod: %s\n", op.Method)
		fmt.Fprintf(w, "Summary: %s\n", op.Summary)
		fmt.Fprintf(w, "Description: %s\n", op.Description)

		if len(op.Tags) > 0 {
			fmt.Fprintf(w, "Tags: %s\n", strings.Join(op.Tags, ", "))
		}

		if len(op.Parameters) > 0 {
			fmt.Fprintln(w, "\nParameters:")
			for _, param := range op.Parameters {
				fmt.Fprintf(w, "  %s (%s)\n", param.Name, param.In)
				fmt.Fprintf(w, "    Description: %s\n", param.Description)
				fmt.Fprintf(w, "    Required: %t\n", param.Required)
			}
		}

		if op.RequestBody != nil {
			fmt.Fprintln(w, "\nRequest Body:")
			out, err := yaml.Marshal(op.RequestBody)
			if err != nil {
				return fmt.Errorf("rendering request body for %s %s: %w", op.Method, path, err)
			}
			if _, err := w.Write(out); err != nil {
				return err
			}
		}

		if len(op.Responses) > 0 {
			fmt.Fprintln(w, "\nResponses:")
			for _, resp := range op.Responses {
				fmt.Fprintf(w, "  %s: %s\n", resp.StatusCode, resp.Description)
			}
		}
	}
	return nil
}

// EndpointList prints every endpoint with method summaries, sorted by path.
// A non-empty methodFilter limits the method lines to that verb.
func EndpointList(w io.Writer, ix *index.Index, methodFilter string) {
	fmt.Fprintln(w, "\nAvailable Endpoints:")
	filter := model.Method(strings.ToUpper(methodFilter))

	paths := make([]model.Path, len(ix.Paths))
	copy(paths, ix.Paths)
	sort.Slice(paths, func(i, j int) bool { return paths[i].Path < paths[j].Path })

	for _, p := range paths {
		fmt.Fprintf(w, "\n%s\n", p.Path)
		for _, op := range p.Operations {
			if methodFilter != "" && op.Method != filter {
				continue
			}
			fmt.Fprintf(w, "  %s: %s\n", op.Method, op.Summary)
		}
	}
}

// PathTree prints the hierarchical by-path view, two spaces per level.
// Methods registered at a node print before its child segments.
func PathTree(w io.Writer, root *index.PathNode) {
	fmt.Fprintln(w, "\nEndpoints by Path:")
	printTree(w, root, 0)
}

func printTree(w io.Writer, node *index.PathNode, depth int) {
	pad := strings.Repeat("  ", depth)
	for _, op := range node.Operations {
		fmt.Fprintf(w, "%s%s: %s\n", pad, op.Method, op.Summary)
	}
	for _, seg := range node.SortedSegments() {
		fmt.Fprintf(w, "%s%s/\n", pad, seg)
		printTree(w, node.Children[seg], depth+1)
	}
}

// MethodGroups prints the by-method view; paths sort lexicographically.
// A non-empty methodFilter prints only that verb's group.
func MethodGroups(w io.Writer, groups map[model.Method][]string, methodFilter string) {
	fmt.Fprintln(w, "\nEndpoints by Method:")
	filter := model.Method(strings.ToUpper(methodFilter))

	methods := make([]string, 0, len(groups))
	for method := range groups {
		methods = append(methods, string(method))
	}
	sort.Strings(methods)

	for _, method := range methods {
		if methodFilter != "" && model.Method(method) != filter {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", method)
		paths := make([]string, len(groups[model.Method(method)]))
		copy(paths, groups[model.Method(method)])
		sort.Strings(paths)
		for _, path := range paths {
			fmt.Fprintf(w, "  %s\n", path)
		}
	}
}

// TagGroups prints the by-tag view; buckets sort by name, entries by path.
func TagGroups(w io.Writer, groups map[string][]index.TagEntry) {
	fmt.Fprintln(w, "\nEndpoints by Tag:")

	tags := make([]string, 0, len(groups))
	for tag := range groups {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		fmt.Fprintf(w, "\n%s:\n", tag)
		for _, entry := range sortedEntries(groups[tag]) {
			fmt.Fprintf(w, "  %s [%s]\n", entry.Path, entry.Method)
		}
	}
}

// SearchResults prints each matching endpoint with the methods to report.
func SearchResults(w io.Writer, matches []index.Match) {
	fmt.Fprintln(w, "\nMatching Endpoints:")
	for _, match := range matches {
		fmt.Fprintf(w, "\n%s\n", match.Path)
		for _, op := range match.Operations {
			fmt.Fprintf(w, "  %s: %s\n", op.Method, op.Summary)
		}
	}
}

// CategoryDetails prints a resolved tag bucket: summary lines first, then the
// full detail of every endpoint in the bucket, path-sorted.
func CategoryDetails(w io.Writer, ix *index.Index, tag string) error {
	entries := sortedEntries(ix.ByTag()[tag])

	fmt.Fprintf(w, "\n=== %s API Endpoints ===\n\n", tag)
	fmt.Fprintln(w, "Summary:")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s %s\n", entry.Method, entry.Path)
		fmt.Fprintf(w, "  %s\n\n", entry.Summary)
	}

	fmt.Fprintln(w, "\nDetailed Specifications:")
	for _, entry := range entries {
		fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 80))
		p, ok := ix.Endpoint(entry.Path)
		if !ok {
			continue
		}
		if err := EndpointDetails(w, p.Path, p.Operations); err != nil {
			return err
		}
	}
	return nil
}

// GroupList prints the document's declared endpoint groups.
func GroupList(w io.Writer, tags []model.Tag) {
	if len(tags) == 0 {
		fmt.Fprintln(w, "No endpoint groups found in the API specification")
		return
	}
	fmt.Fprintln(w, "\nAvailable Endpoint Groups:")
	for _, tag := range tags {
		fmt.Fprintf(w, "- %s\n", tag.Name)
	}
}

// GroupDescription prints one group's full description. Vendor descriptions
// are often HTML; they print as-is.
func GroupDescription(w io.Writer, tag model.Tag) {
	fmt.Fprintf(w, "\n=== %s API Endpoints ===\n\n", tag.Name)
	fmt.Fprintln(w, tag.Description)
}

func sortedEntries(entries []index.TagEntry) []index.TagEntry {
	sorted := make([]index.TagEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })
	return sorted
}
