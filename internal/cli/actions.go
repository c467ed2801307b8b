package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/oaspect/oaspect/internal/index"
	"github.com/oaspect/oaspect/internal/model"
	"github.com/oaspect/oaspect/internal/render"
)

// runCategory resolves a case-insensitive substring match over tag buckets:
// zero matches lists what exists, several list the candidates, exactly one
// prints the full dump.
func runCategory(out io.Writer, ix *index.Index, category string) error {
	matches := ix.MatchTags(category)

	switch len(matches) {
	case 0:
		fmt.Fprintf(out, "No category found matching '%s'\n", category)
		fmt.Fprintln(out, "\nAvailable categories:")
		for _, tag := range ix.TagNames() {
			fmt.Fprintf(out, "- %s\n", tag)
		}
	case 1:
		return render.CategoryDetails(out, ix, matches[0])
	default:
		fmt.Fprintf(out, "Multiple categories match '%s':\n", category)
		for _, tag := range matches {
			fmt.Fprintf(out, "- %s\n", tag)
		}
	}
	return nil
}

func runDescribeGroup(out io.Writer, spec *model.Spec, name string) {
	matches := index.MatchGroups(spec.Tags, name)

	switch len(matches) {
	case 0:
		fmt.Fprintf(out, "No endpoint group found matching '%s'\n", name)
		fmt.Fprintln(out, "\nAvailable groups:")
		for _, tag := range spec.Tags {
			fmt.Fprintf(out, "- %s\n", tag.Name)
		}
	case 1:
		render.GroupDescription(out, matches[0])
	default:
		fmt.Fprintf(out, "Multiple endpoint groups match '%s':\n", name)
		for _, tag := range matches {
			fmt.Fprintf(out, "- %s\n", tag.Name)
		}
	}
}

func mustBool(flags *pflag.FlagSet, name string) bool {
	v, _ := flags.GetBool(name)
	return v
}

func mustString(flags *pflag.FlagSet, name string) string {
	v, _ := flags.GetString(name)
	return v
}
