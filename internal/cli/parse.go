package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oaspect/oaspect/internal/index"
	"github.com/oaspect/oaspect/internal/loader"
	"github.com/oaspect/oaspect/internal/render"
)

// ParseCmd is the simpler parallel tool: positional spec file, a few flags,
// and a combined info+list dump when no action is given.
func ParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "specparse <spec-file>",
		Short:   "Parse and display an OpenAPI specification",
		Version: "1.0.0",
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}

	flags := cmd.Flags()
	flags.Bool("info", false, "Show API information")
	flags.Bool("list", false, "List all endpoints")
	flags.String("method", "", "Filter by HTTP method (GET, POST, etc.)")
	flags.String("endpoint", "", "Show details for specific endpoint")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	result, err := loader.LoadFile(args[0])
	if err != nil {
		return err
	}

	spec := loader.Transform(result)
	ix := index.New(spec)

	out := cmd.OutOrStdout()
	flags := cmd.Flags()

	switch {
	case mustBool(flags, "info"):
		render.Info(out, spec.Info)

	case mustString(flags, "endpoint") != "":
		path := mustString(flags, "endpoint")
		p, ok := ix.Endpoint(path)
		if !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "Endpoint %s not found\n", path)
			return nil
		}
		return render.EndpointDetails(out, p.Path, p.Operations)

	case mustBool(flags, "list"):
		render.OrderedList(out, ix, mustString(flags, "method"))

	default:
		render.Info(out, spec.Info)
		fmt.Fprintf(out, "\n%s\n\n", strings.Repeat("=", 80))
		render.OrderedList(out, ix, mustString(flags, "method"))
	}

	return nil
}
