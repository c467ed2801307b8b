package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oaspect/oaspect/internal/config"
	"github.com/oaspect/oaspect/internal/index"
	"github.com/oaspect/oaspect/internal/loader"
	"github.com/oaspect/oaspect/internal/render"
)

const inspectLong = `oaspect - a tool for exploring and understanding OpenAPI specifications

It helps you navigate and understand API documentation by providing:
- Category-based exploration of endpoints
- Detailed endpoint information and schemas
- Authentication requirements
- Search capabilities
- Multiple organization views`

func InspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "oaspect",
		Short:   "Explore and query OpenAPI specification documents",
		Long:    inspectLong,
		Version: "1.0.0",
		RunE:    runInspect,
	}

	config.BindCommonFlags(cmd)
	flags := cmd.Flags()
	flags.String("spec-file", "", "Path to the OpenAPI specification JSON file (default: first *-openapi.json in the working directory)")

	// Primary actions, mutually exclusive.
	flags.Bool("list", false, "List all available endpoints with their summaries")
	flags.Bool("info", false, "Display general API information")
	flags.Bool("auth", false, "Show API authentication requirements and security schemes")
	flags.Bool("validate", false, "Validate the document against the OpenAPI schema rules")
	flags.String("endpoint", "", "Show detailed information about a specific endpoint (e.g. \"/users/{id}\")")
	flags.String("schema", "", "Display a specific schema definition")
	flags.String("search", "", "Search endpoints by pattern in path, summary, or description")
	flags.String("category", "", "Show all endpoints and details for a specific category/tag")
	flags.Bool("list-groups", false, "List all available endpoint groups")
	flags.String("describe-group", "", "Show detailed description for a specific endpoint group")

	// Modifiers.
	flags.String("grouped-by", "", "Group endpoints by: path, method, or tag (with --list)")
	flags.String("method", "", "Filter endpoints by HTTP method (with --list)")
	flags.Bool("all-matches", false, "Report every matching method, not just the first (with --search)")

	cmd.MarkFlagsMutuallyExclusive(
		"list", "info", "auth", "validate", "endpoint", "schema",
		"search", "category", "list-groups", "describe-group",
	)

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	primaries := []string{
		"list", "info", "auth", "validate", "endpoint", "schema",
		"search", "category", "list-groups", "describe-group",
	}
	actionSet := false
	for _, name := range primaries {
		if flags.Changed(name) {
			actionSet = true
			break
		}
	}
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	// Without a primary action a bare invocation just prints help, but an
	// explicitly named spec file must still load cleanly.
	if !actionSet {
		if cfg.SpecFile != "" {
			if _, err := loader.LoadFile(cfg.SpecFile); err != nil {
				return err
			}
		}
		return cmd.Help()
	}

	specFile := cfg.SpecFile
	if specFile == "" {
		specFile, err = loader.FindSpecFile(".")
		if err != nil {
			return err
		}
	}
	if !loader.FollowsNamingConvention(specFile) {
		cmd.PrintErrln("Warning: spec file should follow the naming pattern: [platform]-openapi.json")
	}

	result, err := loader.LoadFile(specFile)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}

	spec := loader.Transform(result)
	ix := index.New(spec)

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	switch {
	case mustBool(flags, "info"):
		render.Info(out, spec.Info)

	case mustBool(flags, "auth"):
		render.Auth(out, spec)

	case mustBool(flags, "validate"):
		verrs, err := loader.Validate(result)
		if err != nil {
			return fmt.Errorf("validating spec: %w", err)
		}
		if len(verrs) == 0 {
			fmt.Fprintf(out, "%s is a valid OpenAPI %s document\n", specFile, result.Version)
			return nil
		}
		fmt.Fprintf(out, "%s has %d validation issue(s):\n", specFile, len(verrs))
		for _, verr := range verrs {
			fmt.Fprintf(out, "- [%s] %s\n", verr.ValidationType, verr.Message)
		}

	case mustString(flags, "schema") != "":
		name := mustString(flags, "schema")
		schema := spec.SchemaByName(name)
		if schema == nil {
			fmt.Fprintf(errOut, "Schema '%s' not found\n", name)
			return nil
		}
		return render.Schema(out, name, schema)

	case mustString(flags, "endpoint") != "":
		path := mustString(flags, "endpoint")
		p, ok := ix.Endpoint(path)
		if !ok {
			fmt.Fprintf(errOut, "Endpoint %s not found\n", path)
			return nil
		}
		return render.EndpointDetails(out, p.Path, p.Operations)

	case mustString(flags, "search") != "":
		matches, err := ix.Search(mustString(flags, "search"), mustBool(flags, "all-matches"))
		if err != nil {
			return err
		}
		render.SearchResults(out, matches)

	case mustString(flags, "category") != "":
		return runCategory(out, ix, mustString(flags, "category"))

	case mustBool(flags, "list-groups"):
		render.GroupList(out, spec.Tags)

	case mustString(flags, "describe-group") != "":
		runDescribeGroup(out, spec, mustString(flags, "describe-group"))

	case mustBool(flags, "list"):
		method := mustString(flags, "method")
		switch mustString(flags, "grouped-by") {
		case "path":
			render.PathTree(out, ix.ByPath())
		case "method":
			render.MethodGroups(out, ix.ByMethod(), method)
		case "tag":
			render.TagGroups(out, ix.ByTag())
		case "":
			render.EndpointList(out, ix, method)
		default:
			return fmt.Errorf("invalid grouping: %s (valid: path, method, tag)", mustString(flags, "grouped-by"))
		}
	}

	return nil
}
