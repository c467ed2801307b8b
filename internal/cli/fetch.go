package cli

import (
	"github.com/spf13/cobra"

	"github.com/oaspect/oaspect/internal/config"
	"github.com/oaspect/oaspect/internal/fetch"
)

func FetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "specfetch",
		Short:   "Download the Gong API OpenAPI specification",
		Version: "1.0.0",
		RunE:    runFetch,
	}

	config.BindCommonFlags(cmd)
	flags := cmd.Flags()
	flags.StringP("output", "o", "", "Output file (default: "+fetch.DefaultOutput+")")
	flags.String("url", "", "Specification endpoint URL (default: the Gong documentation endpoint)")

	return cmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	output := cfg.Output
	if output == "" {
		output = fetch.DefaultOutput
	}

	client := fetch.NewClient(cfg.URL)

	cmd.Println("Downloading Gong API specification...")
	spec, err := client.Fetch(cmd.Context())
	if err != nil {
		return err
	}

	if err := fetch.Save(spec, output); err != nil {
		return err
	}

	cmd.Printf("Saved API specification to %s\n", output)
	return nil
}
