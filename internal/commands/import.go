package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/fields"
	"github.com/goliatone/go-formbuilder/pkg/importer"
)

type importOptions struct {
	openapi   string
	operation string
	output    string
}

func addImport(topLevel *cobra.Command, ro *rootOptions) {
	io := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Build a field list from an OpenAPI request body.",
		Long: "Build a field list from the request body schema of an OpenAPI operation.\n\n" +
			"Without --operation the available operation ids are listed.",
		Example: `
formbuilder import --openapi api.yaml
formbuilder import --openapi api.yaml --operation createUser --output fields.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ro.resolve(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)

			data, err := os.ReadFile(io.openapi)
			if err != nil {
				return fmt.Errorf("import: read %s: %w", io.openapi, err)
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if strings.TrimSpace(io.operation) == "" {
				ids, err := importer.Operations(ctx, data)
				if err != nil {
					return err
				}
				for _, id := range ids {
					_, _ = fmt.Fprintln(out, id)
				}
				return nil
			}

			result, err := importer.FromOpenAPI(ctx, data, io.operation)
			if err != nil {
				return err
			}
			for _, name := range result.Skipped {
				logger.Warn("import: property skipped", "operation", result.OperationID, "property", name)
			}

			if io.output != "" {
				if err := fields.WriteFile(io.output, result.Fields); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "%d fields written to %s\n", len(result.Fields), io.output)
				return nil
			}
			payload, err := fields.Encode(result.Fields, cfg.OutputFormat())
			if err != nil {
				return err
			}
			_, err = out.Write(payload)
			return err
		},
	}

	cmd.Flags().StringVar(&io.openapi, "openapi", "", "OpenAPI document (JSON or YAML)")
	cmd.Flags().StringVar(&io.operation, "operation", "", "operation id to import")
	cmd.Flags().StringVarP(&io.output, "output", "o", "", "write to this file instead of stdout")
	_ = cmd.MarkFlagRequired("openapi")

	topLevel.AddCommand(cmd)
}
