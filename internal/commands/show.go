package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/session"
	"github.com/goliatone/go-formbuilder/pkg/fields"
)

func addShow(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a field list as a table.",
		Example: `
formbuilder show fields.yaml
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ro.resolve(cmd); err != nil {
				return err
			}
			list, err := fields.LoadFile(args[0], nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, session.Table(list))
			_, _ = fmt.Fprintf(out, "%d fields\n", len(list))
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
