package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/prompt"
	"github.com/goliatone/go-formbuilder/internal/session"
	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/fields"
)

type editOptions struct {
	defaults string
}

func addEdit(topLevel *cobra.Command, ro *rootOptions) {
	eo := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Interactively edit a field list.",
		Long: "Interactively add, edit, remove and reorder fields with undo and redo.\n\n" +
			"The file is created on save when it does not exist yet.",
		Example: `
formbuilder edit fields.yaml
formbuilder edit fields.json --defaults template.yaml --history-limit 100
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ro.resolve(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)
			path := args[0]

			initial, err := loadOrEmpty(path)
			if err != nil {
				return err
			}

			defaults := initial
			defaultsPath := eo.defaults
			if defaultsPath == "" {
				defaultsPath = cfg.Defaults
			}
			if defaultsPath != "" {
				if defaults, err = fields.LoadFile(defaultsPath, nil); err != nil {
					return fmt.Errorf("edit: defaults: %w", err)
				}
			}

			ed := editor.New(initial,
				editor.WithCapacity(cfg.HistoryLimit),
				editor.WithLogger(logger),
			)
			s, err := session.New(ed,
				session.WithPromptDriver(prompt.NewSurveyDriver(cmd.OutOrStdout())),
				session.WithDefaults(defaults),
				session.WithSaver(func(list fields.List) error {
					return fields.WriteFile(path, list)
				}),
				session.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			if err := s.Run(cmd.Context()); err != nil {
				if errors.Is(err, prompt.ErrAborted) {
					return nil
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&eo.defaults, "defaults", "", "field list used by restore defaults")
	topLevel.AddCommand(cmd)
}

func loadOrEmpty(path string) (fields.List, error) {
	list, err := fields.LoadFile(path, nil)
	if err == nil {
		return list, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return fields.List{}, nil
	}
	return nil, err
}
