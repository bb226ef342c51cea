package session

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/goliatone/go-formbuilder/pkg/fields"
	"github.com/goliatone/go-formbuilder/pkg/history"
)

// Table renders list as an aligned table in display order.
func Table(list fields.List) string {
	if len(list) == 0 {
		return color.New(color.Faint, color.Italic).Sprint(" no fields")
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Label"), bold.Sprint("Name"), bold.Sprint("Type"), bold.Sprint("Req"), bold.Sprint("Options"))
	for i, field := range list {
		req := ""
		if field.Required {
			req = "*"
		}
		tbl.AddRow(i+1, field.Label, field.Name, string(field.Type), req, strings.Join(field.Options, ", "))
	}
	return tbl.String()
}

// StatusLine summarises the list size and history position.
func StatusLine(list fields.List, status history.Status) string {
	undo, redo := "-", "-"
	if status.CanUndo {
		undo = "undo"
	}
	if status.CanRedo {
		redo = "redo"
	}
	return fmt.Sprintf("%d fields | history %s | %s %s", len(list), status, undo, redo)
}

func fieldChoice(field fields.Field) string {
	label := field.Label
	if label == "" {
		label = field.Name
	}
	return fmt.Sprintf("%s (%s)", label, field.Type)
}
