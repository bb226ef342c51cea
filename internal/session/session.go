// Package session runs an interactive terminal editing loop on top of
// editor.Controller. All input goes through a prompt.Driver.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formbuilder/internal/prompt"
	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/fields"
)

// Menu entries, in the order they are offered.
const (
	ActionShow = iota
	ActionAdd
	ActionEdit
	ActionRemove
	ActionMove
	ActionUndo
	ActionRedo
	ActionShortcut
	ActionRestore
	ActionSave
	ActionQuit
)

var menu = []string{
	ActionShow:     "Show fields",
	ActionAdd:      "Add field",
	ActionEdit:     "Edit field",
	ActionRemove:   "Remove field",
	ActionMove:     "Move field",
	ActionUndo:     "Undo",
	ActionRedo:     "Redo",
	ActionShortcut: "Keyboard shortcut",
	ActionRestore:  "Restore defaults",
	ActionSave:     "Save",
	ActionQuit:     "Quit",
}

// Nudge steps offered while a field is being moved.
const (
	NudgeUp = iota
	NudgeDown
	NudgeTop
	NudgeBottom
	NudgeDrop
	NudgeCancel
)

var nudges = []string{
	NudgeUp:     "Up",
	NudgeDown:   "Down",
	NudgeTop:    "Top",
	NudgeBottom: "Bottom",
	NudgeDrop:   "Drop here",
	NudgeCancel: "Cancel (esc)",
}

// Attributes offered by the edit action.
const (
	EditLabel = iota
	EditName
	EditType
	EditRequired
	EditPlaceholder
	EditOptions
)

var editables = []string{
	EditLabel:       "Label",
	EditName:        "Name",
	EditType:        "Type",
	EditRequired:    "Required",
	EditPlaceholder: "Placeholder",
	EditOptions:     "Options",
}

// Session is a single interactive editing run.
type Session struct {
	editor   *editor.Controller
	driver   prompt.Driver
	defaults fields.List
	save     SaveFunc
	logger   *slog.Logger
	savedKey string
}

// New creates a session editing through ed.
func New(ed *editor.Controller, options ...Option) (*Session, error) {
	if ed == nil {
		return nil, errors.New("session: editor is required")
	}
	s := &Session{editor: ed}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = prompt.NewSurveyDriver(nil)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.savedKey = ed.Fields().Fingerprint()
	return s, nil
}

// Dirty reports whether the list differs from what was last saved or loaded.
func (s *Session) Dirty() bool {
	return s.editor.Fields().Fingerprint() != s.savedKey
}

// Run loops over the main menu until the user quits. Aborting the main menu
// goes through the same unsaved changes check as Quit and then returns
// prompt.ErrAborted; aborting inside an action only abandons that action.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := s.info(ctx, StatusLine(s.editor.Fields(), s.editor.Status())); err != nil {
			return err
		}
		choice, err := s.driver.Select(ctx, prompt.SelectConfig{
			Message:  "Action",
			Options:  menu,
			PageSize: len(menu),
		})
		if errors.Is(err, prompt.ErrAborted) {
			quit, cerr := s.confirmQuit(ctx)
			if cerr != nil {
				return cerr
			}
			if quit {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		if choice == ActionQuit {
			quit, err := s.confirmQuit(ctx)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			continue
		}
		if err := s.dispatch(ctx, choice); err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				s.logger.Debug("session: action aborted", slog.String("action", menu[choice]))
				continue
			}
			return err
		}
	}
}

func (s *Session) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case ActionShow:
		return s.info(ctx, Table(s.editor.Fields()))
	case ActionAdd:
		return s.add(ctx)
	case ActionEdit:
		return s.edit(ctx)
	case ActionRemove:
		return s.remove(ctx)
	case ActionMove:
		return s.move(ctx)
	case ActionUndo:
		if !s.editor.RequestUndo() {
			return s.info(ctx, "Nothing to undo")
		}
		return nil
	case ActionRedo:
		if !s.editor.RequestRedo() {
			return s.info(ctx, "Nothing to redo")
		}
		return nil
	case ActionShortcut:
		return s.shortcut(ctx)
	case ActionRestore:
		return s.restore(ctx)
	case ActionSave:
		return s.persist(ctx)
	default:
		return fmt.Errorf("session: unknown action %d", choice)
	}
}

func (s *Session) add(ctx context.Context) error {
	name, err := s.driver.Input(ctx, prompt.InputConfig{
		Message:   "Field name",
		Validator: requireText("name"),
	})
	if err != nil {
		return err
	}
	label, err := s.driver.Input(ctx, prompt.InputConfig{
		Message: "Label",
		Default: name,
	})
	if err != nil {
		return err
	}
	kind, err := s.selectType(ctx, fields.FieldTypeText)
	if err != nil {
		return err
	}
	required, err := s.driver.Confirm(ctx, prompt.ConfirmConfig{Message: "Required?"})
	if err != nil {
		return err
	}

	field := fields.Field{
		Name:     strings.TrimSpace(name),
		Label:    strings.TrimSpace(label),
		Type:     kind,
		Required: required,
	}
	if kind.IsChoice() {
		if field.Options, err = s.askOptions(ctx); err != nil {
			return err
		}
	} else {
		placeholder, err := s.driver.Input(ctx, prompt.InputConfig{Message: "Placeholder"})
		if err != nil {
			return err
		}
		field.Placeholder = strings.TrimSpace(placeholder)
	}

	if err := s.editor.ApplyAdd(field); err != nil {
		return s.info(ctx, fmt.Sprintf("Could not add field: %v", err))
	}
	return nil
}

func (s *Session) edit(ctx context.Context) error {
	field, ok, err := s.pickField(ctx, "Field to edit")
	if err != nil || !ok {
		return err
	}
	attr, err := s.driver.Select(ctx, prompt.SelectConfig{
		Message: fmt.Sprintf("Edit %s", fieldChoice(field)),
		Options: editables,
	})
	if err != nil {
		return err
	}

	var patch fields.Patch
	switch attr {
	case EditLabel:
		v, err := s.driver.Input(ctx, prompt.InputConfig{Message: "Label", Default: field.Label})
		if err != nil {
			return err
		}
		patch = fields.SetLabel(strings.TrimSpace(v))
	case EditName:
		v, err := s.driver.Input(ctx, prompt.InputConfig{
			Message:   "Name",
			Default:   field.Name,
			Validator: requireText("name"),
		})
		if err != nil {
			return err
		}
		patch = fields.SetName(strings.TrimSpace(v))
	case EditType:
		kind, err := s.selectType(ctx, field.Type)
		if err != nil {
			return err
		}
		patch = fields.SetType(kind)
		if kind.IsChoice() && len(field.Options) == 0 {
			opts, err := s.askOptions(ctx)
			if err != nil {
				return err
			}
			patch = fields.Merge(patch, fields.SetOptions(opts))
		}
	case EditRequired:
		v, err := s.driver.Confirm(ctx, prompt.ConfirmConfig{Message: "Required?", Default: field.Required})
		if err != nil {
			return err
		}
		patch = fields.SetRequired(v)
	case EditPlaceholder:
		v, err := s.driver.Input(ctx, prompt.InputConfig{Message: "Placeholder", Default: field.Placeholder})
		if err != nil {
			return err
		}
		patch = fields.SetPlaceholder(strings.TrimSpace(v))
	case EditOptions:
		if !field.Type.IsChoice() {
			return s.info(ctx, fmt.Sprintf("%s fields have no options", field.Type))
		}
		opts, err := s.editOptions(ctx, field.Options)
		if err != nil {
			return err
		}
		if len(opts) == 0 {
			return s.info(ctx, fmt.Sprintf("%s fields need at least one option", field.Type))
		}
		patch = fields.SetOptions(opts)
	default:
		return fmt.Errorf("session: unknown attribute %d", attr)
	}

	if !s.editor.ApplyUpdate(field.ID, patch) {
		return s.info(ctx, "No changes")
	}
	return nil
}

func (s *Session) remove(ctx context.Context) error {
	field, ok, err := s.pickField(ctx, "Field to remove")
	if err != nil || !ok {
		return err
	}
	confirmed, err := s.driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: fmt.Sprintf("Remove %s?", fieldChoice(field)),
	})
	if err != nil || !confirmed {
		return err
	}
	s.editor.ApplyRemove(field.ID)
	return nil
}

// move runs a drag gesture driven by nudges. Every nudge previews the new
// order; only the drop is recorded in history.
func (s *Session) move(ctx context.Context) error {
	field, ok, err := s.pickField(ctx, "Field to move")
	if err != nil || !ok {
		return err
	}
	gesture := s.editor.Drag()
	if !gesture.Start(field.ID) {
		return nil
	}

	for {
		step, err := s.driver.Select(ctx, prompt.SelectConfig{
			Message: fmt.Sprintf("Move %s (position %d)", fieldChoice(field), gesture.CurrentIndex()+1),
			Options: nudges,
		})
		if err != nil {
			gesture.Cancel()
			return err
		}

		switch step {
		case NudgeUp:
			gesture.Over(gesture.CurrentIndex() - 1)
		case NudgeDown:
			gesture.Over(gesture.CurrentIndex() + 1)
		case NudgeTop:
			gesture.Over(0)
		case NudgeBottom:
			gesture.Over(len(s.editor.Fields()) - 1)
		case NudgeDrop:
			gesture.End()
			return nil
		case NudgeCancel:
			gesture.Cancel()
			return nil
		default:
			gesture.Cancel()
			return fmt.Errorf("session: unknown move step %d", step)
		}
	}
}

func (s *Session) shortcut(ctx context.Context) error {
	chord, err := s.driver.Input(ctx, prompt.InputConfig{
		Message: "Key chord",
		Help:    "ctrl+z / cmd+z undo, ctrl+y / ctrl+shift+z redo",
	})
	if err != nil {
		return err
	}
	key, err := editor.ParseKey(chord)
	if err != nil {
		return s.info(ctx, err.Error())
	}
	action, applied := s.editor.HandleKey(key)
	switch {
	case action == editor.ActionNone:
		return s.info(ctx, fmt.Sprintf("%s is not bound", key))
	case !applied:
		return s.info(ctx, fmt.Sprintf("Nothing to %s", action))
	}
	return nil
}

func (s *Session) restore(ctx context.Context) error {
	if s.defaults == nil {
		return s.info(ctx, "No defaults configured")
	}
	confirmed, err := s.driver.Confirm(ctx, prompt.ConfirmConfig{Message: "Replace all fields with the defaults?"})
	if err != nil || !confirmed {
		return err
	}
	changed, err := s.editor.ApplyReset(s.defaults)
	if err != nil {
		return s.info(ctx, fmt.Sprintf("Could not restore defaults: %v", err))
	}
	if !changed {
		return s.info(ctx, "Fields already match the defaults")
	}
	return nil
}

func (s *Session) persist(ctx context.Context) error {
	if s.save == nil {
		return s.info(ctx, "Saving is not configured")
	}
	list := s.editor.Fields()
	if err := s.save(list); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	s.savedKey = list.Fingerprint()
	s.logger.Debug("session: saved", slog.Int("fields", len(list)))
	return s.info(ctx, "Saved")
}

func (s *Session) confirmQuit(ctx context.Context) (bool, error) {
	if s.save == nil || !s.Dirty() {
		return true, nil
	}
	return s.driver.Confirm(ctx, prompt.ConfirmConfig{Message: "Discard unsaved changes?"})
}

func (s *Session) pickField(ctx context.Context, message string) (fields.Field, bool, error) {
	list := s.editor.Fields()
	if len(list) == 0 {
		return fields.Field{}, false, s.info(ctx, "No fields yet")
	}
	options := make([]string, len(list))
	for i, field := range list {
		options[i] = fmt.Sprintf("%d. %s", i+1, fieldChoice(field))
	}
	idx, err := s.driver.Select(ctx, prompt.SelectConfig{Message: message, Options: options})
	if err != nil {
		return fields.Field{}, false, err
	}
	if idx < 0 || idx >= len(list) {
		return fields.Field{}, false, nil
	}
	return list[idx].Clone(), true, nil
}

func (s *Session) selectType(ctx context.Context, current fields.FieldType) (fields.FieldType, error) {
	kinds := fields.FieldTypes()
	options := make([]string, len(kinds))
	def := 0
	for i, kind := range kinds {
		options[i] = string(kind)
		if kind == current {
			def = i
		}
	}
	idx, err := s.driver.Select(ctx, prompt.SelectConfig{
		Message:      "Type",
		Options:      options,
		DefaultIndex: def,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(kinds) {
		return current, nil
	}
	return kinds[idx], nil
}

func (s *Session) askOptions(ctx context.Context) ([]string, error) {
	raw, err := s.driver.Input(ctx, prompt.InputConfig{
		Message:   "Options (comma separated)",
		Validator: requireText("at least one option"),
	})
	if err != nil {
		return nil, err
	}
	return splitOptions(raw), nil
}

// editOptions lets the user drop existing options and append new ones.
func (s *Session) editOptions(ctx context.Context, current []string) ([]string, error) {
	if len(current) == 0 {
		return s.askOptions(ctx)
	}
	defaults := make([]int, len(current))
	for i := range current {
		defaults[i] = i
	}
	kept, err := s.driver.MultiSelect(ctx, prompt.SelectConfig{
		Message:  "Options to keep",
		Options:  current,
		Defaults: defaults,
	})
	if err != nil {
		return nil, err
	}
	var out []string
	for _, idx := range kept {
		if idx >= 0 && idx < len(current) {
			out = append(out, current[idx])
		}
	}
	raw, err := s.driver.Input(ctx, prompt.InputConfig{
		Message: "Add options (comma separated)",
	})
	if err != nil {
		return nil, err
	}
	return append(out, splitOptions(raw)...), nil
}

func (s *Session) info(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, msg)
}

func splitOptions(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func requireText(what string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}
