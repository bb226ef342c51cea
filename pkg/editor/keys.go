package editor

import (
	"fmt"
	"strings"
)

// Action is what a key press resolves to.
type Action int

const (
	ActionNone Action = iota
	ActionUndo
	ActionRedo
	ActionCancelDrag
)

func (a Action) String() string {
	switch a {
	case ActionUndo:
		return "undo"
	case ActionRedo:
		return "redo"
	case ActionCancelDrag:
		return "cancel-drag"
	default:
		return "none"
	}
}

// Key is a key press with its modifiers. Meta covers Cmd on macOS.
type Key struct {
	Name  string
	Ctrl  bool
	Meta  bool
	Shift bool
	Alt   bool
}

// ParseKey reads chords such as "ctrl+z", "cmd+shift+z" or "esc".
func ParseKey(chord string) (Key, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(chord)), "+")
	var key Key
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return Key{}, fmt.Errorf("editor: invalid key chord %q", chord)
		}
		if i == len(parts)-1 {
			key.Name = normalizeKeyName(part)
			break
		}
		switch part {
		case "ctrl", "control":
			key.Ctrl = true
		case "cmd", "command", "meta", "super":
			key.Meta = true
		case "shift":
			key.Shift = true
		case "alt", "option", "opt":
			key.Alt = true
		default:
			return Key{}, fmt.Errorf("editor: unknown modifier %q in %q", part, chord)
		}
	}
	return key, nil
}

// MustParseKey panics when chord is invalid.
func MustParseKey(chord string) Key {
	key, err := ParseKey(chord)
	if err != nil {
		panic(err)
	}
	return key
}

func (k Key) String() string {
	var parts []string
	if k.Ctrl {
		parts = append(parts, "ctrl")
	}
	if k.Meta {
		parts = append(parts, "cmd")
	}
	if k.Alt {
		parts = append(parts, "alt")
	}
	if k.Shift {
		parts = append(parts, "shift")
	}
	return strings.Join(append(parts, normalizeKeyName(k.Name)), "+")
}

// Resolve maps a key press to an action: Ctrl/Cmd+Z undoes, Ctrl/Cmd+Y and
// Ctrl/Cmd+Shift+Z redo, Escape cancels a drag.
func Resolve(k Key) Action {
	name := normalizeKeyName(k.Name)
	if k.Alt {
		return ActionNone
	}
	mod := k.Ctrl || k.Meta
	switch {
	case mod && name == "z" && !k.Shift:
		return ActionUndo
	case mod && name == "z" && k.Shift:
		return ActionRedo
	case mod && name == "y" && !k.Shift:
		return ActionRedo
	case !mod && !k.Shift && name == "escape":
		return ActionCancelDrag
	default:
		return ActionNone
	}
}

// HandleKey resolves k and performs the action. The boolean reports whether
// the action changed anything.
func (c *Controller) HandleKey(k Key) (Action, bool) {
	action := Resolve(k)
	switch action {
	case ActionUndo:
		return action, c.RequestUndo()
	case ActionRedo:
		return action, c.RequestRedo()
	case ActionCancelDrag:
		return action, c.drag.Cancel()
	default:
		return ActionNone, false
	}
}

func normalizeKeyName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "esc":
		return "escape"
	default:
		return name
	}
}
