package editor

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-formbuilder/pkg/drag"
	"github.com/goliatone/go-formbuilder/pkg/fields"
	"github.com/goliatone/go-formbuilder/pkg/history"
)

// Controller couples a field store with bounded history. Only discrete edits
// and the end of a drag gesture reach history.Commit; snapshots coming back
// from undo/redo are applied through applyFromHistory, which never commits.
type Controller struct {
	store    *fields.Store
	history  *history.Manager[fields.List]
	drag     *drag.Controller
	onChange ChangeFunc
	newID    fields.IDGenerator
	logger   *slog.Logger
	capacity int
}

// New creates a controller seeded with initial as the present snapshot.
func New(initial fields.List, options ...Option) *Controller {
	c := &Controller{
		newID:    fields.NewID,
		capacity: defaultCapacity(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c.store = fields.NewStore(initial)
	c.history = history.New(c.store.Fields(),
		history.WithCapacity[fields.List](c.capacity),
		history.WithFingerprint[fields.List](fields.List.Fingerprint),
		history.WithClone[fields.List](fields.List.Clone),
	)
	c.drag = drag.New(dragHost{c: c})
	return c
}

// Fields returns the current list. Treat it as read-only.
func (c *Controller) Fields() fields.List {
	return c.store.Fields()
}

// Status reports the history position for undo/redo affordances.
func (c *Controller) Status() history.Status {
	return c.history.Status()
}

// CanUndo reports whether RequestUndo would change anything.
func (c *Controller) CanUndo() bool {
	return c.history.CanUndo()
}

// CanRedo reports whether RequestRedo would change anything.
func (c *Controller) CanRedo() bool {
	return c.history.CanRedo()
}

// Capacity returns the history bound.
func (c *Controller) Capacity() int {
	return c.history.Capacity()
}

// Drag returns the drag controller bound to this editor.
func (c *Controller) Drag() *drag.Controller {
	return c.drag
}

// ApplyAdd appends field, assigning an id when it has none. Duplicate ids
// are rejected with fields.ErrDuplicateFieldID and leave everything as is.
func (c *Controller) ApplyAdd(field fields.Field) error {
	c.settleDrag()
	if field.ID == "" {
		field.ID = c.newID()
	}
	next, err := c.store.Add(field)
	if err != nil {
		c.logger.Debug("editor: add rejected", slog.String("id", field.ID), slog.Any("error", err))
		return err
	}
	c.commit("add", next)
	return nil
}

// ApplyRemove removes the field with id. Absent ids are a silent no-op.
func (c *Controller) ApplyRemove(id string) bool {
	c.settleDrag()
	next, changed := c.store.Remove(id)
	if !changed {
		return false
	}
	c.commit("remove", next)
	return true
}

// ApplyUpdate merges patch into the field with id.
func (c *Controller) ApplyUpdate(id string, patch fields.Patch) bool {
	c.settleDrag()
	next, changed := c.store.Update(id, patch)
	if !changed {
		return false
	}
	c.commit("update", next)
	return true
}

// ApplyMove moves a field in one discrete step, as keyboard reordering does.
// The target is clamped to the list bounds.
func (c *Controller) ApplyMove(id string, target int) bool {
	c.settleDrag()
	next, changed := c.store.MoveTo(id, target)
	if !changed {
		return false
	}
	c.commit("move", next)
	return true
}

// ApplyReset replaces the whole list, e.g. to restore defaults. The list must
// satisfy fields.List.Validate. The boolean reports whether anything changed.
func (c *Controller) ApplyReset(list fields.List) (bool, error) {
	if err := list.Validate(); err != nil {
		return false, fmt.Errorf("editor: reset: %w", err)
	}
	c.settleDrag()
	next, changed := c.store.Reset(list)
	if !changed {
		return false, nil
	}
	c.commit("reset", next)
	return true, nil
}

// RequestUndo restores the previous snapshot. It returns false when there is
// nothing to undo.
func (c *Controller) RequestUndo() bool {
	c.settleDrag()
	snapshot, ok := c.history.Undo()
	if !ok {
		return false
	}
	c.logger.Debug("editor: undo", slog.String("status", c.history.Status().String()))
	c.applyFromHistory(snapshot)
	return true
}

// RequestRedo re-applies the most recently undone snapshot.
func (c *Controller) RequestRedo() bool {
	c.settleDrag()
	snapshot, ok := c.history.Redo()
	if !ok {
		return false
	}
	c.logger.Debug("editor: redo", slog.String("status", c.history.Status().String()))
	c.applyFromHistory(snapshot)
	return true
}

// applyFromHistory is the only path for snapshots produced by undo/redo. It
// updates the store and notifies the host but never commits.
func (c *Controller) applyFromHistory(snapshot fields.List) {
	next, _ := c.store.Reset(snapshot)
	c.notify(next)
}

func (c *Controller) commit(op string, next fields.List) {
	recorded := c.history.Commit(next)
	c.logger.Debug("editor: commit",
		slog.String("op", op),
		slog.Bool("recorded", recorded),
		slog.String("status", c.history.Status().String()),
	)
	c.notify(next)
}

// settleDrag cancels an in-flight gesture so its live list never reaches
// history through a discrete edit.
func (c *Controller) settleDrag() {
	if c.drag.Active() {
		c.logger.Debug("editor: drag cancelled by edit", slog.String("id", c.drag.DraggedID()))
		c.drag.Cancel()
	}
}

func (c *Controller) notify(list fields.List) {
	if c.onChange != nil {
		c.onChange(list)
	}
}

// dragHost adapts the controller to drag.Host: previews bypass history,
// the gesture's final list is committed once.
type dragHost struct {
	c *Controller
}

func (h dragHost) Fields() fields.List {
	return h.c.store.Fields()
}

func (h dragHost) Preview(list fields.List) {
	next, changed := h.c.store.Reset(list)
	if changed {
		h.c.notify(next)
	}
}

func (h dragHost) Commit(list fields.List) {
	recorded := h.c.history.Commit(list)
	h.c.logger.Debug("editor: drag committed",
		slog.Bool("recorded", recorded),
		slog.String("status", h.c.history.Status().String()),
	)
}
