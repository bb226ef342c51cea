// Package drag turns a pointer drag gesture into live reorders of a field
// list followed by at most one history commit when the gesture ends.
package drag

import "github.com/goliatone/go-formbuilder/pkg/fields"

// State is the gesture state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Host is the surface the controller drives. Preview applies a list without
// recording history and notifies listeners; Commit records the list as a
// single history entry.
type Host interface {
	Fields() fields.List
	Preview(list fields.List)
	Commit(list fields.List)
}

// Controller is the Idle/Dragging state machine. Intermediate moves only go
// through Host.Preview; Host.Commit is called at most once per gesture.
type Controller struct {
	host Host

	state     State
	draggedID string
	origin    int
	current   int
	snapshot  fields.List
}

// New binds a controller to host.
func New(host Host) *Controller {
	return &Controller{host: host}
}

// Start begins a gesture for the field with id, recording its index and the
// list as it is now so Cancel can restore it. It returns false when a gesture
// is already running or the id is unknown.
func (c *Controller) Start(id string) bool {
	if c.state == Dragging {
		return false
	}
	list := c.host.Fields()
	idx := list.Index(id)
	if idx < 0 {
		return false
	}
	c.state = Dragging
	c.draggedID = id
	c.origin = idx
	c.current = idx
	c.snapshot = list
	return true
}

// Over moves the dragged field to target (clamped to the list bounds) and
// previews the result. Nothing is committed. It returns false when idle or
// when the position does not change.
func (c *Controller) Over(target int) bool {
	if c.state != Dragging {
		return false
	}
	list := c.host.Fields()
	target = fields.ClampIndex(target, list.Len())
	if target == c.current {
		return false
	}
	next, changed := list.MoveTo(c.draggedID, target)
	if !changed {
		return false
	}
	c.current = target
	c.host.Preview(next)
	return true
}

// End finishes the gesture. When the field ended somewhere other than its
// origin the live list is committed once and End returns true.
func (c *Controller) End() bool {
	if c.state != Dragging {
		return false
	}
	moved := c.current != c.origin
	c.reset()
	if moved {
		c.host.Commit(c.host.Fields())
	}
	return moved
}

// Cancel aborts the gesture and restores the list captured by Start. No
// history entry is recorded.
func (c *Controller) Cancel() bool {
	if c.state != Dragging {
		return false
	}
	moved := c.current != c.origin
	snapshot := c.snapshot
	c.reset()
	if moved {
		c.host.Preview(snapshot)
	}
	return true
}

// Active reports whether a gesture is running.
func (c *Controller) Active() bool {
	return c.state == Dragging
}

// State returns the current gesture state.
func (c *Controller) State() State {
	return c.state
}

// DraggedID returns the id being dragged, or "" when idle.
func (c *Controller) DraggedID() string {
	return c.draggedID
}

// OriginIndex returns the index the dragged field started from.
func (c *Controller) OriginIndex() int {
	return c.origin
}

// CurrentIndex returns the live index of the dragged field.
func (c *Controller) CurrentIndex() int {
	return c.current
}

func (c *Controller) reset() {
	c.state = Idle
	c.draggedID = ""
	c.origin = 0
	c.current = 0
	c.snapshot = nil
}
