package editor

import (
	"log/slog"

	"github.com/goliatone/go-formbuilder/pkg/fields"
	"github.com/goliatone/go-formbuilder/pkg/history"
)

// ChangeFunc receives the list after every visible change.
type ChangeFunc func(fields.List)

// Option configures a Controller.
type Option func(*Controller)

// WithOnChange registers the change callback.
func WithOnChange(fn ChangeFunc) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// WithCapacity bounds the undo (and redo) depth. Defaults to
// history.DefaultCapacity.
func WithCapacity(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithIDGenerator sets the generator used for fields added without an id.
func WithIDGenerator(gen fields.IDGenerator) Option {
	return func(c *Controller) {
		if gen != nil {
			c.newID = gen
		}
	}
}

// WithLogger enables debug logging of history activity.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func defaultCapacity() int {
	return history.DefaultCapacity
}
