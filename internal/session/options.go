package session

import (
	"log/slog"

	"github.com/goliatone/go-formbuilder/internal/prompt"
	"github.com/goliatone/go-formbuilder/pkg/fields"
)

// SaveFunc persists the list when the user chooses to save.
type SaveFunc func(fields.List) error

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver prompt.Driver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithDefaults sets the list used by the restore defaults action.
func WithDefaults(list fields.List) Option {
	return func(s *Session) {
		s.defaults = list.Clone()
	}
}

// WithSaver enables the save action.
func WithSaver(fn SaveFunc) Option {
	return func(s *Session) {
		s.save = fn
	}
}

// WithLogger routes session diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}
