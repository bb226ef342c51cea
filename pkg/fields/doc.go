// Package fields defines the editable field list behind the form builder and
// the pure operations that mutate it. A List is an ordered sequence of Field
// records whose slice order is the display and tab order. Every operation
// returns a freshly allocated List and leaves its input untouched, so callers
// can hold on to earlier values as history snapshots and compare them with
// Fingerprint or Equal. Store wraps a List and is the single owner of the
// authoritative copy used by the editor.
package fields
