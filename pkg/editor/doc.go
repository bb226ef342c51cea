// Package editor is the entry point hosts use to edit a field list with
// undo/redo. Controller routes discrete edits through the field store and
// into history, routes undo/redo back into the store without re-recording
// them, and exposes a drag controller whose live moves collapse into a single
// history entry. Hosts observe every visible change through the OnChange
// callback and render undo/redo affordances from Status.
package editor
