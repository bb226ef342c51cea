// Package history implements a bounded undo/redo manager over immutable
// snapshots. The manager keeps past, present and future stacks; Commit
// installs a new present (skipping snapshots identical to the current one),
// while Undo and Redo move between stacks without ever clearing future.
// Restored snapshots are handed back to the caller and must be applied
// through a path that does not call Commit again.
package history
