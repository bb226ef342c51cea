package history

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type doc []string

func cloneDoc(d doc) doc {
	return append(doc(nil), d...)
}

func newDocManager(initial doc, opts ...Option[doc]) *Manager[doc] {
	opts = append([]Option[doc]{WithClone(cloneDoc)}, opts...)
	return New(initial, opts...)
}

func TestCommit_PushesPresentAndClearsFuture(t *testing.T) {
	m := newDocManager(doc{"a"})

	if !m.Commit(doc{"a", "b"}) {
		t.Fatalf("expected commit to be recorded")
	}
	if !m.Commit(doc{"a", "b", "c"}) {
		t.Fatalf("expected commit to be recorded")
	}
	if _, ok := m.Undo(); !ok {
		t.Fatalf("expected undo to succeed")
	}
	if !m.CanRedo() {
		t.Fatalf("expected redo to be available after undo")
	}

	m.Commit(doc{"x"})
	if m.CanRedo() {
		t.Fatalf("expected commit to clear future")
	}
	if diff := cmp.Diff(doc{"x"}, m.Present()); diff != "" {
		t.Fatalf("present mismatch (-want +got):\n%s", diff)
	}
	if m.Len() != 2 {
		t.Fatalf("past length = %d, want 2", m.Len())
	}
}

func TestCommit_DeduplicatesIdenticalSnapshots(t *testing.T) {
	m := newDocManager(doc{"a"})
	m.Commit(doc{"a", "b"})
	m.Undo()

	pastBefore, futureBefore := m.Len(), m.FutureLen()
	for i := 0; i < 5; i++ {
		if m.Commit(doc{"a"}) {
			t.Fatalf("commit %d of identical snapshot was recorded", i)
		}
	}
	if m.Len() != pastBefore || m.FutureLen() != futureBefore {
		t.Fatalf("dedup changed stacks: past %d->%d future %d->%d",
			pastBefore, m.Len(), futureBefore, m.FutureLen())
	}
}

func TestUndoRedo_RoundTrip(t *testing.T) {
	m := newDocManager(doc{})
	for _, step := range []doc{{"a"}, {"a", "b"}, {"b"}, {"b", "c"}} {
		m.Commit(step)
	}
	m.Undo()
	before := cloneDoc(m.Present())

	m.Undo()
	got, ok := m.Redo()
	if !ok {
		t.Fatalf("expected redo to succeed")
	}
	if diff := cmp.Diff(before, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUndoRedo_EmptyStacksAreNoOps(t *testing.T) {
	m := newDocManager(doc{"seed"})

	got, ok := m.Undo()
	if ok {
		t.Fatalf("expected undo on empty past to report false")
	}
	if diff := cmp.Diff(doc{"seed"}, got); diff != "" {
		t.Fatalf("undo should return present (-want +got):\n%s", diff)
	}

	got, ok = m.Redo()
	if ok {
		t.Fatalf("expected redo on empty future to report false")
	}
	if diff := cmp.Diff(doc{"seed"}, got); diff != "" {
		t.Fatalf("redo should return present (-want +got):\n%s", diff)
	}
	if m.Status() != (Status{}) {
		t.Fatalf("expected zero status, got %+v", m.Status())
	}
}

func TestCommit_BoundsPastAndEvictsOldest(t *testing.T) {
	m := newDocManager(doc{"0"})
	for i := 1; i <= 75; i++ {
		m.Commit(doc{fmt.Sprint(i)})
		if m.Len() > DefaultCapacity {
			t.Fatalf("past grew to %d after commit %d", m.Len(), i)
		}
	}
	if m.Len() != DefaultCapacity {
		t.Fatalf("past length = %d, want %d", m.Len(), DefaultCapacity)
	}

	var last doc
	for m.CanUndo() {
		last, _ = m.Undo()
	}
	// 75 commits plus the seed give 76 states; only the newest 51 survive.
	if diff := cmp.Diff(doc{"25"}, last); diff != "" {
		t.Fatalf("oldest reachable state mismatch (-want +got):\n%s", diff)
	}
}

func TestRedo_RespectsCapacity(t *testing.T) {
	m := newDocManager(doc{"0"}, WithCapacity[doc](3))
	for i := 1; i <= 3; i++ {
		m.Commit(doc{fmt.Sprint(i)})
	}
	for m.CanUndo() {
		m.Undo()
	}
	if m.FutureLen() != 3 {
		t.Fatalf("future length = %d, want 3", m.FutureLen())
	}
	for m.CanRedo() {
		m.Redo()
		if m.Len() > 3 {
			t.Fatalf("redo pushed past beyond capacity: %d", m.Len())
		}
	}
	if diff := cmp.Diff(doc{"3"}, m.Present()); diff != "" {
		t.Fatalf("present mismatch (-want +got):\n%s", diff)
	}
}

func TestClone_IsolatesStoredSnapshots(t *testing.T) {
	m := newDocManager(doc{"a"})
	next := doc{"b"}
	m.Commit(next)
	next[0] = "mutated"

	if diff := cmp.Diff(doc{"b"}, m.Present()); diff != "" {
		t.Fatalf("stored snapshot aliased caller slice (-want +got):\n%s", diff)
	}
}

func TestWithFingerprint(t *testing.T) {
	caseInsensitive := func(d doc) string { return strings.ToLower(strings.Join(d, ",")) }
	m := New(doc{"A"}, WithFingerprint[doc](caseInsensitive))

	if m.Commit(doc{"a"}) {
		t.Fatalf("expected custom fingerprint to treat snapshots as identical")
	}
}

func TestStatus(t *testing.T) {
	m := newDocManager(doc{})
	for i := 0; i < 7; i++ {
		m.Commit(doc{fmt.Sprint(i)})
	}
	for i := 0; i < 4; i++ {
		m.Undo()
	}

	got := m.Status()
	want := Status{Position: 3, Depth: 7, CanUndo: true, CanRedo: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("status mismatch (-want +got):\n%s", diff)
	}
	if got.String() != "3 / 7" {
		t.Fatalf("String() = %q", got.String())
	}
}
