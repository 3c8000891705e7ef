package form

import "testing"

func TestFieldListStartsAtMin(t *testing.T) {
	l := NewFieldList(2, 4, "")
	if l.Len() != 2 {
		t.Errorf("initial length: got %d, want 2", l.Len())
	}
}

func TestFieldListAppendBeyondMaxIsNoop(t *testing.T) {
	l := NewFieldList(2, 4, "")
	if !l.Append("c") || !l.Append("d") {
		t.Fatal("appends up to max should succeed")
	}
	if l.Append("e") {
		t.Error("append at max should be a no-op")
	}
	if l.Len() != 4 {
		t.Errorf("length: got %d, want 4", l.Len())
	}
	if l.CanAppend() {
		t.Error("CanAppend should be false at max")
	}
}

func TestFieldListRemoveBelowMinIsNoop(t *testing.T) {
	l := NewFieldList(2, 4, "")
	id := l.Fields()[0].ID
	if l.Remove(id) {
		t.Error("remove at min should be a no-op")
	}
	if l.Len() != 2 {
		t.Errorf("length: got %d, want 2", l.Len())
	}
	if l.CanRemove() {
		t.Error("CanRemove should be false at min")
	}
}

func TestFieldListRemovePreservesOrderAndIdentity(t *testing.T) {
	l := NewFieldList(2, 4, "")
	fields := l.Fields()
	first, second := fields[0].ID, fields[1].ID
	l.Update(first, "a")
	l.Update(second, "b")
	l.Append("c")
	third := l.Fields()[2].ID

	if !l.Remove(second) {
		t.Fatal("remove should succeed above min")
	}
	got := l.Fields()
	if len(got) != 2 || got[0].ID != first || got[1].ID != third {
		t.Errorf("order after remove: got %v", got)
	}
	if got[0].Row != "a" || got[1].Row != "c" {
		t.Errorf("rows after remove: got %q, %q", got[0].Row, got[1].Row)
	}
}

func TestFieldListIDsAreNeverReused(t *testing.T) {
	l := NewFieldList(2, 4, "")
	l.Append("c")
	removed := l.Fields()[2].ID
	l.Remove(removed)
	l.Append("d")
	if l.Fields()[2].ID == removed {
		t.Error("a removed row id was reused")
	}
}

func TestFieldListBoundsHoldUnderRandomOperations(t *testing.T) {
	l := NewFieldList(2, 4, "")
	for i := 0; i < 100; i++ {
		if i%3 == 0 {
			l.Append("x")
		} else if len(l.Fields()) > 0 {
			l.Remove(l.Fields()[0].ID)
		}
		if l.Len() < 2 || l.Len() > 4 {
			t.Fatalf("bounds violated at step %d: len=%d", i, l.Len())
		}
	}
}

func TestFieldListUpdateKeepsPosition(t *testing.T) {
	l := NewFieldList(2, 4, "")
	id := l.Fields()[1].ID
	if !l.Update(id, "updated") {
		t.Fatal("update of a known id should succeed")
	}
	if l.Fields()[1].ID != id || l.Fields()[1].Row != "updated" {
		t.Errorf("update changed identity or position: %+v", l.Fields()[1])
	}
	if l.Update("unknown", "x") {
		t.Error("update of an unknown id should report false")
	}
}
