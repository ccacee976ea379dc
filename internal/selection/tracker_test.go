package selection

import "testing"

func TestToggle_AddsThenRemoves(t *testing.T) {
	tr := NewTracker()

	if !tr.Toggle("a") {
		t.Fatal("first toggle should select")
	}
	if !tr.Selected("a") {
		t.Error("expected a to be selected")
	}
	if tr.Toggle("a") {
		t.Fatal("second toggle should deselect")
	}
	if tr.Selected("a") {
		t.Error("expected a to be deselected")
	}
}

func TestToggle_IsItsOwnInverse(t *testing.T) {
	tr := NewTracker()
	tr.Toggle("a")
	tr.Toggle("b")

	before := tr.IDs()
	tr.Toggle("c")
	tr.Toggle("c")
	after := tr.IDs()

	if len(before) != len(after) {
		t.Fatalf("expected %d ids, got %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("id %d: expected %s, got %s", i, before[i], after[i])
		}
	}
}

func TestIDs_Sorted(t *testing.T) {
	tr := NewTracker()
	tr.Toggle("charlie")
	tr.Toggle("alpha")
	tr.Toggle("bravo")

	ids := tr.IDs()
	want := []string{"alpha", "bravo", "charlie"}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("id %d: expected %s, got %s", i, want[i], ids[i])
		}
	}
}

func TestClear(t *testing.T) {
	tr := NewTracker()
	tr.Toggle("a")
	tr.Toggle("b")
	tr.Clear()

	if tr.Count() != 0 {
		t.Errorf("expected empty tracker, got %d", tr.Count())
	}
	if tr.Selected("a") {
		t.Error("a should not survive Clear")
	}
}

func TestCount(t *testing.T) {
	tr := NewTracker()
	if tr.Count() != 0 {
		t.Fatalf("new tracker should be empty, got %d", tr.Count())
	}
	tr.Toggle("a")
	tr.Toggle("b")
	tr.Toggle("a")
	if tr.Count() != 1 {
		t.Errorf("expected 1 selected, got %d", tr.Count())
	}
}
