package state

import (
	"testing"

	"github.com/atomicstack/tmux-popup-select/internal/menu"
)

func TestOptionStorePreservesIdentityOnReload(t *testing.T) {
	store := NewOptionStore([]menu.Entry{{Value: "a"}, {Value: "b"}})
	before := store.Options()
	before[1].SetSelected(true)

	changed := store.SetEntries([]menu.Entry{{Value: "a", Label: "Apple"}, {Value: "b"}})
	if changed {
		t.Fatalf("expected relabel to keep membership")
	}
	after := store.Options()
	if after[0] != before[0] || after[1] != before[1] {
		t.Fatalf("expected options to be reused")
	}
	if after[0].Label() != "Apple" {
		t.Fatalf("expected label refresh, got %q", after[0].Label())
	}
	if !after[1].Selected() {
		t.Fatalf("expected live selection to survive reload")
	}
}

func TestOptionStoreReportsMembershipChanges(t *testing.T) {
	store := NewOptionStore([]menu.Entry{{Value: "a"}, {Value: "b"}})
	if !store.SetEntries([]menu.Entry{{Value: "b"}, {Value: "a"}}) {
		t.Fatalf("expected reorder to count as a change")
	}
	if !store.SetEntries([]menu.Entry{{Value: "b"}}) {
		t.Fatalf("expected removal to count as a change")
	}
	if got := len(store.Items()); got != 1 {
		t.Fatalf("expected 1 item, got %d", got)
	}
}

func TestOptionStoreSkipsDuplicateKeys(t *testing.T) {
	store := NewOptionStore([]menu.Entry{{Value: "a"}, {Value: "a", Label: "again"}})
	if got := len(store.Options()); got != 1 {
		t.Fatalf("expected duplicates collapsed, got %d", got)
	}
	if got := len(store.Entries()); got != 2 {
		t.Fatalf("expected raw entries kept, got %d", got)
	}
}

func TestOptionStoreFilter(t *testing.T) {
	store := NewOptionStore([]menu.Entry{{Value: "apple"}, {Value: "banana"}, {Value: "apricot"}})
	store.SetFilter("ap")
	items := store.Items()
	if len(items) != 2 || items[0].Value() != "apple" || items[1].Value() != "apricot" {
		t.Fatalf("unexpected filtered items %v", items)
	}
	store.SetFilter("")
	if got := len(store.Items()); got != 3 {
		t.Fatalf("expected filter cleared, got %d", got)
	}
}
