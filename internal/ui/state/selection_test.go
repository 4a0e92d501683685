package state

import (
	"testing"

	"github.com/atomicstack/tmux-popup-select/internal/menu"
	"github.com/google/go-cmp/cmp"
)

func selectedValues(opts []*menu.Option) []string {
	out := []string{}
	for _, opt := range opts {
		if opt.Selected() {
			out = append(out, opt.Value())
		}
	}
	return out
}

func TestReconcilerLowestIndexWins(t *testing.T) {
	opts := newOptions("a", "b", "c")
	opts[1].SetSelected(true)
	opts[2].SetSelected(true)
	r := NewReconciler(sourceOf(opts))

	if !r.Recompute() {
		t.Fatalf("expected first recompute to report a change")
	}
	if r.Value() != "b" || r.SelectedIndex() != 1 {
		t.Fatalf("expected b at 1, got %q at %d", r.Value(), r.SelectedIndex())
	}
	if diff := cmp.Diff([]string{"b", "c"}, selectedValues(opts)); diff != "" {
		t.Fatalf("expected c left selected until an explicit select (-want +got):\n%s", diff)
	}
	if r.Recompute() {
		t.Fatalf("expected repeated recompute to report no change")
	}

	if r.SelectByValue("c") != true {
		t.Fatalf("expected selecting c to change the authoritative item")
	}
	if diff := cmp.Diff([]string{"c"}, selectedValues(opts)); diff != "" {
		t.Fatalf("expected exclusivity after explicit select (-want +got):\n%s", diff)
	}
}

func TestReconcilerSelectByValueMissing(t *testing.T) {
	opts := newOptions("a", "b")
	opts[0].SetSelected(true)
	r := NewReconciler(sourceOf(opts))
	r.Recompute()
	if r.SelectByValue("z") {
		t.Fatalf("expected missing value to report no change")
	}
	if r.Value() != "a" || r.DisplayText() != "a" {
		t.Fatalf("expected projection unchanged, got %q/%q", r.Value(), r.DisplayText())
	}
}

func TestReconcilerSelectByIndexIgnoresDisabled(t *testing.T) {
	opts := newOptions("a", "b")
	opts[1].SetDisabled(true)
	r := NewReconciler(sourceOf(opts))
	if !r.SelectByIndex(1) {
		t.Fatalf("expected disabled item selectable by index")
	}
	if r.SelectedIndex() != 1 || r.Value() != "b" {
		t.Fatalf("expected b at 1, got %q at %d", r.Value(), r.SelectedIndex())
	}
	if r.SelectByIndex(5) || r.SelectByIndex(-1) {
		t.Fatalf("expected out of range index to be ignored")
	}
}

func TestReconcilerKeepsPlaceholderUntilItemsExist(t *testing.T) {
	var opts []*menu.Option
	r := NewReconciler(sourceOf(opts))
	r.SetDisplayText("Loading…")
	if r.Recompute() {
		t.Fatalf("expected no change without items")
	}
	if r.DisplayText() != "Loading…" {
		t.Fatalf("expected placeholder preserved, got %q", r.DisplayText())
	}

	opts = newOptions("a")
	r.items = sourceOf(opts)
	r.Recompute()
	if r.DisplayText() != "" {
		t.Fatalf("expected placeholder cleared once items exist, got %q", r.DisplayText())
	}
}

func TestReconcilerPendingValueAppliedWhenItemsArrive(t *testing.T) {
	var opts []*menu.Option
	r := NewReconciler(func() []menu.Item { return menu.OptionsToItems(opts) })
	if r.SetValue("b") {
		t.Fatalf("expected pending value not to apply without items")
	}
	opts = newOptions("a", "b")
	if !r.InitUserSelection() {
		t.Fatalf("expected pending value to apply once items exist")
	}
	if r.Value() != "b" {
		t.Fatalf("expected value b, got %q", r.Value())
	}
}

func TestReconcilerPendingValueBeatsIndex(t *testing.T) {
	var opts []*menu.Option
	r := NewReconciler(func() []menu.Item { return menu.OptionsToItems(opts) })
	r.SetSelectedIndex(0)
	r.SetValue("c")
	opts = newOptions("a", "b", "c")
	r.InitUserSelection()
	if r.Value() != "c" {
		t.Fatalf("expected pending value to take precedence, got %q", r.Value())
	}
}

func TestReconcilerReset(t *testing.T) {
	opts := []*menu.Option{
		menu.NewOption(menu.Entry{Value: "a"}),
		menu.NewOption(menu.Entry{Value: "b", Selected: true}),
	}
	r := NewReconciler(sourceOf(opts))
	r.SelectByValue("a")
	if r.Value() != "a" {
		t.Fatalf("expected a selected, got %q", r.Value())
	}
	if !r.Reset() {
		t.Fatalf("expected reset to change the authoritative item")
	}
	if r.Value() != "b" {
		t.Fatalf("expected default b restored, got %q", r.Value())
	}
	if diff := cmp.Diff([]string{"b"}, selectedValues(opts)); diff != "" {
		t.Fatalf("unexpected selected flags (-want +got):\n%s", diff)
	}
}

func TestReconcilerResetKeepsPendingValue(t *testing.T) {
	opts := newOptions("a", "b")
	r := NewReconciler(func() []menu.Item { return menu.OptionsToItems(opts) })
	r.SetValue("late")
	r.Reset()
	if r.Value() != "" {
		t.Fatalf("expected nothing selected after reset, got %q", r.Value())
	}
	opts = append(opts, menu.NewOption(menu.Entry{Value: "late"}))
	if !r.InitUserSelection() {
		t.Fatalf("expected the pending value to apply once its item exists")
	}
	if r.Value() != "late" {
		t.Fatalf("expected late selected, got %q", r.Value())
	}
}

func TestReconcilerClearsWhenSelectionRemoved(t *testing.T) {
	opts := newOptions("a")
	r := NewReconciler(sourceOf(opts))
	r.SelectByValue("a")
	opts[0].SetSelected(false)
	if !r.Recompute() {
		t.Fatalf("expected losing the selection to be a change")
	}
	if r.Value() != "" || r.DisplayText() != "" || r.SelectedIndex() != -1 {
		t.Fatalf("expected empty projection, got %q/%q/%d", r.Value(), r.DisplayText(), r.SelectedIndex())
	}
}
