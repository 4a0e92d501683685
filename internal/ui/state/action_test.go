package state

import "testing"

func TestActionFromKeyClosed(t *testing.T) {
	cases := []struct {
		key  Key
		want Action
	}{
		{Key{Name: KeyArrowDown}, ActionOpen},
		{Key{Name: KeyArrowUp}, ActionOpen},
		{Key{Name: KeyEnter}, ActionOpen},
		{Key{Name: KeySpace}, ActionOpen},
		{Key{Name: KeyHome}, ActionFirst},
		{Key{Name: KeyEnd}, ActionLast},
		{Key{Name: "a"}, ActionType},
		{Key{Name: KeyBackspace}, ActionType},
		{Key{Name: KeyEscape}, ActionNone},
		{Key{Name: KeyPageDown}, ActionNone},
	}
	for _, tc := range cases {
		if got := ActionFromKey(tc.key, false); got != tc.want {
			t.Fatalf("closed %q: expected %s, got %s", tc.key.Name, tc.want, got)
		}
	}
}

func TestActionFromKeyOpen(t *testing.T) {
	cases := []struct {
		key  Key
		want Action
	}{
		{Key{Name: KeyArrowDown}, ActionNext},
		{Key{Name: KeyArrowDown, Alt: true}, ActionNone},
		{Key{Name: KeyArrowUp}, ActionPrevious},
		{Key{Name: KeyArrowUp, Alt: true}, ActionCloseSelect},
		{Key{Name: KeyPageUp}, ActionPageUp},
		{Key{Name: KeyPageDown}, ActionPageDown},
		{Key{Name: KeyEscape}, ActionClose},
		{Key{Name: KeyEnter}, ActionCloseSelect},
		{Key{Name: KeySpace}, ActionCloseSelect},
		{Key{Name: KeyClear}, ActionType},
		{Key{Name: "x"}, ActionType},
		{Key{Name: "x", Ctrl: true}, ActionNone},
		{Key{Name: "x", Meta: true}, ActionNone},
		{Key{Name: "Tab"}, ActionNone},
	}
	for _, tc := range cases {
		if got := ActionFromKey(tc.key, true); got != tc.want {
			t.Fatalf("open %q (%+v): expected %s, got %s", tc.key.Name, tc.key, tc.want, got)
		}
	}
}

func TestActionFromKeyIsPure(t *testing.T) {
	key := Key{Name: KeyArrowDown}
	first := ActionFromKey(key, true)
	for i := 0; i < 5; i++ {
		if got := ActionFromKey(key, true); got != first {
			t.Fatalf("expected stable result %s, got %s", first, got)
		}
	}
}

func TestPrintable(t *testing.T) {
	if !(Key{Name: "é"}).Printable() {
		t.Fatalf("expected single rune to be printable")
	}
	if (Key{Name: "ab"}).Printable() {
		t.Fatalf("expected multi-rune name to be non printable")
	}
	if (Key{Name: "a", Alt: true}).Printable() {
		t.Fatalf("expected alt-modified key to be non printable")
	}
}

func TestActionNamesCoverEveryAction(t *testing.T) {
	for a := ActionNone; a <= ActionType; a++ {
		if a.String() == "unknown" {
			t.Fatalf("expected a name for action %d", int(a))
		}
	}
	if got := (ActionType + 1).String(); got != "unknown" {
		t.Fatalf("expected no action after type, got %q", got)
	}
}
