package state

import (
	"strings"
	"time"
)

// DefaultTypeaheadWindow is the inter-keystroke gap after which a new search
// session starts.
const DefaultTypeaheadWindow = 500 * time.Millisecond

// FilterOptions returns the options whose lowercase form starts with the
// lowercase filter, skipping any option listed in exclude.
func FilterOptions(options []string, filter string, exclude []string) []string {
	lower := strings.ToLower(filter)
	out := make([]string, 0, len(options))
	for _, option := range options {
		if !strings.HasPrefix(strings.ToLower(option), lower) {
			continue
		}
		if containsString(exclude, option) {
			continue
		}
		out = append(out, option)
	}
	return out
}

// IndexByLetter returns the index of the first option matching filter when
// the options are scanned starting at startIndex and wrapping around. When
// nothing matches and filter is one character repeated, the single character
// is tried instead so repeated presses cycle through items sharing an initial.
// It returns -1 when there is no match.
func IndexByLetter(options []string, filter string, startIndex int) int {
	return indexByLetter(options, filter, startIndex, nil)
}

func indexByLetter(options []string, filter string, startIndex int, exclude []string) int {
	n := len(options)
	if n == 0 || filter == "" {
		return -1
	}
	start := ((startIndex % n) + n) % n
	if idx := firstPrefixMatch(options, filter, start, exclude); idx >= 0 {
		return idx
	}
	runes := []rune(filter)
	if allSameRune(runes) {
		return firstPrefixMatch(options, string(runes[0]), start, exclude)
	}
	return -1
}

func firstPrefixMatch(options []string, filter string, start int, exclude []string) int {
	n := len(options)
	lower := strings.ToLower(filter)
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		option := options[idx]
		if !strings.HasPrefix(strings.ToLower(option), lower) {
			continue
		}
		if containsString(exclude, option) {
			continue
		}
		return idx
	}
	return -1
}

func allSameRune(runes []rune) bool {
	for _, r := range runes {
		if r != runes[0] {
			return false
		}
	}
	return true
}

func containsString(list []string, value string) bool {
	for _, candidate := range list {
		if candidate == value {
			return true
		}
	}
	return false
}

// Typeahead accumulates typed characters into a search buffer that expires
// after Window of inactivity.
type Typeahead struct {
	// Window is the session expiry; zero uses DefaultTypeaheadWindow.
	Window time.Duration
	// SingleChar keeps only the latest character instead of accumulating.
	SingleChar bool
	// Exclude lists labels that never match.
	Exclude []string
	// Now is the clock; nil uses time.Now.
	Now func() time.Time

	buffer []rune
	last   time.Time
}

// NewTypeahead returns a matcher with the given session window.
func NewTypeahead(window time.Duration) *Typeahead {
	return &Typeahead{Window: window}
}

// Buffer returns the current search string.
func (t *Typeahead) Buffer() string {
	return string(t.buffer)
}

// Clear ends the current search session.
func (t *Typeahead) Clear() {
	t.buffer = t.buffer[:0]
	t.last = time.Time{}
}

// Feed applies one typed key to the buffer and returns the new search string.
// Backspace removes the last character and Clear empties the buffer; other
// non-printable keys leave it unchanged.
func (t *Typeahead) Feed(key string) string {
	now := t.now()
	if !t.last.IsZero() && now.Sub(t.last) > t.window() {
		t.buffer = t.buffer[:0]
	}
	t.last = now
	switch key {
	case KeyBackspace:
		if len(t.buffer) > 0 {
			t.buffer = t.buffer[:len(t.buffer)-1]
		}
	case KeyClear:
		t.buffer = t.buffer[:0]
	default:
		runes := []rune(key)
		if len(runes) != 1 {
			break
		}
		if t.SingleChar {
			t.buffer = append(t.buffer[:0], runes[0])
		} else {
			t.buffer = append(t.buffer, runes[0])
		}
	}
	return string(t.buffer)
}

// Match returns the index in labels the buffer resolves to, or -1. A fresh or
// repeated-letter search starts after current so it cycles; a longer search
// starts at current so the current item stays put while it still matches.
func (t *Typeahead) Match(labels []string, current int) int {
	if len(t.buffer) == 0 {
		return -1
	}
	start := current
	if len(t.buffer) == 1 || allSameRune(t.buffer) {
		start = current + 1
	}
	if start < 0 {
		start = 0
	}
	return indexByLetter(labels, string(t.buffer), start, t.Exclude)
}

func (t *Typeahead) window() time.Duration {
	if t.Window <= 0 {
		return DefaultTypeaheadWindow
	}
	return t.Window
}

func (t *Typeahead) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}
