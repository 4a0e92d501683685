package menu

import (
	"bufio"
	"strings"

	"github.com/atomicstack/tmux-popup-select/internal/format/table"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Entry is the serialised form of an option as read from flags or items files.
type Entry struct {
	ID          string `toml:"id" yaml:"id"`
	Value       string `toml:"value" yaml:"value"`
	Label       string `toml:"label" yaml:"label"`
	Description string `toml:"description" yaml:"description"`
	Disabled    bool   `toml:"disabled" yaml:"disabled"`
	Selected    bool   `toml:"selected" yaml:"selected"`
}

// Key returns the identity used to match an entry across reloads.
func (e Entry) Key() string {
	if e.ID != "" {
		return e.ID
	}
	if e.Value != "" {
		return e.Value
	}
	return e.Label
}

// DisplayLabel falls back to the value when no label is given.
func (e Entry) DisplayLabel() string {
	if e.Label != "" {
		return e.Label
	}
	return e.Value
}

// ParseEntry reads a single "value=label" argument. A bare argument is used as
// both value and label; a leading '*' marks the entry as selected by default.
func ParseEntry(arg string) Entry {
	text := strings.TrimSpace(arg)
	var entry Entry
	if strings.HasPrefix(text, "*") {
		entry.Selected = true
		text = strings.TrimSpace(text[1:])
	}
	if value, label, ok := strings.Cut(text, "="); ok {
		entry.Value = strings.TrimSpace(value)
		entry.Label = strings.TrimSpace(label)
		return entry
	}
	entry.Value = text
	entry.Label = text
	return entry
}

// ParseLines reads one entry per non-blank line, skipping '#' comments.
func ParseLines(input string) []Entry {
	lines := splitLines(input)
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		entries = append(entries, ParseEntry(trimmed))
	}
	return entries
}

// FilterEntries narrows entries to those fuzzily matching query. An empty
// query returns a copy of the input.
func FilterEntries(entries []Entry, query string) []Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneEntries(entries)
	}
	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.DisplayLabel()
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	matches := make(map[int]struct{}, len(ranks))
	for _, rank := range ranks {
		matches[rank.OriginalIndex] = struct{}{}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Entry, 0, len(matches))
	for idx, entry := range entries {
		if _, ok := matches[idx]; ok {
			filtered = append(filtered, entry)
			continue
		}
		if strings.Contains(strings.ToLower(entry.Value), lower) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// AlignDescriptions rewrites labels so descriptions line up in a second column.
// Entries without any description are returned unchanged.
func AlignDescriptions(entries []Entry) []Entry {
	hasDescription := false
	for _, entry := range entries {
		if entry.Description != "" {
			hasDescription = true
			break
		}
	}
	if !hasDescription {
		return cloneEntries(entries)
	}
	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = []string{entry.DisplayLabel(), entry.Description}
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
	out := cloneEntries(entries)
	for i := range out {
		out[i].Label = strings.TrimRight(formatted[i], " ")
	}
	return out
}

func cloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}

func splitLines(input string) []string {
	scanner := bufio.NewScanner(strings.NewReader(input))
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}
