package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"apple", "fruit"},
		{"kohlrabi", "vegetable"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0] != "apple     fruit    " {
		t.Fatalf("unexpected first row %q", got[0])
	}
	if got[1] != "kohlrabi  vegetable" {
		t.Fatalf("unexpected second row %q", got[1])
	}
}

func TestFormatRightAlignment(t *testing.T) {
	rows := [][]string{{"a", "1"}, {"b", "100"}}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	if got[0] != "a    1" {
		t.Fatalf("expected right aligned number, got %q", got[0])
	}
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	rows := [][]string{{"日本", "x"}, {"abcd", "y"}}
	got := Format(rows, nil)
	if got[0] != "日本  x" {
		t.Fatalf("expected wide runes to count as two cells, got %q", got[0])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil for no rows, got %#v", got)
	}
}
