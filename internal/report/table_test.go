package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Level", "Reading", "Speaking"}
	rows := [][]string{
		{"A1", "67%", "-"},
		{"B2", "100%", "5%"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Level  Reading  Speaking" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "A1         67%         -" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "B2        100%        5%" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableIgnoresColorCodes(t *testing.T) {
	lines := formatTable([]string{"Score"}, [][]string{{colorGood + "90%" + colorReset}}, map[int]bool{0: true})
	want := "  " + colorGood + "90%" + colorReset
	if lines[1] != want {
		t.Fatalf("unexpected colored row: %q", lines[1])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"Word", "Score"}, [][]string{{"日本", "1"}, {"o’clock", "2"}}, nil)
	if lines[1] != "日本     1" {
		t.Fatalf("unexpected wide row: %q", lines[1])
	}
	if lines[2] != "o’clock  2" {
		t.Fatalf("unexpected row: %q", lines[2])
	}
}
