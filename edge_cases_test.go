package voluta

import (
	"strings"
	"testing"
)

func TestSingleBytePatterns(t *testing.T) {
	m, err := New([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	got := m.MatchBytes([]byte("aba"))
	want := []Match{
		{Start: 0, End: 1, Pattern: "a"},
		{Start: 1, End: 2, Pattern: "b"},
		{Start: 2, End: 3, Pattern: "a"},
	}
	if len(got) != len(want) {
		t.Fatalf("matches = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPatternIsEntireInput(t *testing.T) {
	m, err := New([]string{"whole"})
	if err != nil {
		t.Fatal(err)
	}
	got := m.MatchBytes([]byte("whole"))
	if len(got) != 1 || got[0] != (Match{Start: 0, End: 5, Pattern: "whole"}) {
		t.Errorf("matches = %v, want exactly [{0 5 whole}]", got)
	}
}

func TestPatternLongerThanInput(t *testing.T) {
	m, err := New([]string{"longer than the input"})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.MatchBytes([]byte("short")); got != nil {
		t.Errorf("matches = %v, want nil", got)
	}
}

func TestNonASCIIBytesPassThrough(t *testing.T) {
	// Case folding is ASCII-only: the bytes of É (C3 89) and é (C3 A9)
	// never fold into each other.
	m, err := New([]string{"café"})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.MatchBytes([]byte("CAFÉ")); got != nil {
		t.Errorf("É matched é under ASCII folding: %v", got)
	}
	got := m.MatchBytes([]byte("un CAFé noir"))
	if len(got) != 1 || got[0].Pattern != "café" {
		t.Fatalf("matches = %v, want one café match", got)
	}
	if got[0].Start != 3 || got[0].End != 8 {
		t.Errorf("range = (%d,%d), want (3,8)", got[0].Start, got[0].End)
	}
}

func TestBinaryPatterns(t *testing.T) {
	m, err := New([]string{"\x00\xff\x00", "\xde\xad\xbe\xef"})
	if err != nil {
		t.Fatal(err)
	}
	data := []byte{0x01, 0x00, 0xff, 0x00, 0xde, 0xad, 0xbe, 0xef}
	got := m.MatchBytes(data)
	if len(got) != 2 {
		t.Fatalf("matches = %v, want 2", got)
	}
	if got[0].Start != 1 || got[0].End != 4 {
		t.Errorf("first range = (%d,%d), want (1,4)", got[0].Start, got[0].End)
	}
	if got[1].Start != 4 || got[1].End != 8 {
		t.Errorf("second range = (%d,%d), want (4,8)", got[1].Start, got[1].End)
	}
}

func TestSelfOverlappingPattern(t *testing.T) {
	m, err := New([]string{"aa"})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.MatchBytes([]byte("aaaa")); len(got) != 3 {
		t.Errorf("overlapping matches = %v, want 3 occurrences", got)
	}

	opts := DefaultOptions()
	opts.Overlapping = false
	n, err := NewWithOptions([]string{"aa"}, opts)
	if err != nil {
		t.Fatal(err)
	}
	got := n.MatchBytes([]byte("aaaa"))
	if len(got) != 2 || got[0].Start != 0 || got[1].Start != 2 {
		t.Errorf("non-overlapping matches = %v, want (0,2) and (2,4)", got)
	}
}

func TestWholeWordAtInputEdges(t *testing.T) {
	opts := DefaultOptions()
	opts.WholeWord = true
	m, err := NewWithOptions([]string{"edge"}, opts)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []struct {
		data string
		hits int
	}{
		{"edge", 1},
		{"edge of input", 1},
		{"the edge", 1},
		{"edges", 0},
		{"ledge", 0},
		{"_edge", 0},
		{"-edge-", 1},
	} {
		if got := m.MatchBytes([]byte(tt.data)); len(got) != tt.hits {
			t.Errorf("%q: matches = %v, want %d", tt.data, got, tt.hits)
		}
	}
}

func TestManyPatterns(t *testing.T) {
	patterns := make([]string, 0, 1000)
	for i := 0; i < 1000; i++ {
		patterns = append(patterns, "pat"+strings.Repeat("x", i%17)+string(rune('a'+i%26)))
	}
	m, err := New(patterns)
	if err != nil {
		t.Fatal(err)
	}
	if m.PatternCount() == 0 {
		t.Fatal("all patterns filtered")
	}
	if !m.IsMatch([]byte("prefix pata suffix")) {
		t.Error("IsMatch missed a known pattern")
	}
}
