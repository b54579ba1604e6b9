package word

import "testing"

func TestIsWordByte(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		want bool
	}{
		{"lowercase letter", 'a', true},
		{"uppercase letter", 'Z', true},
		{"digit", '7', true},
		{"underscore", '_', true},
		{"space", ' ', false},
		{"hyphen", '-', false},
		{"newline", '\n', false},
		{"nul", 0x00, false},
		{"high byte", 0xC3, false},
		{"del", 0x7F, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsWordByte(tc.b); got != tc.want {
				t.Errorf("IsWordByte(%q) = %v, want %v", tc.b, got, tc.want)
			}
		})
	}
}

func TestIsBoundary(t *testing.T) {
	data := []byte("ab cd_e-f")

	tests := []struct {
		name string
		i    int
		want bool
	}{
		{"start of data", 0, true},
		{"end of data", len(data), true},
		{"inside a word", 1, false},
		{"word then space", 2, true},
		{"space then word", 3, true},
		{"underscore joins words", 5, false},
		{"underscore then word", 6, false},
		{"word then hyphen", 7, true},
		{"hyphen then word", 8, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBoundary(data, tc.i); got != tc.want {
				t.Errorf("IsBoundary(%q, %d) = %v, want %v", data, tc.i, got, tc.want)
			}
		})
	}
}

func TestIsBoundaryEmptyData(t *testing.T) {
	if !IsBoundary(nil, 0) {
		t.Error("IsBoundary(nil, 0) = false, want true")
	}
}

func TestPasses(t *testing.T) {
	data := []byte("The cat in the scatter test")

	tests := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"standalone word", 4, 7, true},   // "cat"
		{"inside a word", 16, 19, false},  // "cat" in "scatter"
		{"at start of data", 0, 3, true},  // "The"
		{"at end of data", 23, 27, true},  // "test"
		{"prefix of a word", 15, 19, false},
		{"suffix of a word", 19, 22, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Passes(data, tc.start, tc.end); got != tc.want {
				t.Errorf("Passes(%q, %d, %d) = %v, want %v",
					data, tc.start, tc.end, got, tc.want)
			}
		})
	}
}

// Whole-byte-space coverage: exactly 63 byte values are word bytes.
func TestWordByteClassSize(t *testing.T) {
	n := 0
	for b := 0; b < 256; b++ {
		if IsWordByte(byte(b)) {
			n++
		}
	}
	if n != 63 {
		t.Errorf("word byte class has %d members, want 63 (26+26+10+1)", n)
	}
}
