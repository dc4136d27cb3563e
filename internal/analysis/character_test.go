package analysis

import (
	"testing"

	"github.com/nao1215/sigdec/internal/model"
)

// TestDisplay tests visible renderings of code points.
func TestDisplay(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		r        rune
		expected string
	}{
		{"letter", 'A', "A"},
		{"space", ' ', "␠"},
		{"tab", '\t', "␉"},
		{"newline", '\n', "␊"},
		{"carriage return", '\r', "␍"},
		{"null", 0x00, "␀"},
		{"delete", 0x7F, "␡"},
		{"combining acute", 0x301, "◌\u0301"},
		{"zero width space", 0x200B, "<U+200B>"},
		{"emoji", 0x1F600, "😀"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Display(tc.r); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

// TestCodeNotation tests hexadecimal and binary notation.
func TestCodeNotation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		r      rune
		hex    string
		binary string
	}{
		{'A', "U+0041", "01000001"},
		{0x00, "U+0000", "00000000"},
		{0xE9, "U+00E9", "11101001"},
		{0x20AC, "U+20AC", "0010000010101100"},
		{0x1F600, "U+1F600", "000000011111011000000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.hex, func(t *testing.T) {
			t.Parallel()
			if got := HexCode(tc.r); got != tc.hex {
				t.Errorf("expected %s, got %s", tc.hex, got)
			}
			got := BinaryCode(tc.r)
			if got != tc.binary {
				t.Errorf("expected %s, got %s", tc.binary, got)
			}
			if len(got)%8 != 0 {
				t.Errorf("binary length %d is not a multiple of 8", len(got))
			}
		})
	}
}

// TestDescribe tests the per code point breakdown.
func TestDescribe(t *testing.T) {
	t.Parallel()

	details := Describe(Decompose("A1 "))
	if len(details) != 3 {
		t.Fatalf("expected 3 details, got %d", len(details))
	}

	first := details[0]
	if first.Index != 0 || first.CodePoint != 'A' || first.Category != model.CategoryUppercase {
		t.Errorf("unexpected first detail: %+v", first)
	}
	if first.Name != "LATIN CAPITAL LETTER A" {
		t.Errorf("expected Unicode name, got %q", first.Name)
	}
	if details[1].Category != model.CategoryDigit || details[1].Name != "DIGIT ONE" {
		t.Errorf("unexpected second detail: %+v", details[1])
	}
	if details[2].Display != "␠" || details[2].Category != model.CategoryWhitespace {
		t.Errorf("unexpected third detail: %+v", details[2])
	}
}
