package analysis

import (
	"reflect"
	"slices"
	"testing"

	"github.com/nao1215/sigdec/internal/model"
)

// TestCompare tests the comparison of two reports.
func TestCompare(t *testing.T) {
	t.Parallel()

	t.Run("identical inputs", func(t *testing.T) {
		t.Parallel()

		c := Compare(Analyze("abc"), Analyze("abc"))
		if !c.Identical {
			t.Error("expected identical")
		}
		if c.LengthDelta != 0 || c.EntropyDirection != model.DirectionUnchanged {
			t.Errorf("unexpected deltas: %+v", c)
		}
		if len(c.LeftOnly) != 0 || len(c.RightOnly) != 0 {
			t.Errorf("expected no exclusive characters, got %v/%v", c.LeftOnly, c.RightOnly)
		}
	})

	t.Run("different inputs", func(t *testing.T) {
		t.Parallel()

		c := Compare(Analyze("aaaa"), Analyze("abcd"))
		if c.Identical {
			t.Error("did not expect identical")
		}
		if c.EntropyDirection != model.DirectionHigher || c.EntropyDelta != 2 {
			t.Errorf("expected entropy +2, got %f (%s)", c.EntropyDelta, c.EntropyDirection)
		}
		if c.UniqueDelta != 3 {
			t.Errorf("expected unique delta 3, got %d", c.UniqueDelta)
		}
		if !reflect.DeepEqual(c.SharedCharacters, []string{"a"}) {
			t.Errorf("expected shared [a], got %v", c.SharedCharacters)
		}
		if !reflect.DeepEqual(c.RightOnly, []string{"b", "c", "d"}) {
			t.Errorf("expected right only [b c d], got %v", c.RightOnly)
		}
		if len(c.InsightsLost) != 1 {
			t.Errorf("expected the repeating insight to be lost, got %v", c.InsightsLost)
		}
	})

	t.Run("category and decoding deltas", func(t *testing.T) {
		t.Parallel()

		c := Compare(Analyze("hello"), Analyze("68656c6c6f"))
		if c.CategoryDeltas[model.CategoryDigit] != 7 {
			t.Errorf("expected 7 more digits, got %d", c.CategoryDeltas[model.CategoryDigit])
		}
		if len(c.CategoryDeltas) != 6 {
			t.Errorf("expected every category, got %d", len(c.CategoryDeltas))
		}
		if !slices.Contains(c.DecodingsGained, "Hexadecimal") {
			t.Errorf("expected hex decoding gained, got %v", c.DecodingsGained)
		}
		if len(c.DecodingsLost) != 0 {
			t.Errorf("expected no decoding lost, got %v", c.DecodingsLost)
		}
	})
}
