package analysis

import (
	"bytes"
	"log/slog"
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/nao1215/sigdec/internal/codec"
	"github.com/nao1215/sigdec/internal/model"
)

// TestAnalyzeEmpty tests the report of an empty input.
func TestAnalyzeEmpty(t *testing.T) {
	t.Parallel()

	report := Analyze("")

	if report.Length != 0 || report.UniqueCharacters != 0 {
		t.Errorf("expected zero length, got %d/%d", report.Length, report.UniqueCharacters)
	}
	if report.Entropy != 0 || report.PrintableRatio != 0 {
		t.Errorf("expected zero entropy and ratio, got %f/%f", report.Entropy, report.PrintableRatio)
	}
	if report.MinCodePoint != nil || report.MaxCodePoint != nil {
		t.Error("expected nil code point extrema")
	}
	if !report.ASCIIOnly {
		t.Error("expected empty input to be ASCII only")
	}
	if report.Characters == nil || report.Frequencies == nil || report.RepeatingPatterns == nil {
		t.Error("expected non-nil list fields")
	}
	if len(report.Categories) != 6 {
		t.Errorf("expected 6 category keys, got %d", len(report.Categories))
	}

	expected := []string{"Input is empty; nothing to analyze."}
	if !reflect.DeepEqual(report.Insights, expected) {
		t.Errorf("expected %v, got %v", expected, report.Insights)
	}

	if len(report.Encodings) != len(codec.Default()) {
		t.Fatalf("expected %d encodings, got %d", len(codec.Default()), len(report.Encodings))
	}
	for _, e := range report.Encodings {
		if e.Label == "UTF-8 text" {
			if !e.Success {
				t.Error("expected UTF-8 to succeed on empty input")
			}
			continue
		}
		if e.Success || e.Message != "input is empty" {
			t.Errorf("%s: expected failure \"input is empty\", got %v %q", e.Label, e.Success, e.Message)
		}
	}
}

// TestAnalyzeRepeatedCharacter tests a single repeated character.
func TestAnalyzeRepeatedCharacter(t *testing.T) {
	t.Parallel()

	report := Analyze("aaaa")

	if report.Length != 4 || report.UniqueCharacters != 1 {
		t.Errorf("expected 4/1, got %d/%d", report.Length, report.UniqueCharacters)
	}
	if report.Entropy != 0 {
		t.Errorf("expected entropy 0, got %f", report.Entropy)
	}
	if len(report.Frequencies) != 1 || report.Frequencies[0].Count != 4 || report.Frequencies[0].Percentage != 100 {
		t.Errorf("unexpected frequencies: %+v", report.Frequencies)
	}
	if !reflect.DeepEqual(report.RepeatingPatterns, []string{"aa"}) {
		t.Errorf("expected [aa], got %v", report.RepeatingPatterns)
	}
	expected := []string{`Contains repeating fragments; the longest is "aa".`}
	if !reflect.DeepEqual(report.Insights, expected) {
		t.Errorf("expected %v, got %v", expected, report.Insights)
	}
}

// TestAnalyzeInvariants tests properties that hold for every input.
func TestAnalyzeInvariants(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"a",
		"Hello, World!",
		"l_ldMXP89q-m",
		"café au lait",
		"😀😀 emoji\t\n",
		"\xff\xfe broken",
		"SGVsbG8gV29ybGQ=",
		strings.Repeat("ab", 300),
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			report := Analyze(input)

			sum := 0
			for _, c := range model.Categories() {
				n, ok := report.Categories[c]
				if !ok {
					t.Errorf("category %s missing", c)
				}
				sum += n
			}
			if sum != report.Length {
				t.Errorf("category counts sum to %d, expected %d", sum, report.Length)
			}

			freqSum := 0
			for _, f := range report.Frequencies {
				freqSum += f.Count
			}
			if freqSum != report.Length {
				t.Errorf("frequency counts sum to %d, expected %d", freqSum, report.Length)
			}
			if len(report.Frequencies) != report.UniqueCharacters {
				t.Errorf("expected %d frequency rows, got %d", report.UniqueCharacters, len(report.Frequencies))
			}
			if len(report.Characters) != report.Length {
				t.Errorf("expected %d characters, got %d", report.Length, len(report.Characters))
			}

			if math.IsNaN(report.Entropy) || math.IsInf(report.Entropy, 0) || report.Entropy < 0 {
				t.Errorf("invalid entropy %f", report.Entropy)
			}
			if report.UniqueCharacters > 0 && report.Entropy > math.Log2(float64(report.UniqueCharacters))+1e-9 {
				t.Errorf("entropy %f above log2(%d)", report.Entropy, report.UniqueCharacters)
			}
			if report.PrintableRatio < 0 || report.PrintableRatio > 1 {
				t.Errorf("printable ratio out of range: %f", report.PrintableRatio)
			}

			for i, e := range report.Encodings {
				if !e.Success && e.Output != nil {
					t.Errorf("encoding %d failed but carries output", i)
				}
			}
		})
	}
}

// TestAnalyzeDeterministic tests that repeated analysis gives equal reports.
func TestAnalyzeDeterministic(t *testing.T) {
	t.Parallel()

	input := "The quick brown fox 0123 é́ xn--bcher-kva"
	first := Analyze(input)
	second := Analyze(input)
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical reports for identical input")
	}
}

// TestAnalyzerOptions tests that options reach the pipeline stages.
func TestAnalyzerOptions(t *testing.T) {
	t.Parallel()

	t.Run("codec subset", func(t *testing.T) {
		t.Parallel()
		report := New(WithCodecs(codec.NewHex(), codec.NewUTF8())).Analyze("cafe")
		if len(report.Encodings) != 2 {
			t.Fatalf("expected 2 encodings, got %d", len(report.Encodings))
		}
		if report.Encodings[0].Label != "Hexadecimal" || !report.Encodings[0].Success {
			t.Errorf("unexpected first attempt: %+v", report.Encodings[0])
		}
	})

	t.Run("preview limit", func(t *testing.T) {
		t.Parallel()
		report := New(WithPreviewLimit(4), WithCodecs(codec.NewUTF8())).Analyze("abcdefgh")
		out := report.Encodings[0].Output
		if out == nil || out.Preview != "abcd" || !out.Truncated {
			t.Errorf("expected truncated preview abcd, got %+v", out)
		}
	})

	t.Run("pattern scan limit", func(t *testing.T) {
		t.Parallel()
		report := New(WithPatternScanLimit(4)).Analyze("abcdabcd")
		if len(report.RepeatingPatterns) != 0 {
			t.Errorf("expected no patterns in first 4 code points, got %v", report.RepeatingPatterns)
		}
	})

	t.Run("thresholds", func(t *testing.T) {
		t.Parallel()
		report := New(WithThresholds(Thresholds{HighEntropy: 1})).Analyze("abcd")
		if len(report.Insights) == 0 || !strings.HasPrefix(report.Insights[0], "High entropy") {
			t.Errorf("expected high entropy insight, got %v", report.Insights)
		}
	})
}

// TestAnalyzerCache tests the memo cache.
func TestAnalyzerCache(t *testing.T) {
	t.Parallel()

	a := New(WithCache(2))
	first := a.Analyze("a")
	if again := a.Analyze("a"); again != first {
		t.Error("expected cached report to be returned")
	}

	a.Analyze("b")
	a.Analyze("c")
	if again := a.Analyze("a"); again == first {
		t.Error("expected oldest entry to be evicted")
	}

	stats := a.CacheStats()
	if stats.Entries != 2 {
		t.Errorf("expected 2 entries, got %d", stats.Entries)
	}
	if stats.Hits != 1 || stats.Misses != 4 {
		t.Errorf("expected 1 hit and 4 misses, got %d/%d", stats.Hits, stats.Misses)
	}

	if got := New().CacheStats(); got != (CacheStats{}) {
		t.Errorf("expected zero stats without cache, got %+v", got)
	}
}

// TestAnalyzerConcurrent tests concurrent use of a shared Analyzer.
func TestAnalyzerConcurrent(t *testing.T) {
	t.Parallel()

	a := New(WithCache(8))
	inputs := []string{"alpha", "beta", "gamma", "delta"}

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(input string) {
			defer wg.Done()
			report := a.Analyze(input)
			if report.Input != input {
				t.Errorf("expected %q, got %q", input, report.Input)
			}
		}(inputs[i%len(inputs)])
	}
	wg.Wait()

	if got := a.CacheStats().Entries; got != len(inputs) {
		t.Errorf("expected %d cache entries, got %d", len(inputs), got)
	}
}

// TestAnalyzerLogging tests that debug logging runs through the given logger.
func TestAnalyzerLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	New(WithLogger(logger)).Analyze("token")
	if !strings.Contains(buf.String(), "analysis complete") {
		t.Errorf("expected debug log line, got %q", buf.String())
	}
}

// TestFingerprint tests the SHA3-256 fingerprint.
func TestFingerprint(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected string
	}{
		{"", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{"abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			if got := Fingerprint(tc.input); got != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}
