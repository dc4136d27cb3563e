package batch

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nao1215/sigdec/internal/analysis"
	"github.com/nao1215/sigdec/internal/model"
)

// slowAnalyzer records peak concurrency while analyzing.
type slowAnalyzer struct {
	delay   time.Duration
	running atomic.Int32
	peak    atomic.Int32
}

func (s *slowAnalyzer) Analyze(input string) *model.Report {
	n := s.running.Add(1)
	for {
		peak := s.peak.Load()
		if n <= peak || s.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(s.delay)
	s.running.Add(-1)
	return &model.Report{Input: input, Length: len(input)}
}

// TestNewProcessor tests defaults and options.
func TestNewProcessor(t *testing.T) {
	t.Parallel()

	if got := NewProcessor(analysis.New()).Concurrency(); got != DefaultConcurrency {
		t.Errorf("expected %d, got %d", DefaultConcurrency, got)
	}
	if got := NewProcessor(analysis.New(), WithConcurrency(2)).Concurrency(); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := NewProcessor(analysis.New(), WithConcurrency(0)).Concurrency(); got != DefaultConcurrency {
		t.Errorf("expected zero to be ignored, got %d", got)
	}
}

// TestProcessOrder tests that results follow input order.
func TestProcessOrder(t *testing.T) {
	t.Parallel()

	inputs := []string{"alpha", "b", "gamma-delta", "", "SGVsbG8=", "alpha"}
	p := NewProcessor(analysis.New(analysis.WithCache(4)), WithConcurrency(3))

	reports, err := p.Process(context.Background(), inputs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != len(inputs) {
		t.Fatalf("expected %d reports, got %d", len(inputs), len(reports))
	}
	for i, r := range reports {
		if r == nil {
			t.Fatalf("report %d is nil", i)
		}
		if r.Input != inputs[i] {
			t.Errorf("index %d: expected %q, got %q", i, inputs[i], r.Input)
		}
	}
}

// TestProcessConcurrencyLimit tests that no more than the limit run at once.
func TestProcessConcurrencyLimit(t *testing.T) {
	t.Parallel()

	a := &slowAnalyzer{delay: 10 * time.Millisecond}
	p := NewProcessor(a, WithConcurrency(2))

	inputs := strings.Split("a b c d e f g h", " ")
	if _, err := p.Process(context.Background(), inputs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if peak := a.peak.Load(); peak > 2 {
		t.Errorf("expected at most 2 concurrent analyses, got %d", peak)
	}
}

// TestProcessCancelled tests that a cancelled context stops the batch.
func TestProcessCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewProcessor(analysis.New())
	reports, err := p.Process(ctx, []string{"a", "b", "c"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	for i, r := range reports {
		if r != nil {
			t.Errorf("expected report %d to be skipped", i)
		}
	}
}

// TestProcessWithCallback tests that every index is reported exactly once.
func TestProcessWithCallback(t *testing.T) {
	t.Parallel()

	inputs := []string{"one", "two", "three", "four"}
	p := NewProcessor(analysis.New(), WithConcurrency(4))

	var mu sync.Mutex
	seen := make(map[int]string)
	err := p.ProcessWithCallback(context.Background(), inputs, func(r *model.Report, index int) {
		mu.Lock()
		defer mu.Unlock()
		seen[index] = r.Input
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != len(inputs) {
		t.Fatalf("expected %d callbacks, got %d", len(inputs), len(seen))
	}
	for i, input := range inputs {
		if seen[i] != input {
			t.Errorf("index %d: expected %q, got %q", i, input, seen[i])
		}
	}
}

// TestReadLines tests line splitting.
func TestReadLines(t *testing.T) {
	t.Parallel()

	lines, err := ReadLines(strings.NewReader("first\r\n\nsecond line\n  \nthird"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"first", "second line", "  ", "third"}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %q", len(expected), len(lines), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}
