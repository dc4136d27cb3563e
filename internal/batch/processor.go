package batch

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/sigdec/internal/model"
)

// DefaultConcurrency is used when no WithConcurrency option is given.
const DefaultConcurrency = 4

// Analyzer produces a report for one input. *analysis.Analyzer satisfies it.
type Analyzer interface {
	Analyze(input string) *model.Report
}

// Processor runs an Analyzer over many inputs.
type Processor struct {
	analyzer    Analyzer
	concurrency int
	logger      *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithConcurrency sets the maximum number of inputs analyzed at once.
// Non-positive values are ignored.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithLogger sets the logger for progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// NewProcessor creates a Processor.
func NewProcessor(analyzer Analyzer, opts ...Option) *Processor {
	p := &Processor{
		analyzer:    analyzer,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Concurrency returns the configured concurrency limit.
func (p *Processor) Concurrency() int {
	return p.concurrency
}

// Process analyzes inputs and returns the reports in input order.
// When ctx is cancelled, inputs not yet started are skipped, their slots
// stay nil and the context error is returned.
func (p *Processor) Process(ctx context.Context, inputs []string) ([]*model.Report, error) {
	results := make([]*model.Report, len(inputs))
	err := p.ProcessWithCallback(ctx, inputs, func(report *model.Report, index int) {
		results[index] = report
	})
	return results, err
}

// ProcessWithCallback analyzes inputs and calls callback as each report
// completes, in completion order. The callback runs on worker goroutines
// and must be safe for concurrent use; distinct indexes never collide.
func (p *Processor) ProcessWithCallback(
	ctx context.Context,
	inputs []string,
	callback func(report *model.Report, index int),
) error {
	p.logger.Debug("starting batch analysis",
		"total", len(inputs),
		"concurrency", p.concurrency,
	)
	startTime := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			report := p.analyzer.Analyze(input)
			callback(report, i)

			p.logger.Debug("input analyzed",
				"index", i+1,
				"total", len(inputs),
				"input", input,
			)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	p.logger.Debug("batch analysis complete",
		"total", len(inputs),
		"elapsed", time.Since(startTime),
	)
	return err
}
