package report

import (
	"io"

	"github.com/nao1215/sigdec/internal/model"
)

// Writer renders reports to an output.
type Writer interface {
	// Write renders a single report and returns the bytes written.
	Write(report *model.Report) (int, error)

	// WriteBatch renders several reports, in order, as one document.
	WriteBatch(reports []*model.Report) (int, error)
}

// MultiWriter writes every report to several Writers in turn.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that fans out to writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write implements Writer. It stops at the first error.
func (m *MultiWriter) Write(report *model.Report) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteBatch implements Writer. It stops at the first error.
func (m *MultiWriter) WriteBatch(reports []*model.Report) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteBatch(reports)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter holds the output shared by all writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
