package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/sigdec/internal/model"
)

// JSONWriter renders reports as JSON.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed output.
	indent bool

	// version is recorded in batch envelopes.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables two-space indented output.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// WithVersion sets the tool version recorded in batch output.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter. Output is compact unless
// WithPrettyPrint is given.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Batch is the JSON document written by WriteBatch.
type Batch struct {
	// Version is the sigdec version that produced the reports.
	Version string `json:"version,omitempty"`

	// Count is the number of reports.
	Count int `json:"count"`

	// Reports are in input order.
	Reports []*model.Report `json:"reports"`
}

// Write implements Writer. The report is written bare.
func (w *JSONWriter) Write(report *model.Report) (int, error) {
	return w.WriteValue(report)
}

// WriteBatch implements Writer. Reports are wrapped in a Batch.
func (w *JSONWriter) WriteBatch(reports []*model.Report) (int, error) {
	if reports == nil {
		reports = make([]*model.Report, 0)
	}
	return w.WriteValue(&Batch{
		Version: w.version,
		Count:   len(reports),
		Reports: reports,
	})
}

// WriteValue marshals any value with the writer's settings, followed by a
// newline.
func (w *JSONWriter) WriteValue(v any) (int, error) {
	var data []byte
	var err error
	if w.indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	return w.output.Write(data)
}
