package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/sigdec/internal/model"
)

// MarkdownWriter renders reports as GitHub flavoured Markdown.
type MarkdownWriter struct {
	baseWriter

	// top is the number of frequency rows; 0 shows all.
	top int
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownTop sets the number of frequency rows. 0 shows every row.
func WithMarkdownTop(n int) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		if n >= 0 {
			w.top = n
		}
	}
}

// NewMarkdownWriter creates a MarkdownWriter.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		top:        DefaultTop,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements Writer.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("sigdec report")
	md.PlainText("")
	w.writeReport(md, report)
	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// WriteBatch implements Writer. Each report becomes a section after an
// overview table.
func (w *MarkdownWriter) WriteBatch(reports []*model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("sigdec batch report")
	md.PlainText("")

	rows := make([][]string, len(reports))
	for i, r := range reports {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			"`" + escapeCell(quoteInput(r.Input)) + "`",
			humanize.Comma(int64(r.Length)),
			strconv.FormatFloat(r.Entropy, 'f', 2, 64),
			strconv.Itoa(len(r.SuccessfulEncodings())),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Input", "Length", "Entropy", "Decoded"},
		Rows:   rows,
	})
	md.PlainText("")

	for i, r := range reports {
		md.H2(fmt.Sprintf("Input %d", i+1))
		md.PlainText("")
		w.writeReport(md, r)
	}
	w.writeFooter(md)
	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeReport(md *markdown.Markdown, r *model.Report) {
	w.writeSummary(md, r)
	w.writeCategories(md, r)
	w.writeFrequencies(md, r)
	w.writeInsights(md, r)
	w.writePatterns(md, r)
	w.writeEncodings(md, r)
}

func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, r *model.Report) {
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Input", "`" + escapeCell(quoteInput(r.Input)) + "`"},
			{"Fingerprint (SHA3-256)", "`" + r.Fingerprint + "`"},
			{"Length", formatLength(r)},
			{"Unique characters", humanize.Comma(int64(r.UniqueCharacters))},
			{"Entropy", formatEntropy(r.Entropy)},
			{"Printable ratio", formatPercent(r.PrintableRatio)},
			{"Code point range", codePointRange(r)},
			{"ASCII only", yesNo(r.ASCIIOnly)},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeCategories(md *markdown.Markdown, r *model.Report) {
	md.H3("Categories")
	md.PlainText("")

	rows := make([][]string, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		n := r.CategoryCount(c)
		rows = append(rows, []string{escapeCell(c.Label()), humanize.Comma(int64(n)), share(n, r.Length)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Category", "Count", "Share"},
		Rows:   rows,
	})
	md.PlainText("")

	if r.Length > 0 {
		w.writePieChart(md, r)
	}
}

// writePieChart writes a mermaid pie chart of the non-empty categories.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, r *model.Report) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Character composition"),
		piechart.WithShowData(true),
	)
	for _, c := range model.Categories() {
		if n := r.CategoryCount(c); n > 0 {
			chart.LabelAndIntValue(c.Label(), uint64(n))
		}
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeFrequencies(md *markdown.Markdown, r *model.Report) {
	md.H3("Top characters")
	md.PlainText("")

	entries := r.TopFrequencies(w.top)
	if len(entries) == 0 {
		md.PlainText("No characters.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			"`" + escapeCell(e.Display) + "`",
			fmt.Sprintf("U+%04X", e.CodePoint),
			humanize.Comma(int64(e.Count)),
			strconv.FormatFloat(e.Percentage, 'f', 1, 64) + "%",
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Char", "Code point", "Count", "Share"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeInsights(md *markdown.Markdown, r *model.Report) {
	md.H3("Insights")
	md.PlainText("")
	if len(r.Insights) == 0 {
		md.Note("No heuristic matched this input.")
		md.PlainText("")
		return
	}
	md.BulletList(r.Insights...)
	md.PlainText("")
}

func (w *MarkdownWriter) writePatterns(md *markdown.Markdown, r *model.Report) {
	if len(r.RepeatingPatterns) == 0 {
		return
	}
	md.H3("Repeating patterns")
	md.PlainText("")
	items := make([]string, len(r.RepeatingPatterns))
	for i, p := range r.RepeatingPatterns {
		items[i] = "`" + strconv.Quote(p) + "`"
	}
	md.BulletList(items...)
	md.PlainText("")
}

func (w *MarkdownWriter) writeEncodings(md *markdown.Markdown, r *model.Report) {
	md.H3("Encodings")
	md.PlainText("")

	rows := make([][]string, len(r.Encodings))
	for i, a := range r.Encodings {
		status := "❌"
		if a.Success {
			status = "✅"
		}
		rows[i] = []string{a.Label, status, attemptBytes(a), escapeCell(attemptDetail(a))}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Codec", "Status", "Bytes", "Result"},
		Rows:   rows,
	})
	md.PlainText("")

	for _, a := range r.Encodings {
		if a.Decoded() && a.Output.ByteLength > 0 {
			md.Details(a.Label+" bytes (hex)", "`"+a.Output.Hex+"`")
		}
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [sigdec](https://github.com/nao1215/sigdec)*")
}
