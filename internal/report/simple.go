package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/sigdec/internal/model"
)

// DefaultTop is the number of frequency rows shown when WithTop is not used.
const DefaultTop = 8

// ruleWidth is the width of section separators.
const ruleWidth = 70

// SimpleWriter renders reports as text for terminals.
type SimpleWriter struct {
	baseWriter

	// top is the number of frequency rows; 0 shows all.
	top int

	// characters enables the per code point table.
	characters bool

	colors palette
	upper  cases.Caser
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithTop sets the number of frequency rows. 0 shows every row.
func WithTop(n int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		if n >= 0 {
			w.top = n
		}
	}
}

// WithCharacters enables the per code point breakdown table.
func WithCharacters(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.characters = show
	}
}

// WithColor enables ANSI colours.
func WithColor(enabled bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.colors = newPalette(enabled)
	}
}

// NewSimpleWriter creates a SimpleWriter. Colour is off unless WithColor
// enables it.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		top:        DefaultTop,
		colors:     newPalette(false),
		upper:      cases.Upper(language.English),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements Writer.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder
	if err := w.render(&sb, report); err != nil {
		return 0, err
	}
	return io.WriteString(w.output, sb.String())
}

// WriteBatch implements Writer. Reports are separated by a rule and
// followed by a summary table.
func (w *SimpleWriter) WriteBatch(reports []*model.Report) (int, error) {
	var sb strings.Builder
	for _, r := range reports {
		if err := w.render(&sb, r); err != nil {
			return 0, err
		}
	}
	if err := w.writeBatchSummary(&sb, reports); err != nil {
		return 0, err
	}
	return io.WriteString(w.output, sb.String())
}

func (w *SimpleWriter) render(sb *strings.Builder, r *model.Report) error {
	w.writeHeader(sb, r)
	w.writeCategories(sb, r)
	if err := w.writeFrequencies(sb, r); err != nil {
		return err
	}
	w.writePatterns(sb, r)
	w.writeInsights(sb, r)
	if err := w.writeEncodings(sb, r); err != nil {
		return err
	}
	if w.characters {
		if err := w.writeCharacters(sb, r); err != nil {
			return err
		}
	}
	sb.WriteString("\n")
	return nil
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder, r *model.Report) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(w.colors.heading.Sprint(w.upper.String("sigdec report")))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Input:        %s\n", quoteInput(r.Input))
	fmt.Fprintf(sb, "Fingerprint:  %s\n", w.colors.muted.Sprint(r.Fingerprint))
	fmt.Fprintf(sb, "Length:       %s\n", formatLength(r))
	fmt.Fprintf(sb, "Unique:       %s\n", humanize.Comma(int64(r.UniqueCharacters)))
	fmt.Fprintf(sb, "Entropy:      %s\n", formatEntropy(r.Entropy))
	fmt.Fprintf(sb, "Printable:    %s\n", formatPercent(r.PrintableRatio))
	fmt.Fprintf(sb, "Code points:  %s\n", codePointRange(r))
	fmt.Fprintf(sb, "ASCII only:   %s\n", yesNo(r.ASCIIOnly))
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeSection(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(w.colors.heading.Sprint(w.upper.String(title)))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n\n")
}

func (w *SimpleWriter) writeCategories(sb *strings.Builder, r *model.Report) {
	w.writeSection(sb, "categories")
	for _, c := range model.Categories() {
		n := r.CategoryCount(c)
		fmt.Fprintf(sb, "  %-24s %8s  %7s\n", c.Label(), humanize.Comma(int64(n)), share(n, r.Length))
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeFrequencies(sb *strings.Builder, r *model.Report) error {
	title := "top characters"
	if w.top == 0 {
		title = "character frequencies"
	}
	w.writeSection(sb, title)

	entries := r.TopFrequencies(w.top)
	if len(entries) == 0 {
		sb.WriteString("  (none)\n\n")
		return nil
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			humanize.Ordinal(i + 1),
			e.Display,
			fmt.Sprintf("U+%04X", e.CodePoint),
			humanize.Comma(int64(e.Count)),
			strconv.FormatFloat(e.Percentage, 'f', 1, 64) + "%",
		}
	}
	if err := renderTable(sb, []string{"Rank", "Char", "Code point", "Count", "Share"}, rows); err != nil {
		return err
	}
	if hidden := len(r.Frequencies) - len(entries); hidden > 0 {
		fmt.Fprintf(sb, "  … and %s more\n", humanize.Comma(int64(hidden)))
	}
	sb.WriteString("\n")
	return nil
}

func (w *SimpleWriter) writePatterns(sb *strings.Builder, r *model.Report) {
	w.writeSection(sb, "repeating patterns")
	if len(r.RepeatingPatterns) == 0 {
		sb.WriteString("  (none)\n\n")
		return
	}
	for _, p := range r.RepeatingPatterns {
		fmt.Fprintf(sb, "  %s\n", strconv.Quote(p))
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeInsights(sb *strings.Builder, r *model.Report) {
	w.writeSection(sb, "insights")
	if len(r.Insights) == 0 {
		sb.WriteString("  (none)\n\n")
		return
	}
	for _, msg := range r.Insights {
		fmt.Fprintf(sb, "  %s %s\n", w.colors.insight.Sprint("*"), msg)
	}
	sb.WriteString("\n")
}

// WriteAttempts writes a decoder bank result as a single table.
func (w *SimpleWriter) WriteAttempts(attempts []model.EncodingAttempt) (int, error) {
	var sb strings.Builder
	if err := w.writeAttemptTable(&sb, attempts); err != nil {
		return 0, err
	}
	return io.WriteString(w.output, sb.String())
}

func (w *SimpleWriter) writeEncodings(sb *strings.Builder, r *model.Report) error {
	w.writeSection(sb, "encodings")
	if err := w.writeAttemptTable(sb, r.Encodings); err != nil {
		return err
	}
	sb.WriteString("\n")
	return nil
}

func (w *SimpleWriter) writeAttemptTable(sb *strings.Builder, attempts []model.EncodingAttempt) error {
	rows := make([][]string, len(attempts))
	for i, a := range attempts {
		status := w.colors.fail.Sprint("FAIL")
		if a.Success {
			status = w.colors.ok.Sprint("OK")
		}
		rows[i] = []string{a.Label, status, attemptBytes(a), attemptDetail(a)}
	}
	return renderTable(sb, []string{"Codec", "Status", "Bytes", "Result"}, rows)
}

func (w *SimpleWriter) writeCharacters(sb *strings.Builder, r *model.Report) error {
	w.writeSection(sb, "characters")
	if len(r.Characters) == 0 {
		sb.WriteString("  (none)\n\n")
		return nil
	}

	rows := make([][]string, len(r.Characters))
	for i, c := range r.Characters {
		rows[i] = []string{
			strconv.Itoa(c.Index),
			c.Display,
			c.Hex,
			c.Binary,
			c.Category.Label(),
			c.Name,
		}
	}
	if err := renderTable(sb, []string{"#", "Char", "Hex", "Binary", "Category", "Name"}, rows); err != nil {
		return err
	}
	sb.WriteString("\n")
	return nil
}

func (w *SimpleWriter) writeBatchSummary(sb *strings.Builder, reports []*model.Report) error {
	w.writeSection(sb, "summary")

	rows := make([][]string, len(reports))
	for i, r := range reports {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			quoteInput(r.Input),
			humanize.Comma(int64(r.Length)),
			strconv.FormatFloat(r.Entropy, 'f', 2, 64),
			strconv.Itoa(len(r.SuccessfulEncodings())),
			fingerprintPrefix(r.Fingerprint),
		}
	}
	if err := renderTable(sb, []string{"#", "Input", "Length", "Entropy", "Decoded", "Fingerprint"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(sb, "\nAnalyzed %s input(s).\n", humanize.Comma(int64(len(reports))))
	return nil
}

// renderTable writes a table with the given header and rows to w.
func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	table.Header(cells...)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
