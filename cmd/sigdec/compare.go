package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/spf13/cobra"

	"github.com/nao1215/sigdec/internal/analysis"
	"github.com/nao1215/sigdec/internal/config"
	"github.com/nao1215/sigdec/internal/model"
	"github.com/nao1215/sigdec/internal/report"
)

// noneLabel is printed for empty lists.
const noneLabel = "(none)"

// NewCompareCmd creates the compare command.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <left> <right>",
		Short: "Compare the analysis of two strings",
		Long: `Compare analyzes two strings and shows how the right one differs from the left:
- Length, unique characters, entropy and printable ratio deltas
- Category count changes
- Shared characters and characters found on one side only
- Insights and successful decoders gained or lost

Examples:
  # Compare two tokens
  sigdec compare 'abc123' 'ABC-123'

  # Output the comparison as JSON
  sigdec compare --json "$OLD_TOKEN" "$NEW_TOKEN"`,
		Args: cobra.ExactArgs(2),
		RunE: runCompareCmd,
	}

	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output comparison result in Markdown format")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .sigdec.yaml in current, XDG config or home directory)")
	cmd.Flags().StringP("profile", "p", "",
		"Named profile from the configuration file")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	markdownOutput, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	if jsonOutput && markdownOutput {
		return fmt.Errorf("configuration error: %w", config.ErrConflictingReportFormats)
	}

	cfg := config.NewConfig()
	if cfg.ConfigFilePath, err = cmd.Flags().GetString("config"); err != nil {
		return err
	}
	if cfg.Profile, err = cmd.Flags().GetString("profile"); err != nil {
		return err
	}
	if _, err := cfg.ApplyConfigFile(); err != nil {
		return err
	}
	if err := cfg.Analysis.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	opts, err := cfg.Analysis.AnalyzerOptions()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	analyzer := analysis.New(opts...)
	result := analysis.Compare(analyzer.Analyze(args[0]), analyzer.Analyze(args[1]))

	out := cmd.OutOrStdout()
	switch {
	case jsonOutput:
		_, err = report.NewJSONWriter(out, report.WithPrettyPrint()).WriteValue(result)
	case markdownOutput:
		err = outputComparisonMarkdown(out, result)
	default:
		err = outputComparisonText(out, result)
	}
	if err != nil {
		return fmt.Errorf("failed to write comparison: %w", err)
	}
	return nil
}

// outputComparisonText writes the comparison as plain text.
func outputComparisonText(w io.Writer, c *model.Comparison) error {
	var sb strings.Builder

	sb.WriteString("Comparison\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&sb, "Left:  %s\n", strconv.Quote(c.Left.Input))
	fmt.Fprintf(&sb, "Right: %s\n\n", strconv.Quote(c.Right.Input))

	if c.Identical {
		sb.WriteString("The inputs are identical.\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}

	sb.WriteString("Metrics:\n")
	fmt.Fprintf(&sb, "  %-18s %8s %8s %8s\n", "", "left", "right", "delta")
	for _, m := range comparisonMetrics(c) {
		fmt.Fprintf(&sb, "  %-18s %8s %8s %8s\n", m.name, m.left, m.right, m.delta)
	}
	fmt.Fprintf(&sb, "\nEntropy: %s\n", formatEntropyDirection(c.EntropyDirection))

	changed := changedCategories(c)
	if len(changed) > 0 {
		sb.WriteString("\nCategory changes:\n")
		for _, cat := range changed {
			fmt.Fprintf(&sb, "  %-18s %s\n", cat.Label(), formatDelta(c.CategoryDeltas[cat]))
		}
	}

	sb.WriteString("\nCharacters:\n")
	fmt.Fprintf(&sb, "  Shared:     %s\n", joinOrNone(quoteAll(c.SharedCharacters)))
	fmt.Fprintf(&sb, "  Left only:  %s\n", joinOrNone(quoteAll(c.LeftOnly)))
	fmt.Fprintf(&sb, "  Right only: %s\n", joinOrNone(quoteAll(c.RightOnly)))

	writeTextList(&sb, "Insights gained", "+", c.InsightsGained)
	writeTextList(&sb, "Insights lost", "-", c.InsightsLost)
	writeTextList(&sb, "Decoders gained", "+", c.DecodingsGained)
	writeTextList(&sb, "Decoders lost", "-", c.DecodingsLost)

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTextList(sb *strings.Builder, title, marker string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(sb, "  %s %s\n", marker, item)
	}
}

// outputComparisonMarkdown writes the comparison as Markdown.
func outputComparisonMarkdown(w io.Writer, c *model.Comparison) error {
	md := markdown.NewMarkdown(w)
	md.H1("sigdec comparison")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Side", "Input", "Fingerprint (SHA3-256)"},
		Rows: [][]string{
			{"Left", "`" + markdownCell(strconv.Quote(c.Left.Input)) + "`", "`" + c.Left.Fingerprint + "`"},
			{"Right", "`" + markdownCell(strconv.Quote(c.Right.Input)) + "`", "`" + c.Right.Fingerprint + "`"},
		},
	})
	md.PlainText("")

	if c.Identical {
		md.Note("The inputs are identical.")
		return md.Build()
	}

	md.H2("Metrics")
	md.PlainText("")
	metrics := comparisonMetrics(c)
	rows := make([][]string, len(metrics))
	for i, m := range metrics {
		rows[i] = []string{m.name, m.left, m.right, m.delta}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Left", "Right", "Delta"},
		Rows:   rows,
	})
	md.PlainText("")
	md.PlainTextf("Entropy: **%s**", formatEntropyDirection(c.EntropyDirection))
	md.PlainText("")

	if changed := changedCategories(c); len(changed) > 0 {
		md.H2("Category changes")
		md.PlainText("")
		rows := make([][]string, len(changed))
		for i, cat := range changed {
			rows[i] = []string{cat.Label(), formatDelta(c.CategoryDeltas[cat])}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Category", "Delta"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	md.H2("Characters")
	md.PlainText("")
	md.BulletList(
		"Shared: "+joinOrNone(codeAll(c.SharedCharacters)),
		"Left only: "+joinOrNone(codeAll(c.LeftOnly)),
		"Right only: "+joinOrNone(codeAll(c.RightOnly)),
	)
	md.PlainText("")

	writeMarkdownList(md, "Insights gained", c.InsightsGained)
	writeMarkdownList(md, "Insights lost", c.InsightsLost)
	writeMarkdownList(md, "Decoders gained", c.DecodingsGained)
	writeMarkdownList(md, "Decoders lost", c.DecodingsLost)

	return md.Build()
}

func writeMarkdownList(md *markdown.Markdown, title string, items []string) {
	if len(items) == 0 {
		return
	}
	md.H2(title)
	md.PlainText("")
	md.BulletList(items...)
	md.PlainText("")
}

// metricRow is one line of the metrics table.
type metricRow struct {
	name, left, right, delta string
}

func comparisonMetrics(c *model.Comparison) []metricRow {
	return []metricRow{
		{
			name:  "Length",
			left:  strconv.Itoa(c.Left.Length),
			right: strconv.Itoa(c.Right.Length),
			delta: formatDelta(c.LengthDelta),
		},
		{
			name:  "Unique characters",
			left:  strconv.Itoa(c.Left.UniqueCharacters),
			right: strconv.Itoa(c.Right.UniqueCharacters),
			delta: formatDelta(c.UniqueDelta),
		},
		{
			name:  "Entropy",
			left:  strconv.FormatFloat(c.Left.Entropy, 'f', 3, 64),
			right: strconv.FormatFloat(c.Right.Entropy, 'f', 3, 64),
			delta: formatFloatDelta(c.EntropyDelta, 3),
		},
		{
			name:  "Printable ratio",
			left:  strconv.FormatFloat(c.Left.PrintableRatio, 'f', 3, 64),
			right: strconv.FormatFloat(c.Right.PrintableRatio, 'f', 3, 64),
			delta: formatFloatDelta(c.PrintableRatioDelta, 3),
		},
	}
}

// changedCategories returns the categories whose count differs, in
// canonical order.
func changedCategories(c *model.Comparison) []model.Category {
	var changed []model.Category
	for _, cat := range model.Categories() {
		if c.CategoryDeltas[cat] != 0 {
			changed = append(changed, cat)
		}
	}
	return changed
}

// formatEntropyDirection describes the entropy direction.
func formatEntropyDirection(direction string) string {
	switch direction {
	case model.DirectionHigher:
		return "higher (right looks more random)"
	case model.DirectionLower:
		return "lower (right looks more regular)"
	default:
		return "unchanged"
	}
}

// formatDelta formats an integer delta with an explicit sign.
func formatDelta(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	}
	return strconv.Itoa(delta)
}

// formatFloatDelta formats a float delta with an explicit sign.
func formatFloatDelta(delta float64, prec int) string {
	s := strconv.FormatFloat(delta, 'f', prec, 64)
	if strings.Trim(s, "-0.") == "" {
		return strconv.FormatFloat(0, 'f', prec, 64)
	}
	if delta > 0 {
		return "+" + s
	}
	return s
}

func quoteAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strconv.Quote(s)
	}
	return out
}

func codeAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = "`" + markdownCell(strconv.Quote(s)) + "`"
	}
	return out
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return noneLabel
	}
	return strings.Join(items, " ")
}

// markdownCell escapes table separators.
func markdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
