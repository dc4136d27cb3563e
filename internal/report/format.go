package report

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/nao1215/sigdec/internal/model"
)

// maxInputWidth is the number of code points of the input echoed in headers.
const maxInputWidth = 60

// quoteInput returns the input as a Go quoted string, shortened to
// maxInputWidth code points.
func quoteInput(s string) string {
	if utf8.RuneCountInString(s) <= maxInputWidth {
		return strconv.Quote(s)
	}
	runes := []rune(s)
	return strconv.Quote(string(runes[:maxInputWidth])) + "…"
}

// formatPercent formats a ratio between 0 and 1 as a percentage.
func formatPercent(ratio float64) string {
	return strconv.FormatFloat(ratio*100, 'f', 1, 64) + "%"
}

// share formats count out of total as a percentage.
func share(count, total int) string {
	if total == 0 {
		return formatPercent(0)
	}
	return formatPercent(float64(count) / float64(total))
}

// formatEntropy formats entropy in bits per symbol.
func formatEntropy(e float64) string {
	return strconv.FormatFloat(e, 'f', 3, 64) + " bits/symbol"
}

// formatLength formats the code point and byte length of an input.
func formatLength(r *model.Report) string {
	return fmt.Sprintf("%s code points (%s)",
		humanize.Comma(int64(r.Length)),
		humanize.Bytes(uint64(len(r.Input))))
}

// codePointRange formats the smallest and largest code point.
func codePointRange(r *model.Report) string {
	if r.MinCodePoint == nil || r.MaxCodePoint == nil {
		return "-"
	}
	return fmt.Sprintf("U+%04X - U+%04X", *r.MinCodePoint, *r.MaxCodePoint)
}

// yesNo formats a boolean for display.
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// attemptDetail returns the preview of a decoded attempt, or its message
// when it failed.
func attemptDetail(a model.EncodingAttempt) string {
	if !a.Decoded() {
		return a.Message
	}
	preview := a.Output.Preview
	if a.Output.Truncated {
		preview += "…"
	}
	return preview
}

// attemptBytes returns the decoded byte count, or "-" for failures.
func attemptBytes(a model.EncodingAttempt) string {
	if !a.Decoded() {
		return "-"
	}
	return humanize.Comma(int64(a.Output.ByteLength))
}

// fingerprintPrefix shortens a fingerprint for tables.
func fingerprintPrefix(fp string) string {
	const n = 16
	if len(fp) <= n {
		return fp
	}
	return fp[:n]
}

// escapeCell makes s safe inside a Markdown table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
