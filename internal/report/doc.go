// Package report renders analysis reports.
//
// Writers:
//   - SimpleWriter: text for terminals, with tables and optional colour
//   - JSONWriter: machine readable output
//   - MarkdownWriter: GitHub flavoured Markdown with a category pie chart
//
// Writers only format fields of model.Report; they never change values.
package report
