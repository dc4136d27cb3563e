// Package model defines the report data structures produced by the analysis
// engine and consumed by the report writers.
//
// This package contains the following main types:
//   - Report: the complete analysis snapshot of one input string
//   - CharacterDetail: per code point breakdown
//   - FrequencyEntry: one row of the frequency ranking
//   - EncodingAttempt: the outcome of one codec in the decoder bank
//   - Category: the character class enumeration
//   - Comparison: the differences between two reports
//
// The types live in their own package so that analysis, codec and report
// can share them without import cycles. All of them serialize to JSON.
package model
