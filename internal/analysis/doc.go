// Package analysis is the string analysis engine.
//
// Analyze maps an input string to a complete model.Report in a single,
// stateless pass:
//
//  1. Decompose splits the input into Unicode code points.
//  2. Classify assigns each code point one model.Category.
//  3. Aggregate computes length, unique symbols, category counts, code
//     point extrema, the ASCII-only flag, the printable ratio and the
//     Shannon entropy.
//  4. RankFrequencies builds the descending frequency table.
//  5. DetectPatterns finds substrings that repeat.
//  6. GenerateInsights derives heuristic observations.
//  7. The codec.Bank attempts every decoder against the raw input.
//
// The engine performs no I/O and holds no shared mutable state, so it is
// safe to call from many goroutines. Analyzer adds an optional bounded memo
// cache on top; it is sound only because Analyze is pure.
package analysis
