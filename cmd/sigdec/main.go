// Package main provides the entry point for the sigdec CLI.
//
// sigdec breaks a string into Unicode code points, reports statistics,
// frequencies, repeating fragments and heuristic insights, and tries a
// bank of decoders against it.
//
// Usage:
//
//	sigdec analyze <string>...
//	sigdec analyze --list <file>
//	sigdec decode <string>
//	sigdec compare <a> <b>
//
// See --help for all available options.
package main

func main() {
	Execute()
}
