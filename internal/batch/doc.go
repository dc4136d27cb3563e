// Package batch analyzes many inputs concurrently with a bounded number of
// goroutines. Results keep the order of the inputs.
package batch
