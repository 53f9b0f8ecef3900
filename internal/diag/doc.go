// Package diag carries non-fatal findings out of the scanner.
// The dialect has no fatal lexical errors: unrecognized characters are
// skipped and unterminated strings run to end of input, so everything
// reported here is at most a warning. Callers that pass no Reporter get
// the original silent-recovery behavior.
package diag
