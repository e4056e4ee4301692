// Package prompt reads operator answers from a line-oriented input stream.
package prompt
