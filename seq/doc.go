// Package seq parses textual, comma delimited sequences into ordered trees.
// A group introduces one nesting level, a leaf carries the literal token.
package seq
