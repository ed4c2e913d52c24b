// Package conv provides a configurable, reflection-based scalar converter.
// It supports primitives, time parsing, and custom conversion functions
// registered per source/destination type.
package conv
