// Package kernel provides shared domain primitives used across aggregates.
//
// It currently contains the UUID value object, a validated wrapper around
// github.com/google/uuid that ensures identifiers are always constructed
// through factory functions and never used as zero values.
package kernel
