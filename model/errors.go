package model

import "errors"

// Sentinel errors for model operations. Absence (missing cell, unknown
// name, out-of-range getter) is never an error — only structurally
// impossible arguments are.
var (
	// ErrNegativeIndex indicates a negative row or column index was passed
	// to a mutating operation.
	ErrNegativeIndex = errors.New("model: negative row/column index")
	// ErrLengthMismatch indicates the index and value slices of a bulk
	// append differ in length.
	ErrLengthMismatch = errors.New("model: index and value slices differ in length")
)
