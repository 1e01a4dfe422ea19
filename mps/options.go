// Package mps: sentinel errors, configuration axes and functional options
// for the writer.
package mps

import "errors"

// ErrNilModel indicates Write/WriteTo was handed a nil model.
var ErrNilModel = errors.New("mps: nil model")

// Compression selects the output container.
type Compression int

const (
	// CompressionNone writes plain text (the default).
	CompressionNone Compression = iota
	// CompressionGzip wraps the output in gzip and appends ".gz" to the
	// destination filename.
	CompressionGzip
	// CompressionBzip2 is accepted for compatibility but has no writer
	// backend; the export degrades to plain text instead of failing.
	CompressionBzip2
)

// Precision selects numeric formatting fidelity.
type Precision int

const (
	// PrecisionNormal formats with 10 significant digits.
	PrecisionNormal Precision = iota
	// PrecisionExtra formats with 15 significant digits.
	PrecisionExtra
	// PrecisionHex formats IEEE hex literals — exact bit-for-bit values.
	PrecisionHex
)

// Layout defaults.
const (
	// DefaultValuesPerLine is the number of (name, value) pairs per data line.
	DefaultValuesPerLine = 2
	// DefaultProblemName is used when WithProblemName is not given.
	DefaultProblemName = "LPBUILD"
)

const panicValuesPerLine = "mps: WithValuesPerLine: n must be 1 or 2"

// Option mutates the writer options; last-writer-wins.
type Option func(*options)

type options struct {
	compression   Compression
	precision     Precision
	valuesPerLine int
	problemName   string
}

// WithCompression selects the output container.
func WithCompression(c Compression) Option {
	return func(o *options) { o.compression = c }
}

// WithGzip is shorthand for WithCompression(CompressionGzip).
func WithGzip() Option { return WithCompression(CompressionGzip) }

// WithPrecision selects the numeric formatting mode.
func WithPrecision(p Precision) Option {
	return func(o *options) { o.precision = p }
}

// WithValuesPerLine sets how many (name, value) pairs share one data line.
// Panics unless n is 1 or 2 (programmer error).
func WithValuesPerLine(n int) Option {
	if n != 1 && n != 2 {
		panic(panicValuesPerLine)
	}

	return func(o *options) { o.valuesPerLine = n }
}

// WithProblemName sets the NAME record.
func WithProblemName(name string) Option {
	return func(o *options) { o.problemName = name }
}

func gatherOptions(user ...Option) options {
	o := options{
		compression:   CompressionNone,
		precision:     PrecisionNormal,
		valuesPerLine: DefaultValuesPerLine,
		problemName:   DefaultProblemName,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
