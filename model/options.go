// Package model: functional configuration for New. Defaults are constants
// (single source of truth); WithX constructors panic only on nonsensical
// values (programmer error), never on user data.
package model

// Pre-sizing defaults: allocate nothing up front.
const (
	// DefaultExpectedRows is the default row-capacity hint.
	DefaultExpectedRows = 0
	// DefaultExpectedColumns is the default column-capacity hint.
	DefaultExpectedColumns = 0
	// DefaultExpectedElements is the default element-capacity hint.
	DefaultExpectedElements = 0
)

// Internal panic messages (no magic strings).
const (
	panicNegativeHint = "model: WithExpected*: hint must be non-negative"
)

// Option mutates the construction options. Safe to apply repeatedly;
// last-writer-wins.
type Option func(*options)

type options struct {
	mode      BuildMode
	direction Direction

	hintRows     int
	hintCols     int
	hintElements int
}

// WithRowBuild declares that the model will be assembled with AddRow,
// keeping the index-free bulk path active until the caller mixes
// orientations. Purely advisory.
func WithRowBuild() Option {
	return func(o *options) { o.mode = BuildByRow }
}

// WithColumnBuild is the AddColumn mirror of WithRowBuild.
func WithColumnBuild() Option {
	return func(o *options) { o.mode = BuildByColumn }
}

// WithMinimize sets the optimization sense to Minimize (the default).
func WithMinimize() Option {
	return func(o *options) { o.direction = Minimize }
}

// WithMaximize sets the optimization sense to Maximize.
func WithMaximize() Option {
	return func(o *options) { o.direction = Maximize }
}

// WithIgnoreDirection marks the objective sense as irrelevant.
func WithIgnoreDirection() Option {
	return func(o *options) { o.direction = IgnoreDirection }
}

// WithExpectedRows pre-sizes row metadata for n rows. Panics on negative n.
func WithExpectedRows(n int) Option {
	if n < 0 {
		panic(panicNegativeHint)
	}

	return func(o *options) { o.hintRows = n }
}

// WithExpectedColumns pre-sizes column metadata for n columns. Panics on
// negative n.
func WithExpectedColumns(n int) Option {
	if n < 0 {
		panic(panicNegativeHint)
	}

	return func(o *options) { o.hintCols = n }
}

// WithExpectedElements pre-sizes the element arena for n entries. Panics
// on negative n.
func WithExpectedElements(n int) Option {
	if n < 0 {
		panic(panicNegativeHint)
	}

	return func(o *options) { o.hintElements = n }
}

// gatherOptions resolves setters against the documented defaults.
func gatherOptions(user ...Option) options {
	o := options{
		mode:         BuildUnset,
		direction:    Minimize,
		hintRows:     DefaultExpectedRows,
		hintCols:     DefaultExpectedColumns,
		hintElements: DefaultExpectedElements,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
