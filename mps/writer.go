// Package mps: the writer itself. One blocking sequential pass over the
// model: row types first, then the COLUMNS section via the model's
// per-column linked lists, then RHS/RANGES/BOUNDS/QUADOBJ.
package mps

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/lpbuild/model"
)

// objectiveRow is the name of the single N row carrying the objective.
const objectiveRow = "OBJ"

// Write serializes m into filename. CompressionGzip appends ".gz" to the
// destination and wraps the stream; CompressionBzip2 has no writer backend
// and silently degrades to plain text.
func Write(m *model.Model, filename string, opts ...Option) error {
	if m == nil {
		return ErrNilModel
	}
	o := gatherOptions(opts...)
	comp := o.compression
	if comp == CompressionBzip2 {
		comp = CompressionNone // degraded mode, not an error
	}
	dest := filename
	if comp == CompressionGzip {
		dest += ".gz"
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("mps: create %s: %w", dest, err)
	}
	var w io.Writer = f
	var gz *gzip.Writer
	if comp == CompressionGzip {
		gz = gzip.NewWriter(f)
		w = gz
	}
	werr := writeBody(m, w, o)
	if gz != nil {
		if cerr := gz.Close(); werr == nil && cerr != nil {
			werr = fmt.Errorf("mps: close gzip stream: %w", cerr)
		}
	}
	if cerr := f.Close(); werr == nil && cerr != nil {
		werr = fmt.Errorf("mps: close %s: %w", dest, cerr)
	}

	return werr
}

// WriteTo serializes m into an arbitrary stream. The compression option is
// ignored here — wrap the writer yourself if you need a container.
func WriteTo(m *model.Model, w io.Writer, opts ...Option) error {
	if m == nil {
		return ErrNilModel
	}

	return writeBody(m, w, gatherOptions(opts...))
}

// writer carries the per-export state: resolved labels and row typing.
type writer struct {
	bw *bufio.Writer
	m  *model.Model
	o  options

	rowNames []string
	colNames []string
	kind     []byte    // 'N', 'L', 'G', 'E' per row
	rhs      []float64 // right-hand side per row (0 for N)
	rng      []float64 // RANGES value per row (0 when absent)

	markers int
}

func writeBody(m *model.Model, w io.Writer, o options) error {
	ww := &writer{bw: bufio.NewWriter(w), m: m, o: o}
	ww.prepare()
	ww.header()
	ww.rowsSection()
	ww.columnsSection()
	ww.rhsSection()
	ww.rangesSection()
	ww.boundsSection()
	ww.quadSection()
	fmt.Fprintln(ww.bw, "ENDATA")

	if err := ww.bw.Flush(); err != nil {
		return fmt.Errorf("mps: write: %w", err)
	}

	return nil
}

// prepare materializes every row and column label and derives row types
// from bounds: free → N, equal → E, upper-only → L, lower-only → G, both
// finite → L with a range of (upper − lower).
func (ww *writer) prepare() {
	rows, cols := ww.m.NumRows(), ww.m.NumColumns()
	ww.rowNames = make([]string, rows)
	ww.kind = make([]byte, rows)
	ww.rhs = make([]float64, rows)
	ww.rng = make([]float64, rows)
	for i := 0; i < rows; i++ {
		ww.rowNames[i] = rowLabel(ww.m.GetRowName(i), i)
		lo, up := ww.m.GetRowLower(i), ww.m.GetRowUpper(i)
		switch {
		case negInf(lo) && posInf(up):
			ww.kind[i] = 'N'
		case lo == up:
			ww.kind[i] = 'E'
			ww.rhs[i] = lo
		case negInf(lo):
			ww.kind[i] = 'L'
			ww.rhs[i] = up
		case posInf(up):
			ww.kind[i] = 'G'
			ww.rhs[i] = lo
		default:
			ww.kind[i] = 'L'
			ww.rhs[i] = up
			ww.rng[i] = up - lo
		}
	}
	ww.colNames = make([]string, cols)
	for j := 0; j < cols; j++ {
		ww.colNames[j] = colLabel(ww.m.GetColumnName(j), j)
	}
}

func (ww *writer) header() {
	fmt.Fprintln(ww.bw, "* Generated by lpbuild")
	fmt.Fprintf(ww.bw, "NAME          %s\n", ww.o.problemName)
	if ww.m.Direction() == model.Maximize {
		fmt.Fprintln(ww.bw, "OBJSENSE")
		fmt.Fprintln(ww.bw, "    MAX")
	}
}

func (ww *writer) rowsSection() {
	fmt.Fprintln(ww.bw, "ROWS")
	fmt.Fprintf(ww.bw, " N  %s\n", objectiveRow)
	for i, name := range ww.rowNames {
		fmt.Fprintf(ww.bw, " %c  %s\n", ww.kind[i], name)
	}
}

// columnsSection walks every column's linked list. Integer columns are
// bracketed by INTORG/INTEND marker pairs; a column with neither entries
// nor objective still gets a zero objective pair so it is declared.
func (ww *writer) columnsSection() {
	fmt.Fprintln(ww.bw, "COLUMNS")
	inInteger := false
	for c := 0; c < ww.m.NumColumns(); c++ {
		if isInt := ww.m.GetColumnIsInteger(c); isInt != inInteger {
			if isInt {
				ww.marker("'INTORG'")
			} else {
				ww.marker("'INTEND'")
			}
			inInteger = isInt
		}
		var names []string
		var vals []float64
		if obj := ww.m.GetColumnObjective(c); obj != 0 {
			names = append(names, objectiveRow)
			vals = append(vals, obj)
		}
		for cur := ww.m.FirstInColumn(c); cur.Valid(); cur = cur.Next() {
			names = append(names, ww.rowNames[cur.Row()])
			vals = append(vals, ww.m.CursorValue(cur))
		}
		if len(names) == 0 {
			names = append(names, objectiveRow)
			vals = append(vals, 0)
		}
		ww.emitPairs(ww.colNames[c], names, vals)
	}
	if inInteger {
		ww.marker("'INTEND'")
	}
}

func (ww *writer) rhsSection() {
	var names []string
	var vals []float64
	for i := range ww.rhs {
		if ww.kind[i] != 'N' && ww.rhs[i] != 0 {
			names = append(names, ww.rowNames[i])
			vals = append(vals, ww.rhs[i])
		}
	}
	fmt.Fprintln(ww.bw, "RHS")
	ww.emitPairs("RHS", names, vals)
}

func (ww *writer) rangesSection() {
	var names []string
	var vals []float64
	for i := range ww.rng {
		if ww.rng[i] != 0 {
			names = append(names, ww.rowNames[i])
			vals = append(vals, ww.rng[i])
		}
	}
	if len(names) == 0 {
		return
	}
	fmt.Fprintln(ww.bw, "RANGES")
	ww.emitPairs("RANGE", names, vals)
}

func (ww *writer) boundsSection() {
	var lines []string
	value := func(tag string, c int, v float64) string {
		return fmt.Sprintf(" %s %-9s  %-9s  %s", tag, "BND", ww.colNames[c], formatValue(v, ww.o.precision))
	}
	bare := func(tag string, c int) string {
		return fmt.Sprintf(" %s %-9s  %-9s", tag, "BND", ww.colNames[c])
	}
	for c := 0; c < ww.m.NumColumns(); c++ {
		lo, up := ww.m.GetColumnLower(c), ww.m.GetColumnUpper(c)
		switch {
		case lo == 0 && posInf(up):
			// default bounds: nothing to declare
		case negInf(lo) && posInf(up):
			lines = append(lines, bare("FR", c))
		case lo == up:
			lines = append(lines, value("FX", c, lo))
		default:
			if negInf(lo) {
				lines = append(lines, bare("MI", c))
			} else if lo != 0 {
				lines = append(lines, value("LO", c, lo))
			}
			if !posInf(up) {
				lines = append(lines, value("UP", c, up))
			}
		}
	}
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(ww.bw, "BOUNDS")
	for _, line := range lines {
		fmt.Fprintln(ww.bw, strings.TrimRight(line, " "))
	}
}

func (ww *writer) quadSection() {
	if ww.m.NumQuadraticElements() == 0 {
		return
	}
	fmt.Fprintln(ww.bw, "QUADOBJ")
	for c := 0; c < ww.m.NumColumns(); c++ {
		for cur := ww.m.FirstInQuadraticColumn(c); cur.Valid(); cur = cur.Next() {
			fmt.Fprintf(ww.bw, "    %-9s  %-9s  %s\n",
				ww.colNames[cur.Row()], ww.colNames[cur.Col()],
				formatValue(cur.Value(), ww.o.precision))
		}
	}
}

// emitPairs writes (name, value) pairs under one owner field, chunked by
// the values-per-line layout.
func (ww *writer) emitPairs(owner string, names []string, vals []float64) {
	per := ww.o.valuesPerLine
	for i := 0; i < len(names); i += per {
		end := i + per
		if end > len(names) {
			end = len(names)
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "    %-9s", owner)
		for k := i; k < end; k++ {
			fmt.Fprintf(&sb, "  %-9s  %-13s", names[k], formatValue(vals[k], ww.o.precision))
		}
		fmt.Fprintln(ww.bw, strings.TrimRight(sb.String(), " "))
	}
}

// marker emits one INTORG/INTEND bracket line with a unique marker name.
func (ww *writer) marker(tag string) {
	ww.markers++
	fmt.Fprintf(ww.bw, "    %-9s  %-9s  %s\n", fmt.Sprintf("M%07d", ww.markers), "'MARKER'", tag)
}
