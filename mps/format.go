// Package mps: numeric and name formatting helpers.
package mps

import (
	"fmt"
	"math"
	"strconv"
)

// formatValue renders v under the selected precision mode.
func formatValue(v float64, p Precision) string {
	switch p {
	case PrecisionExtra:
		return strconv.FormatFloat(v, 'g', 15, 64)
	case PrecisionHex:
		return strconv.FormatFloat(v, 'x', -1, 64)
	default:
		return strconv.FormatFloat(v, 'g', 10, 64)
	}
}

// rowLabel returns the declared or default name of row i.
func rowLabel(name string, i int) string {
	if name != "" {
		return name
	}

	return fmt.Sprintf("R%07d", i)
}

// colLabel returns the declared or default name of column j.
func colLabel(name string, j int) string {
	if name != "" {
		return name
	}

	return fmt.Sprintf("C%07d", j)
}

func negInf(v float64) bool { return math.IsInf(v, -1) }

func posInf(v float64) bool { return math.IsInf(v, 1) }
