// Package mps serializes a lpbuild model into the MPS exchange format
// consumed by external LP/MIP solvers.
//
// What:
//
//   - Write emits NAME, optional OBJSENSE, ROWS, COLUMNS (with
//     INTORG/INTEND integer markers), RHS, RANGES, BOUNDS, optional
//     QUADOBJ and ENDATA.
//   - Row types derive from bounds: free → N, equal bounds → E, upper only
//     → L, lower only → G, both finite → L plus a RANGES entry.
//   - The constraint matrix is walked through the model's column linked
//     lists (the COLUMNS section groups entries per column); symbolic
//     cells are resolved to their currently bound numbers.
//
// Configuration (three independent axes, functional options):
//
//   - Compression: plain text (default), gzip (".gz" appended to the
//     filename, via klauspost/compress) or bzip2 — for which no writer
//     backend exists, so the export silently degrades to plain text
//     rather than failing.
//   - Precision: PrecisionNormal, PrecisionExtra, or PrecisionHex
//     (bit-for-bit IEEE hex literals).
//   - Layout: one or two values per data line.
//
// Unnamed rows and columns are materialized as R0000000/C0000000-style
// defaults so the file is always well-formed. Writing is a single blocking
// sequential pass; there is no cancellation semantics.
//
// Errors: ErrNilModel for a nil model; file-system and write failures are
// wrapped with %w and carry the "mps:" prefix.
package mps
