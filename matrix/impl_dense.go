// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/AddRow return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support growth by rows (AddRow) so callers can assemble a matrix row-by-row,
//     the way the Jacobian builder does.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); AddRow: amortized O(c);
//     Clone: O(r*c); Row/Col: O(c)/O(r); SwapRows: O(c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxAddRow   = "AddRow"   // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxCol      = "Col"      // method tag used in error wrappers
	ctxRowSlice = "RowSlice" // method tag used in error wrappers
	ctxColSlice = "ColSlice" // method tag used in error wrappers
	ctxSwapRows = "SwapRows" // method tag used in error wrappers
	ctxInduce   = "Induced"  // ctor/tag for Dense.Induced
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". Keeps the sentinel matchable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/AddRow/Apply.
type Dense struct {
	r, c           int       // row and column counts (0×0 only for New())
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in writes when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// New returns an empty 0×0 matrix that grows through AddRow.
// The first appended row fixes the column count; every later row must match.
//
// Complexity: O(1).
func New(opts ...Option) *Dense {
	o := gatherOptions(opts...)

	return &Dense{validateNaNInf: o.validateNaNInf}
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return NewDenseWithOptions(rows, cols)
}

// NewDenseWithOptions is NewDense with an explicit numeric policy.
func NewDenseWithOptions(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newDenseLike allocates an r×c zero matrix carrying m's numeric policy.
// Internal: callers have already validated r,c > 0.
func newDenseLike(m *Dense, rows, cols int) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: m.validateNaNInf,
	}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether the matrix holds no cells (0×0 from New()).
func (m *Dense) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a plain sentinel; public methods wrap with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// checkFinite enforces the numeric policy for a single value.
func (m *Dense) checkFinite(v float64) error {
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	if err = m.checkFinite(v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// AddRow appends a copy of row as the new last row.
// MAIN DESCRIPTION:
//   - Grow the matrix by one row, keeping every row the same length.
//
// Implementation:
//   - Stage 1: reject an empty row (ErrInvalidDimensions).
//   - Stage 2: on an empty matrix, the row length fixes Cols(); otherwise it
//     must equal Cols() (ErrDimensionMismatch).
//   - Stage 3: enforce the numeric policy on every value, then append.
//
// Behavior highlights:
//   - All-or-nothing: on error the matrix is unchanged.
//   - The caller's slice is copied; later mutations of row are not observed.
//
// Complexity:
//   - Amortized O(c).
func (m *Dense) AddRow(row []float64) error {
	if len(row) == 0 {
		return denseErrorf(ctxAddRow, m.r, 0, ErrInvalidDimensions)
	}
	if m.r > 0 && len(row) != m.c {
		return denseErrorf(ctxAddRow, m.r, len(row), ErrDimensionMismatch)
	}
	var j int
	for j = 0; j < len(row); j++ {
		if err := m.checkFinite(row[j]); err != nil {
			return denseErrorf(ctxAddRow, m.r, j, err)
		}
	}
	if m.r == 0 {
		m.c = len(row) // first row fixes the column count
	}
	m.data = append(m.data, row...)
	m.r++

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// RowSlice returns row[start..end] (both ends inclusive) as a new slice.
// Errors:
//   - ErrOutOfRange when row is not a valid row index.
//   - ErrBadRange when start<0, end>=Cols() or start>end.
//
// Complexity: O(end-start+1).
func (m *Dense) RowSlice(row, start, end int) ([]float64, error) {
	if row < 0 || row >= m.r {
		return nil, denseErrorf(ctxRowSlice, row, start, ErrOutOfRange)
	}
	if start < 0 || end >= m.c || start > end {
		return nil, fmt.Errorf("Dense.%s(%d,[%d..%d]): %w", ctxRowSlice, row, start, end, ErrBadRange)
	}
	out := make([]float64, end-start+1)
	copy(out, m.data[row*m.c+start:row*m.c+end+1])

	return out, nil
}

// ColSlice returns column col restricted to rows start..end (inclusive).
// Errors:
//   - ErrOutOfRange when col is not a valid column index.
//   - ErrBadRange when start<0, end>=Rows() or start>end.
//
// Complexity: O(end-start+1).
func (m *Dense) ColSlice(col, start, end int) ([]float64, error) {
	if col < 0 || col >= m.c {
		return nil, denseErrorf(ctxColSlice, start, col, ErrOutOfRange)
	}
	if start < 0 || end >= m.r || start > end {
		return nil, fmt.Errorf("Dense.%s(%d,[%d..%d]): %w", ctxColSlice, col, start, end, ErrBadRange)
	}
	out := make([]float64, end-start+1)
	var i int
	for i = start; i <= end; i++ {
		out[i-start] = m.data[i*m.c+col]
	}

	return out, nil
}

// SwapRows exchanges rows i and j in place.
// This is the single structural mutation used by pivoting; solvers call it
// only on their private working copies.
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	bi, bj := i*m.c, j*m.c
	var k int
	for k = 0; k < m.c; k++ {
		m.data[bi+k], m.data[bj+k] = m.data[bj+k], m.data[bi+k]
	}

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant of Clone for internal fast paths.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Format: one "[a, b, c]" line per row, values printed with %g.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed).
//
// Implementation:
//   - Stage 1: reject empty index sets (ErrInvalidDimensions).
//   - Stage 2: allocate the result with the base numeric policy.
//   - Stage 3: nested loops with direct offset math; bounds-check each index.
//
// Errors:
//   - ErrInvalidDimensions (empty index set), ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx) // result rows
	cp := len(colsIdx) // result cols
	if rp == 0 || cp == 0 {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, ErrInvalidDimensions)
	}
	res := newDenseLike(m, rp, cp)

	var i, j int
	var ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// ColumnRange returns the submatrix made of columns start..end (inclusive)
// over all rows. Thin wrapper around Induced.
func (m *Dense) ColumnRange(start, end int) (*Dense, error) {
	if start < 0 || end >= m.c || start > end {
		return nil, fmt.Errorf("Dense.ColumnRange([%d..%d]): %w", start, end, ErrBadRange)
	}
	rows := make([]int, m.r)
	for i := range rows {
		rows[i] = i
	}
	cols := make([]int, end-start+1)
	for j := range cols {
		cols[j] = start + j
	}

	return m.Induced(rows, cols)
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// Respects validateNaNInf; an error aborts and leaves earlier cells updated.
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if err := m.checkFinite(nv); err != nil {
				return denseErrorf(ctxApply, i, j, err)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
