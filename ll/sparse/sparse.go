/*
Package sparse implements a simple type for sparse integer matrices.
It is used for LL(1) parse tables, indexed by (non-terminal, terminal).
An entry in the table is a list of int32 values; a well-formed LL(1) table
holds at most one value per entry, conflicts show up as additional values.

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
triplets kept sorted by (row, column).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Matrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewMatrix(10, 10, -1)     // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     M.Add(2, 3, 123)               // add a second value
//     cnt := M.ValueCount()          // still returns 1 (one position set)
//     v = M.Value(10, 10)            // returns -1, i.e. the null-value
//
// Values cannot be deleted.
type Matrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

// Triplet values to store
type triplet struct {
	row, col int
	values   []int32
}

// NewMatrix creates a new matrix for int32, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewMatrix(m, n int, nullValue int32) *Matrix {
	return &Matrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *Matrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *Matrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *Matrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of positions set in the matrix.
func (m *Matrix) ValueCount() int {
	return len(m.values)
}

func (m *Matrix) find(i, j int) (int, bool) {
	return slices.BinarySearchFunc(m.values, [2]int{i, j}, func(t triplet, pos [2]int) int {
		switch {
		case t.row < pos[0] || t.row == pos[0] && t.col < pos[1]:
			return -1
		case t.row == pos[0] && t.col == pos[1]:
			return 0
		}
		return 1
	})
}

// Value returns the primary value at position (i,j), or NullValue
func (m *Matrix) Value(i, j int) int32 {
	if k, ok := m.find(i, j); ok {
		return m.values[k].values[0]
	}
	return m.nullval
}

// Values returns all values at position (i,j), or nil.
// The result is a copy.
func (m *Matrix) Values(i, j int) []int32 {
	if k, ok := m.find(i, j); ok {
		return slices.Clone(m.values[k].values)
	}
	return nil
}

// Set a value in the matrix at position (i,j), replacing all values present.
// Setting the null-value is a no-op.
func (m *Matrix) Set(i, j int, value int32) *Matrix {
	return m.setOrAdd(i, j, value, false)
}

// Add a value in the matrix at position (i,j). Values already present
// at (i,j) are not added twice.
func (m *Matrix) Add(i, j int, value int32) *Matrix {
	return m.setOrAdd(i, j, value, true)
}

func (m *Matrix) setOrAdd(i, j int, value int32, doAdd bool) *Matrix {
	if value == m.nullval {
		return m
	}
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse matrix index (%d,%d) out of range %dx%d", i, j, m.rowcnt, m.colcnt))
	}
	at, found := m.find(i, j)
	if found {
		if !doAdd {
			m.values[at].values = []int32{value}
		} else if !slices.Contains(m.values[at].values, value) {
			m.values[at].values = append(m.values[at].values, value)
		}
		return m
	}
	m.values = slices.Insert(m.values, at, triplet{row: i, col: j, values: []int32{value}})
	return m
}

// Each calls f for every position set, in row-major order.
func (m *Matrix) Each(f func(i, j int, values []int32)) {
	for _, t := range m.values {
		f(t.row, t.col, slices.Clone(t.values))
	}
}

// Conflicts returns the number of positions holding more than one value.
func (m *Matrix) Conflicts() int {
	cnt := 0
	for _, t := range m.values {
		if len(t.values) > 1 {
			cnt++
		}
	}
	return cnt
}

func (m *Matrix) String() string {
	return fmt.Sprintf("sparse matrix %dx%d (%d entries, %d conflicts)",
		m.rowcnt, m.colcnt, len(m.values), m.Conflicts())
}
