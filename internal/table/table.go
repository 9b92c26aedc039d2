// Package table provides a two-dimensional matrix addressed by row and column
// labels. Every cell holds a value of the same type and starts out unset.
package table

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidLabels is returned when a matrix is constructed with an empty or
// duplicated label set.
var ErrInvalidLabels = errors.New("invalid label set")

// Axis identifies the row or column dimension of a matrix.
type Axis uint8

const (
	Row Axis = iota
	Column
)

func (a Axis) String() string {
	switch a {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return "unknown"
	}
}

// KeyError reports a label that is not part of the matrix's label set.
type KeyError struct {
	Axis  Axis
	Label string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s is not a valid %s label", e.Label, e.Axis)
}

// Matrix is a labeled 2-D table. Rows and columns are fixed at construction.
type Matrix[T any] struct {
	unit   string
	rows   []string
	cols   []string
	rowIdx map[string]int
	colIdx map[string]int
	cells  []T
	set    []bool
}

// New creates an empty matrix. The unit is an optional display suffix ("%"
// marks probability tables).
func New[T any](unit string, rows, cols []string) (*Matrix[T], error) {
	rowIdx, err := index(Row, rows)
	if err != nil {
		return nil, err
	}
	colIdx, err := index(Column, cols)
	if err != nil {
		return nil, err
	}
	n := len(rows) * len(cols)
	return &Matrix[T]{
		unit:   unit,
		rows:   append([]string(nil), rows...),
		cols:   append([]string(nil), cols...),
		rowIdx: rowIdx,
		colIdx: colIdx,
		cells:  make([]T, n),
		set:    make([]bool, n),
	}, nil
}

// MustNew is like New but panics on a malformed label set.
func MustNew[T any](unit string, rows, cols []string) *Matrix[T] {
	m, err := New[T](unit, rows, cols)
	if err != nil {
		panic(err)
	}
	return m
}

func index(axis Axis, labels []string) (map[string]int, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no %s labels", ErrInvalidLabels, axis)
	}
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("%w: empty %s label at %d", ErrInvalidLabels, axis, i)
		}
		if _, dup := idx[l]; dup {
			return nil, fmt.Errorf("%w: duplicate %s label %q", ErrInvalidLabels, axis, l)
		}
		idx[l] = i
	}
	return idx, nil
}

// Unit returns the display suffix supplied at construction.
func (m *Matrix[T]) Unit() string { return m.unit }

// Rows returns a copy of the row labels in order.
func (m *Matrix[T]) Rows() []string { return append([]string(nil), m.rows...) }

// Cols returns a copy of the column labels in order.
func (m *Matrix[T]) Cols() []string { return append([]string(nil), m.cols...) }

// HasRow reports whether label is a row of the matrix.
func (m *Matrix[T]) HasRow(label string) bool {
	_, ok := m.rowIdx[label]
	return ok
}

// HasCol reports whether label is a column of the matrix.
func (m *Matrix[T]) HasCol(label string) bool {
	_, ok := m.colIdx[label]
	return ok
}

func (m *Matrix[T]) offset(row, col string) (int, error) {
	r, ok := m.rowIdx[row]
	if !ok {
		return 0, &KeyError{Axis: Row, Label: row}
	}
	c, ok := m.colIdx[col]
	if !ok {
		return 0, &KeyError{Axis: Column, Label: col}
	}
	return r*len(m.cols) + c, nil
}

// Get returns the cell value and whether it has been set.
func (m *Matrix[T]) Get(row, col string) (T, bool, error) {
	var zero T
	i, err := m.offset(row, col)
	if err != nil {
		return zero, false, err
	}
	if !m.set[i] {
		return zero, false, nil
	}
	return m.cells[i], true, nil
}

// Set stores v in the cell.
func (m *Matrix[T]) Set(row, col string, v T) error {
	i, err := m.offset(row, col)
	if err != nil {
		return err
	}
	m.cells[i] = v
	m.set[i] = true
	return nil
}

// Delete returns the cell to the unset state.
func (m *Matrix[T]) Delete(row, col string) error {
	i, err := m.offset(row, col)
	if err != nil {
		return err
	}
	var zero T
	m.cells[i] = zero
	m.set[i] = false
	return nil
}

// At is Get for callers that treat an unknown label as a bug. It panics with
// a *KeyError instead of returning it.
func (m *Matrix[T]) At(row, col string) (T, bool) {
	v, ok, err := m.Get(row, col)
	if err != nil {
		panic(err)
	}
	return v, ok
}

// Put is Set with the same panicking contract as At.
func (m *Matrix[T]) Put(row, col string, v T) {
	if err := m.Set(row, col, v); err != nil {
		panic(err)
	}
}

// Each calls fn for every set cell in row-major order.
func (m *Matrix[T]) Each(fn func(row, col string, v T)) {
	for r, row := range m.rows {
		for c, col := range m.cols {
			i := r*len(m.cols) + c
			if m.set[i] {
				fn(row, col, m.cells[i])
			}
		}
	}
}

// Len returns the number of set cells.
func (m *Matrix[T]) Len() int {
	n := 0
	for _, s := range m.set {
		if s {
			n++
		}
	}
	return n
}

// MarshalJSON encodes the matrix as an object keyed by row then column, with
// unset cells as null so they stay distinguishable from zero.
func (m *Matrix[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for r, row := range m.rows {
		if r > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(row)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(":{")
		for c, col := range m.cols {
			if c > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(col)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			i := r*len(m.cols) + c
			if !m.set[i] {
				buf.WriteString("null")
				continue
			}
			val, err := json.Marshal(m.cells[i])
			if err != nil {
				return nil, fmt.Errorf("encode cell %s/%s: %w", row, col, err)
			}
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
