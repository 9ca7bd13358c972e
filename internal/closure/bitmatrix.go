// Package closure computes the precedence closure (C1): the reflexive
// transitive closure A of a task graph's arc set, via Warshall's algorithm.
//
// BitMatrix is a row-major boolean matrix, one bit per cell, modeled on the
// teacher's matrix.Dense (matrix/dense.go: flat backing slice, At/Set,
// Rows/Cols, sentinel errors on bad shape/bounds) but packed into []uint64
// words since every cell here is boolean — A and H never need the float64
// precision matrix.Dense offers, only O(N^2) bits.
package closure

import (
	"errors"
	"fmt"
)

// Sentinel errors, matching the teacher's matrix package convention: every
// message prefixed with the package name, matched via errors.Is.
var (
	// ErrInvalidDimensions indicates a requested side <= 0.
	ErrInvalidDimensions = errors.New("closure: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside [0, n).
	ErrIndexOutOfBounds = errors.New("closure: index out of bounds")
)

const wordBits = 64

// BitMatrix is a square n x n boolean matrix, row-major, packed 64 bits per
// word. Matches matrix.Dense's access pattern but at 1/64th the memory.
type BitMatrix struct {
	n     int
	words []uint64 // n rows * wordsPerRow words
	wpr   int      // words per row = ceil(n/64)
}

// NewBitMatrix allocates an n x n BitMatrix, all bits cleared.
// Complexity: O(n^2) time and memory (bits, not bytes).
func NewBitMatrix(n int) (*BitMatrix, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	wpr := (n + wordBits - 1) / wordBits

	return &BitMatrix{n: n, words: make([]uint64, n*wpr), wpr: wpr}, nil
}

// Side returns n, the matrix's side length.
func (m *BitMatrix) Side() int { return m.n }

func (m *BitMatrix) locate(i, j int) (word int, bit uint, err error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, 0, fmt.Errorf("closure: At/Set(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return i*m.wpr + j/wordBits, uint(j % wordBits), nil
}

// At reports whether cell (i, j) is set.
func (m *BitMatrix) At(i, j int) (bool, error) {
	w, b, err := m.locate(i, j)
	if err != nil {
		return false, err
	}

	return m.words[w]&(uint64(1)<<b) != 0, nil
}

// Set sets or clears cell (i, j).
func (m *BitMatrix) Set(i, j int, v bool) error {
	w, b, err := m.locate(i, j)
	if err != nil {
		return err
	}
	if v {
		m.words[w] |= uint64(1) << b
	} else {
		m.words[w] &^= uint64(1) << b
	}

	return nil
}

// rowWordRange returns the word slice backing row i.
func (m *BitMatrix) rowWordRange(i int) []uint64 {
	start := i * m.wpr

	return m.words[start : start+m.wpr]
}
