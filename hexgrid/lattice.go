// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexgrid

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Lattice is a NumRows x NumCols grid of hexagons. Row i is placed at
// x = i*RowPitch and column j at y = j*ColumnPitch; rows are not staggered.
type Lattice struct {
	SideLength float64
	NumRows    int
	NumCols    int

	// NOTE: Row-major, Hexagons[row*NumCols+col].
	Hexagons []Hexagon
}

// RowPitch returns the distance along x between the centers of neighboring rows.
// Hexagons in neighboring rows share an edge.
func RowPitch(sideLength float64) float64 {
	return 2 * sideLength * math.Cos(math.Pi/6)
}

// ColumnPitch returns the distance along y between the centers of neighboring columns.
// Hexagons in neighboring columns touch at a vertex.
func ColumnPitch(sideLength float64) float64 {
	return 2 * sideLength
}

// NewLattice lays out numRows x numCols hexagons with the given side length.
// The hexagon at (0, 0) is centered at the origin.
// It returns an error wrapping ErrInvalidArgument if sideLength is not positive
// or either count is less than one.
func NewLattice(sideLength float64, numRows, numCols int) (*Lattice, error) {
	if !isPositive(sideLength) {
		return nil, fmt.Errorf("%w: side length %v must be positive", ErrInvalidArgument, sideLength)
	}
	if numRows < 1 || numCols < 1 {
		return nil, fmt.Errorf("%w: lattice size %dx%d must be at least 1x1", ErrInvalidArgument,
			numRows, numCols)
	}

	l := &Lattice{
		SideLength: sideLength,
		NumRows:    numRows,
		NumCols:    numCols,
		Hexagons:   make([]Hexagon, numRows*numCols),
	}
	px, py := RowPitch(sideLength), ColumnPitch(sideLength)
	for i := range numRows {
		for j := range numCols {
			l.Hexagons[i*numCols+j] = makeHexagon(sideLength, r2.Point{
				X: float64(i) * px,
				Y: float64(j) * py,
			})
		}
	}
	return l, nil
}

// NumHexagons returns the number of hexagons in the lattice.
func (l *Lattice) NumHexagons() int {
	return len(l.Hexagons)
}

// InBounds reports whether (row, col) addresses a hexagon of the lattice.
func (l *Lattice) InBounds(row, col int) bool {
	return row >= 0 && row < l.NumRows && col >= 0 && col < l.NumCols
}

// Hexagon returns the hexagon at (row, col). It panics if (row, col) is out of range.
func (l *Lattice) Hexagon(row, col int) Hexagon {
	if !l.InBounds(row, col) {
		panic("Hexagon: (row, col) out of range")
	}
	return l.Hexagons[row*l.NumCols+col]
}

// Center returns the center of the hexagon at (row, col).
func (l *Lattice) Center(row, col int) r2.Point {
	return l.Hexagon(row, col).Center
}

// FlatVertices returns a copy of the vertices of every hexagon in row-major order.
func (l *Lattice) FlatVertices() [][NumVertices]r2.Point {
	out := make([][NumVertices]r2.Point, len(l.Hexagons))
	for i, h := range l.Hexagons {
		out[i] = h.Vertices
	}
	return out
}

// Bound returns the smallest rectangle containing every vertex of the lattice.
func (l *Lattice) Bound() r2.Rect {
	rect := r2.EmptyRect()
	for _, h := range l.Hexagons {
		for _, v := range h.Vertices {
			rect = rect.AddPoint(v)
		}
	}
	return rect
}
