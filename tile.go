// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexarch

import (
	"fmt"

	"github.com/2dChan/hexarch/hexgrid"
	"github.com/golang/geo/r3"
)

// Tile is a view of one hexagon of an Arch.
type Tile struct {
	row, col int
	a        *Arch
}

// Tile returns the view of the hexagon at (row, col).
// It returns an error if (row, col) is out of range.
func (a *Arch) Tile(row, col int) (Tile, error) {
	if !a.Lattice.InBounds(row, col) {
		return Tile{}, fmt.Errorf("Tile: (%d, %d) out of range [0 %d)x[0 %d)", row, col,
			a.NumRows(), a.NumCols())
	}
	return Tile{row: row, col: col, a: a}, nil
}

// Row returns the row of the tile.
func (t Tile) Row() int {
	return t.row
}

// Col returns the column of the tile.
func (t Tile) Col() int {
	return t.col
}

// Hexagon returns the flat hexagon the tile was projected from.
func (t Tile) Hexagon() hexgrid.Hexagon {
	return t.a.Lattice.Hexagon(t.row, t.col)
}

// Center returns the projection of the flat center of the tile.
// It lies on the cylinder, not in the plane of the tile's vertices.
func (t Tile) Center() r3.Vector {
	return t.a.Projector.Project(t.Hexagon().Center)
}

// NumVertices returns the number of vertices of the tile.
func (t Tile) NumVertices() int {
	return hexgrid.NumVertices
}

// Vertices returns the projected vertices of the tile in Arch.Vertices.
func (t Tile) Vertices() []r3.Vector {
	base := vertexIndex(t.a.NumCols(), t.row, t.col, 0)
	return t.a.Vertices[base : base+hexgrid.NumVertices]
}

// Vertex returns projected vertex k of the tile.
// It returns an error if k is out of range.
func (t Tile) Vertex(k int) (r3.Vector, error) {
	if k < 0 || k >= hexgrid.NumVertices {
		return r3.Vector{}, fmt.Errorf("Vertex: index %d out of range [0 %d)", k, hexgrid.NumVertices)
	}
	return t.a.Vertices[vertexIndex(t.a.NumCols(), t.row, t.col, k)], nil
}

// Bridge returns the bridge edge from the tile to the tile in the next row.
// It reports false for tiles in the last row.
func (t Tile) Bridge() (Edge, bool) {
	if t.row+1 >= t.a.NumRows() {
		return Edge{}, false
	}
	return Edge{
		A:      t.a.Vertices[vertexIndex(t.a.NumCols(), t.row, t.col, bridgeFrom)],
		B:      t.a.Vertices[vertexIndex(t.a.NumCols(), t.row+1, t.col, bridgeTo)],
		Bridge: true,
	}, true
}
