// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexarch

import (
	"fmt"

	"github.com/2dChan/hexarch/hexgrid"
	"github.com/golang/geo/r3"
)

// Bridge edges join vertex bridgeFrom of a hexagon to vertex bridgeTo of the
// hexagon in the next row and same column.
const (
	bridgeFrom = 0
	bridgeTo   = 3
)

// Edge is a segment of the mesh from A to B.
type Edge struct {
	A, B r3.Vector

	// Bridge is set for edges that join two hexagons rather than bound one.
	Bridge bool
}

// Vector returns the displacement from A to B.
func (e Edge) Vector() r3.Vector {
	return e.B.Sub(e.A)
}

// Length returns the distance between A and B.
func (e Edge) Length() float64 {
	return e.A.Distance(e.B)
}

// NumEdges returns the number of edges ExtractEdges produces for a numRows x numCols lattice.
func NumEdges(numRows, numCols int) int {
	return numRows*numCols*hexgrid.NumVertices + (numRows-1)*numCols
}

// ExtractEdges returns the edges of a projected lattice.
//
// vertices holds six vertices per hexagon in row-major order, as Arch.Vertices does.
// The six boundary edges of every hexagon come first, in row-major order, followed by
// the bridge edges from vertex 0 of (row, col) to vertex 3 of (row+1, col).
// Edges shared by two hexagons are emitted once per hexagon.
func ExtractEdges(vertices []r3.Vector, numRows, numCols int) ([]Edge, error) {
	if numRows < 1 || numCols < 1 {
		return nil, fmt.Errorf("%w: lattice size %dx%d must be at least 1x1", ErrInvalidArgument,
			numRows, numCols)
	}
	if want := numRows * numCols * hexgrid.NumVertices; len(vertices) != want {
		return nil, fmt.Errorf("%w: got %d vertices for a %dx%d lattice, want %d", ErrInvalidArgument,
			len(vertices), numRows, numCols, want)
	}
	return extractEdges(vertices, numRows, numCols), nil
}

func extractEdges(vertices []r3.Vector, numRows, numCols int) []Edge {
	edges := make([]Edge, 0, NumEdges(numRows, numCols))

	for row := range numRows {
		for col := range numCols {
			base := vertexIndex(numCols, row, col, 0)
			for k := range hexgrid.NumVertices {
				edges = append(edges, Edge{
					A: vertices[base+k],
					B: vertices[base+(k+1)%hexgrid.NumVertices],
				})
			}
		}
	}

	for row := range numRows - 1 {
		for col := range numCols {
			edges = append(edges, Edge{
				A:      vertices[vertexIndex(numCols, row, col, bridgeFrom)],
				B:      vertices[vertexIndex(numCols, row+1, col, bridgeTo)],
				Bridge: true,
			})
		}
	}

	return edges
}
