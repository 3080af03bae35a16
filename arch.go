// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hexarch computes the geometry of a hexagon-paneled cylindrical shell.
//
// A grid of hexagons is laid out on a flat rectangle (package hexgrid), every
// vertex is rolled onto a cylinder (package cylinder), and the edges of the
// resulting mesh together with the edge vectors incident to every vertex are
// derived from the projected vertices.
package hexarch

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/2dChan/hexarch/cylinder"
	"github.com/2dChan/hexarch/hexgrid"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// ErrInvalidArgument is returned when an input parameter is not usable.
var ErrInvalidArgument = errors.New("hexarch: invalid argument")

// Arch is a lattice of hexagons rolled onto a cylinder.
// An Arch is immutable once built and safe for concurrent use.
type Arch struct {
	Lattice   *hexgrid.Lattice
	Projector cylinder.Projector

	// NOTE: Row-major, six per hexagon, Vertices[VertexIndex(row, col, k)].
	Vertices []r3.Vector

	opts Options

	edgesOnce sync.Once
	edges     []Edge

	adjOnce sync.Once
	adj     *Adjacency
	adjErr  error
}

// NewArch builds an arch of numRows x numCols hexagons with the given side length.
// Rows run along the cylinder axis, columns around it.
// It returns an error wrapping ErrInvalidArgument if any parameter or option is invalid.
func NewArch(sideLength float64, numRows, numCols int, setters ...Option) (*Arch, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}

	l, err := hexgrid.NewLattice(sideLength, numRows, numCols)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	p, err := cylinder.NewProjector(cylinder.RadiusFor(sideLength, numCols))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	a := &Arch{
		Lattice:   l,
		Projector: p,
		Vertices:  make([]r3.Vector, l.NumHexagons()*hexgrid.NumVertices),
		opts:      opts,
	}
	for i, h := range l.Hexagons {
		base := i * hexgrid.NumVertices
		for k, v := range h.Vertices {
			a.Vertices[base+k] = p.Project(v)
		}
	}

	return a, nil
}

// NumRows returns the number of rows of hexagons along the cylinder axis.
func (a *Arch) NumRows() int {
	return a.Lattice.NumRows
}

// NumCols returns the number of columns of hexagons around the cylinder.
func (a *Arch) NumCols() int {
	return a.Lattice.NumCols
}

// NumTiles returns the number of hexagons of the arch.
func (a *Arch) NumTiles() int {
	return a.Lattice.NumHexagons()
}

// Radius returns the radius of the cylinder the arch is rolled onto.
func (a *Arch) Radius() float64 {
	return a.Projector.Radius
}

// VertexIndex returns the index in Vertices of vertex k of the hexagon at (row, col).
// It panics if any index is out of range.
func (a *Arch) VertexIndex(row, col, k int) int {
	if !a.Lattice.InBounds(row, col) || k < 0 || k >= hexgrid.NumVertices {
		panic("VertexIndex: index out of range")
	}
	return vertexIndex(a.NumCols(), row, col, k)
}

// Vertex returns vertex k of the hexagon at (row, col).
// It panics if any index is out of range.
func (a *Arch) Vertex(row, col, k int) r3.Vector {
	return a.Vertices[a.VertexIndex(row, col, k)]
}

// Edges returns the boundary and bridge edges of the arch, computed on first use.
// The returned slice is shared and must not be modified.
func (a *Arch) Edges() []Edge {
	a.edgesOnce.Do(func() {
		a.edges = extractEdges(a.Vertices, a.NumRows(), a.NumCols())
	})
	return a.edges
}

// Adjacency returns the edge vectors incident to every vertex of the arch,
// computed on first use with the options the arch was built with.
func (a *Arch) Adjacency() (*Adjacency, error) {
	a.adjOnce.Do(func() {
		a.adj, a.adjErr = newAdjacency(a.Vertices, a.Edges(), a.opts)
	})
	return a.adj, a.adjErr
}

// Snapshot is a copy of the computed geometry of an arch, safe to hand to sinks.
type Snapshot struct {
	SideLength float64
	NumRows    int
	NumCols    int
	Radius     float64

	// NOTE: Row-major, one entry per hexagon.
	Flat     [][hexgrid.NumVertices]r2.Point
	Vertices []r3.Vector
	Edges    []Edge
}

// Snapshot returns a copy of the flat vertices, projected vertices and edges of the arch.
func (a *Arch) Snapshot() Snapshot {
	return Snapshot{
		SideLength: a.Lattice.SideLength,
		NumRows:    a.NumRows(),
		NumCols:    a.NumCols(),
		Radius:     a.Radius(),
		Flat:       a.Lattice.FlatVertices(),
		Vertices:   slices.Clone(a.Vertices),
		Edges:      slices.Clone(a.Edges()),
	}
}

func vertexIndex(numCols, row, col, k int) int {
	return (row*numCols+col)*hexgrid.NumVertices + k
}
