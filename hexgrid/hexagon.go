// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hexgrid lays out regular hexagons on a flat rectangle.
//
// Vertex k of a hexagon with side s and center c is placed at
// c + s*(sin(k*pi/3), cos(k*pi/3)), so vertex 0 points to +y, vertex 3 to -y,
// vertices 1 and 2 lie on the +x side and vertices 4 and 5 on the -x side.
// Every hexagon uses this order, so vertex k names the same direction in
// every tile of a lattice.
package hexgrid

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// NumVertices is the number of vertices of a hexagon.
const NumVertices = 6

// ErrInvalidArgument is returned when a side length, center or count is not usable.
var ErrInvalidArgument = errors.New("hexgrid: invalid argument")

// Hexagon is a regular hexagon in the plane.
type Hexagon struct {
	SideLength float64
	Center     r2.Point
	Vertices   [NumVertices]r2.Point
}

// NewHexagon returns the hexagon with the given side length centered at (cx, cy).
// It returns an error wrapping ErrInvalidArgument if sideLength is not a finite
// positive number or the center is not finite.
func NewHexagon(sideLength, cx, cy float64) (Hexagon, error) {
	if !isPositive(sideLength) {
		return Hexagon{}, fmt.Errorf("%w: side length %v must be positive", ErrInvalidArgument, sideLength)
	}
	if !isFinite(cx) || !isFinite(cy) {
		return Hexagon{}, fmt.Errorf("%w: center (%v, %v) must be finite", ErrInvalidArgument, cx, cy)
	}
	return makeHexagon(sideLength, r2.Point{X: cx, Y: cy}), nil
}

func makeHexagon(sideLength float64, center r2.Point) Hexagon {
	h := Hexagon{
		SideLength: sideLength,
		Center:     center,
	}
	for k := range NumVertices {
		angle := float64(k) * math.Pi / 3
		h.Vertices[k] = r2.Point{
			X: center.X + sideLength*math.Sin(angle),
			Y: center.Y + sideLength*math.Cos(angle),
		}
	}
	return h
}

// Vertex returns vertex k. It panics if k is out of range.
func (h Hexagon) Vertex(k int) r2.Point {
	if k < 0 || k >= NumVertices {
		panic("Vertex: k out of range")
	}
	return h.Vertices[k]
}

// Edge returns the boundary edge from vertex k to vertex (k+1) mod 6.
// It panics if k is out of range.
func (h Hexagon) Edge(k int) (r2.Point, r2.Point) {
	if k < 0 || k >= NumVertices {
		panic("Edge: k out of range")
	}
	return h.Vertices[k], h.Vertices[(k+1)%NumVertices]
}

// Equal reports whether h and o have exactly the same side length, center and vertices.
func (h Hexagon) Equal(o Hexagon) bool {
	return h == o
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isPositive(f float64) bool {
	return isFinite(f) && f > 0
}
