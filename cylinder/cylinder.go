// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package cylinder maps flat points onto a cylinder whose axis is the x axis.
//
// A flat point (x, y) is sent to (x, R*sin(theta), R*cos(theta)) with
// theta = pi*y/(2R). The x coordinate is kept and y is rolled around the axis,
// so the map preserves the distance from the axis exactly.
package cylinder

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// ErrInvalidArgument is returned when a radius is not a finite positive number.
var ErrInvalidArgument = errors.New("cylinder: invalid argument")

// RadiusFor returns the radius of the cylinder an arch of numCols columns of
// hexagons with the given side length is rolled onto.
func RadiusFor(sideLength float64, numCols int) float64 {
	return float64(numCols) * sideLength
}

// Projector projects flat points onto a cylinder of fixed radius.
type Projector struct {
	Radius float64
}

// NewProjector returns a Projector for the given radius.
// It returns an error wrapping ErrInvalidArgument if radius is zero, negative,
// NaN or infinite.
func NewProjector(radius float64) (Projector, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return Projector{}, fmt.Errorf("%w: radius %v must be positive", ErrInvalidArgument, radius)
	}
	return Projector{Radius: radius}, nil
}

// Theta returns the angle around the axis that a flat y coordinate is rolled to.
func (p Projector) Theta(y float64) s1.Angle {
	return s1.Angle(math.Pi*y/(2*p.Radius)) * s1.Radian
}

// Project maps the flat point q onto the cylinder.
func (p Projector) Project(q r2.Point) r3.Vector {
	theta := p.Theta(q.Y).Radians()
	return r3.Vector{
		X: q.X,
		Y: p.Radius * math.Sin(theta),
		Z: p.Radius * math.Cos(theta),
	}
}

// ProjectAll projects every point of pts.
func (p Projector) ProjectAll(pts []r2.Point) []r3.Vector {
	out := make([]r3.Vector, len(pts))
	for i, q := range pts {
		out[i] = p.Project(q)
	}
	return out
}

// Unproject returns the flat point that projects to v.
// NOTE: Only points whose angle lies in (-pi, pi] are recovered.
func (p Projector) Unproject(v r3.Vector) r2.Point {
	theta := math.Atan2(v.Y, v.Z)
	return r2.Point{
		X: v.X,
		Y: 2 * p.Radius * theta / math.Pi,
	}
}

// ArcLength returns the length of the arc around the cylinder between the angles a and b.
// A flat span of 2R along y covers pi radians, so arcs are pi/2 times longer than
// the flat span they come from.
func (p Projector) ArcLength(a, b s1.Angle) float64 {
	return math.Abs((b - a).Radians()) * p.Radius
}
