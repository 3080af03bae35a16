// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexarch

import (
	"errors"
	"math"

	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultHullEps = 1e-9
)

// Envelope is the convex hull of the projected vertices of an arch.
type Envelope struct {
	Vertices []r3.Vector

	// NOTE: Indices into Vertices, CCW when looking from outside the hull.
	Triangles [][3]int
}

// Envelope returns the convex hull of the arch's vertices.
// Triangle indices refer to Arch.Vertices.
func (a *Arch) Envelope() (*Envelope, error) {
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(a.Vertices, true, true, defaultHullEps)
	if len(ch.Indices) == 0 || len(ch.Indices)%3 != 0 {
		return nil, errors.New("hexarch: degenerate envelope")
	}

	env := &Envelope{
		Vertices:  a.Vertices,
		Triangles: make([][3]int, len(ch.Indices)/3),
	}
	for i := range env.Triangles {
		base := i * 3
		env.Triangles[i] = [3]int{ch.Indices[base], ch.Indices[base+1], ch.Indices[base+2]}
	}

	inside := env.centroid()
	for i := range env.Triangles {
		sortTriangleVerticesCCW(&env.Triangles[i], env.Vertices, inside)
	}

	return env, nil
}

// TriangleVertices returns the corners of triangle tIdx.
// It panics if tIdx is out of range.
func (env *Envelope) TriangleVertices(tIdx int) (r3.Vector, r3.Vector, r3.Vector) {
	if tIdx < 0 || tIdx >= len(env.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := env.Triangles[tIdx]
	return env.Vertices[t[0]], env.Vertices[t[1]], env.Vertices[t[2]]
}

// Volume returns the volume enclosed by the envelope.
func (env *Envelope) Volume() float64 {
	inside := env.centroid()
	var vol float64
	for i := range env.Triangles {
		a, b, c := env.TriangleVertices(i)
		vol += a.Sub(inside).Dot(b.Sub(inside).Cross(c.Sub(inside)))
	}
	return math.Abs(vol) / 6
}

// Bound returns the corners of the smallest axis-aligned box containing the envelope.
func (env *Envelope) Bound() (lo, hi r3.Vector) {
	lo = r3.Vector{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = r3.Vector{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, t := range env.Triangles {
		for _, idx := range t {
			v := env.Vertices[idx]
			lo = r3.Vector{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
			hi = r3.Vector{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
		}
	}
	return lo, hi
}

// centroid returns the mean of the hull's corners, which lies inside a non-degenerate hull.
func (env *Envelope) centroid() r3.Vector {
	seen := make(map[int]struct{})
	var sum r3.Vector
	for _, t := range env.Triangles {
		for _, idx := range t {
			if _, ok := seen[idx]; ok {
				continue
			}
			seen[idx] = struct{}{}
			sum = sum.Add(env.Vertices[idx])
		}
	}
	if len(seen) == 0 {
		return sum
	}
	return sum.Mul(1 / float64(len(seen)))
}

func sortTriangleVerticesCCW(t *[3]int, v []r3.Vector, inside r3.Vector) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	norm := p1.Sub(p0).Cross(p2.Sub(p0))
	if norm.Dot(p0.Sub(inside)) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}
