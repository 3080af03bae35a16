// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cylinder

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/2dChan/hexarch/utils"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

const testEps = 1e-9

func TestNewProjector(t *testing.T) {
	tests := []struct {
		name    string
		radius  float64
		wantErr bool
	}{
		{"radius positive", 1, false},
		{"radius small", 1e-6, false},
		{"radius zero", 0, true},
		{"radius negative", -1, true},
		{"radius NaN", math.NaN(), true},
		{"radius Inf", math.Inf(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProjector(tt.radius)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProjector(%v) error = %v, wantErr %v", tt.radius, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("NewProjector(%v) error = %v, want ErrInvalidArgument", tt.radius, err)
				}
				return
			}
			if p.Radius != tt.radius {
				t.Errorf("NewProjector(%v).Radius = %v, want %v", tt.radius, p.Radius, tt.radius)
			}
		})
	}
}

func TestRadiusFor(t *testing.T) {
	tests := []struct {
		sideLength float64
		numCols    int
		want       float64
	}{
		{1, 1, 1},
		{1, 7, 7},
		{0.5, 4, 2},
		{2, 0, 0},
	}
	for _, tt := range tests {
		if got := RadiusFor(tt.sideLength, tt.numCols); got != tt.want {
			t.Errorf("RadiusFor(%v, %d) = %v, want %v", tt.sideLength, tt.numCols, got, tt.want)
		}
	}
}

func TestProjector_Project(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		in     r2.Point
		want   r3.Vector
	}{
		{"origin", 1, r2.Point{}, r3.Vector{X: 0, Y: 0, Z: 1}},
		{"quarter turn", 1, r2.Point{X: 0, Y: 1}, r3.Vector{X: 0, Y: 1, Z: 0}},
		{"half turn", 1, r2.Point{X: 3, Y: 2}, r3.Vector{X: 3, Y: 0, Z: -1}},
		{"negative quarter", 2, r2.Point{X: -1, Y: -2}, r3.Vector{X: -1, Y: -2, Z: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustNewProjector(t, tt.radius)
			got := p.Project(tt.in)
			if got.Sub(tt.want).Norm() > testEps {
				t.Errorf("p.Project(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestProjector_PreservesX(t *testing.T) {
	p := mustNewProjector(t, 3)
	bound := r2.RectFromPoints(r2.Point{X: -10, Y: -6}, r2.Point{X: 10, Y: 6})
	for _, q := range utils.GenerateRandomPoints(1000, 0, bound) {
		if got := p.Project(q); got.X != q.X {
			t.Errorf("p.Project(%v).X = %v, want %v", q, got.X, q.X)
		}
	}
}

func TestProjector_OnCylinder(t *testing.T) {
	radii := []float64{0.5, 1, 7, 100}
	for _, radius := range radii {
		t.Run(fmt.Sprintf("R%v", radius), func(t *testing.T) {
			p := mustNewProjector(t, radius)
			bound := r2.RectFromPoints(r2.Point{X: -1, Y: -4 * radius}, r2.Point{X: 1, Y: 4 * radius})
			for _, q := range utils.GenerateRandomPoints(1000, 1, bound) {
				v := p.Project(q)
				got := v.Y*v.Y + v.Z*v.Z
				want := radius * radius
				if math.Abs(got-want) > testEps*want {
					t.Errorf("p.Project(%v) y^2+z^2 = %v, want %v", q, got, want)
				}
			}
		})
	}
}

func TestProjector_Theta(t *testing.T) {
	p := mustNewProjector(t, 2)
	tests := []struct {
		y    float64
		want s1.Angle
	}{
		{0, 0},
		{2, math.Pi / 2},
		{4, math.Pi},
		{-4, -math.Pi},
	}
	for _, tt := range tests {
		if got := p.Theta(tt.y); math.Abs((got - tt.want).Radians()) > testEps {
			t.Errorf("p.Theta(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestProjector_Unproject(t *testing.T) {
	const radius = 2.5
	p := mustNewProjector(t, radius)
	// Angles strictly inside (-pi, pi).
	bound := r2.RectFromPoints(r2.Point{X: -5, Y: -1.9 * radius}, r2.Point{X: 5, Y: 1.9 * radius})
	for _, q := range utils.GenerateRandomPoints(500, 2, bound) {
		got := p.Unproject(p.Project(q))
		if got.Sub(q).Norm() > testEps {
			t.Errorf("p.Unproject(p.Project(%v)) = %v, want %v", q, got, q)
		}
	}
}

func TestProjector_ProjectAll(t *testing.T) {
	p := mustNewProjector(t, 1)
	pts := utils.GenerateRandomPoints(20, 3, r2.RectFromPoints(r2.Point{}, r2.Point{X: 1, Y: 1}))
	got := p.ProjectAll(pts)
	if len(got) != len(pts) {
		t.Fatalf("len(p.ProjectAll(...)) = %v, want %v", len(got), len(pts))
	}
	for i, q := range pts {
		if want := p.Project(q); got[i] != want {
			t.Errorf("p.ProjectAll(...)[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestProjector_ArcLength(t *testing.T) {
	const radius = 3.0
	p := mustNewProjector(t, radius)

	// A flat span of 2R covers a half-turn.
	got := p.ArcLength(p.Theta(0), p.Theta(2*radius))
	if want := math.Pi * radius; math.Abs(got-want) > testEps {
		t.Errorf("p.ArcLength(Theta(0), Theta(2R)) = %v, want %v", got, want)
	}
	if got := p.ArcLength(p.Theta(radius), p.Theta(-radius)); math.Abs(got-math.Pi*radius) > testEps {
		t.Errorf("p.ArcLength(Theta(R), Theta(-R)) = %v, want %v", got, math.Pi*radius)
	}
}

// Benchmarks

func BenchmarkProjector_ProjectAll(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4, 1e+5}
	p := Projector{Radius: 10}
	bound := r2.RectFromPoints(r2.Point{X: -10, Y: 0}, r2.Point{X: 10, Y: 20})
	for _, pointsCnt := range sizes {
		b.Run(fmt.Sprintf("N%d", pointsCnt), func(b *testing.B) {
			points := utils.GenerateRandomPoints(pointsCnt, 0, bound)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				p.ProjectAll(points)
			}
		})
	}
}

// Helpers

func mustNewProjector(t *testing.T, radius float64) Projector {
	t.Helper()
	p, err := NewProjector(radius)
	if err != nil {
		t.Fatalf("NewProjector(%v) error = %v, want nil", radius, err)
	}
	return p
}
