// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

var testBound = r2.RectFromPoints(r2.Point{X: -2, Y: -1}, r2.Point{X: 3, Y: 4})

func TestGenerateRandomPoints_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := GenerateRandomPoints(tt.cnt, tt.seed, testBound)
			if len(points) != tt.cnt {
				t.Errorf("GenerateRandomPoints(%v, %v, ...) len = %v, want %v", tt.cnt, tt.seed,
					len(points), tt.cnt)
			}
		})
	}
}

func TestGenerateRandomPoints_InBound(t *testing.T) {
	const (
		cnt  = 100
		seed = 0
	)
	points := GenerateRandomPoints(cnt, seed, testBound)
	for i, p := range points {
		if !testBound.ContainsPoint(p) {
			t.Errorf("GenerateRandomPoints(%v, %v, ...)[%d] = %v, want inside %v", cnt, seed, i, p,
				testBound)
		}
	}
}

func TestGenerateRandomPoints_EmptyBound(t *testing.T) {
	if got := GenerateRandomPoints(10, 0, r2.EmptyRect()); len(got) != 0 {
		t.Errorf("GenerateRandomPoints(10, 0, EmptyRect()) len = %v, want 0", len(got))
	}
}

func TestGenerateRandomPoints_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	a := GenerateRandomPoints(cnt, seed, testBound)
	b := GenerateRandomPoints(cnt, seed, testBound)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("GenerateRandomPoints(%v, %v, ...) mismatch (-want +got):\n%v", cnt, seed, diff)
	}
}
