// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating flat sample points for arch geometry.

package utils

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates a slice of random points uniformly distributed in bound.
// The seed parameter ensures reproducibility. An empty bound yields no points.
func GenerateRandomPoints(cnt int, seed int64, bound r2.Rect) []r2.Point {
	if bound.IsEmpty() {
		return nil
	}

	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	lo, size := bound.Lo(), bound.Size()
	for i := range cnt {
		points[i] = r2.Point{
			X: lo.X + random.Float64()*size.X,
			Y: lo.Y + random.Float64()*size.Y,
		}
	}

	return points
}
