// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexarch

import (
	"fmt"
	"math"
)

// Options configures how an Arch and its Adjacency are built.
type Options struct {
	// MergeEps is the distance under which two vertices are treated as one
	// when building an Adjacency. Zero means exact coordinate equality.
	MergeEps float64
}

// Option sets a field of Options.
type Option func(*Options) error

// WithMergeEps merges vertices closer than eps when building an Adjacency.
// The option returns an error if eps is not a finite positive number.
func WithMergeEps(eps float64) Option {
	return func(o *Options) error {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
			return fmt.Errorf("%w: merge eps %v must be positive", ErrInvalidArgument, eps)
		}
		o.MergeEps = eps
		return nil
	}
}

func newOptions(setters []Option) (Options, error) {
	var opts Options
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}
