// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render draws snapshots of an arch as SVG.
//
// Every call owns its canvas and reads only the snapshot it is given.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/2dChan/hexarch"
	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r2"
)

const (
	defaultWidth  = 1500
	defaultMargin = 20

	backgroundStyle = "fill:rgb(255,255,255)"
	polygonStyle    = "fill:rgb(255,255,255);stroke:rgb(170,170,170);stroke-width:1;stroke-opacity:1.0"
	edgeStyle       = "stroke:rgb(170,170,170);stroke-width:1"
	bridgeStyle     = "stroke:rgb(255,0,0);stroke-width:1"
)

// ErrEmptySnapshot is returned when a snapshot has nothing to draw.
var ErrEmptySnapshot = errors.New("render: empty snapshot")

// Options configures the size of the drawing.
type Options struct {
	Width  int
	Margin int
}

// Option sets a field of Options.
type Option func(*Options) error

// WithWidth sets the width of the drawing in pixels.
func WithWidth(px int) Option {
	return func(o *Options) error {
		if px <= 0 {
			return fmt.Errorf("render: width %d must be positive", px)
		}
		o.Width = px
		return nil
	}
}

// WithMargin sets the blank border around the drawing in pixels.
func WithMargin(px int) Option {
	return func(o *Options) error {
		if px < 0 {
			return fmt.Errorf("render: margin %d must be non-negative", px)
		}
		o.Margin = px
		return nil
	}
}

// WriteFlat draws the flat lattice of s, one polygon per hexagon.
func WriteFlat(w io.Writer, s hexarch.Snapshot, setters ...Option) error {
	opts, err := newOptions(setters)
	if err != nil {
		return err
	}
	if len(s.Flat) == 0 {
		return ErrEmptySnapshot
	}

	bound := r2.EmptyRect()
	for _, h := range s.Flat {
		for _, v := range h {
			bound = bound.AddPoint(v)
		}
	}
	vp := newViewport(bound, opts)

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(vp.width, vp.height)
	canvas.Rect(0, 0, vp.width, vp.height, backgroundStyle)

	xPoints := make([]int, 0, len(s.Flat[0]))
	yPoints := make([]int, 0, len(s.Flat[0]))
	for _, h := range s.Flat {
		xPoints = xPoints[:0]
		yPoints = yPoints[:0]
		for _, v := range h {
			x, y := vp.toScreen(v)
			xPoints = append(xPoints, x)
			yPoints = append(yPoints, y)
		}
		canvas.Polygon(xPoints, yPoints, polygonStyle)
	}
	canvas.End()

	return ew.err
}

// WriteElevation draws the edges of s as seen along the cylinder axis.
// Bridge edges are drawn in a separate color.
func WriteElevation(w io.Writer, s hexarch.Snapshot, setters ...Option) error {
	opts, err := newOptions(setters)
	if err != nil {
		return err
	}
	if len(s.Vertices) == 0 {
		return ErrEmptySnapshot
	}

	bound := r2.EmptyRect()
	for _, v := range s.Vertices {
		bound = bound.AddPoint(r2.Point{X: v.Y, Y: v.Z})
	}
	vp := newViewport(bound, opts)

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(vp.width, vp.height)
	canvas.Rect(0, 0, vp.width, vp.height, backgroundStyle)

	for _, e := range s.Edges {
		x1, y1 := vp.toScreen(r2.Point{X: e.A.Y, Y: e.A.Z})
		x2, y2 := vp.toScreen(r2.Point{X: e.B.Y, Y: e.B.Z})
		style := edgeStyle
		if e.Bridge {
			style = bridgeStyle
		}
		canvas.Line(x1, y1, x2, y2, style)
	}
	canvas.End()

	return ew.err
}

func newOptions(setters []Option) (Options, error) {
	opts := Options{
		Width:  defaultWidth,
		Margin: defaultMargin,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return Options{}, err
		}
	}
	if 2*opts.Margin >= opts.Width {
		return Options{}, fmt.Errorf("render: margin %d leaves no room in width %d", opts.Margin,
			opts.Width)
	}
	return opts, nil
}

// viewport maps a rectangle of the plane onto the canvas, y up.
type viewport struct {
	bound         r2.Rect
	scale         float64
	margin        int
	width, height int
}

func newViewport(bound r2.Rect, opts Options) viewport {
	size := bound.Size()
	extent := size.X
	if extent <= 0 {
		extent = math.Max(size.Y, 1)
	}
	scale := float64(opts.Width-2*opts.Margin) / extent
	return viewport{
		bound:  bound,
		scale:  scale,
		margin: opts.Margin,
		width:  opts.Width,
		height: int(math.Ceil(size.Y*scale)) + 2*opts.Margin,
	}
}

func (vp viewport) toScreen(p r2.Point) (int, int) {
	lo, hi := vp.bound.Lo(), vp.bound.Hi()
	x := (p.X - lo.X) * vp.scale
	y := (hi.Y - p.Y) * vp.scale
	return vp.margin + int(math.Round(x)), vp.margin + int(math.Round(y))
}

// errWriter keeps the first write error, since svg.SVG does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
