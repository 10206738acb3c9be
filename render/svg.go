// Package render draws a point set and its separating lines as SVG.
//
// The drawing uses the plane's orientation: y grows upward. Lines span the
// padded bounding box of the points.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/sepline/core"
	"github.com/katalvlaran/sepline/lines"
)

// Default styles.
const (
	DefaultPointStyle = "fill: black"
	DefaultXLineStyle = "stroke: #1f77b4; stroke-width: 0.05"
	DefaultYLineStyle = "stroke: #d62728; stroke-width: 0.05"
)

// Options controls the drawing.
type Options struct {
	Padding     float64 // margin around the points' bounding box
	PointRadius float64
	PointStyle  string
	XLineStyle  string // vertical lines
	YLineStyle  string // horizontal lines
}

// DefaultOptions returns a one-unit padding, 0.15 point radius and the
// default styles.
func DefaultOptions() Options {
	return Options{
		Padding:     1,
		PointRadius: 0.15,
		PointStyle:  DefaultPointStyle,
		XLineStyle:  DefaultXLineStyle,
		YLineStyle:  DefaultYLineStyle,
	}
}

// Bounds returns the smallest rectangle holding every point and every line
// coordinate, grown by pad on each side. An empty input gives a rectangle of
// size 2·pad around the origin.
func Bounds(points []core.Point, ls []lines.Line, pad float64) geom.Rect {
	r := geom.Rect{}
	first := true
	add := func(c geom.Coord) {
		if first {
			r = geom.Rect{Min: c, Max: c}
			first = false
			return
		}
		r.ExpandToContainCoord(c)
	}
	for _, p := range points {
		add(geom.Coord{X: float64(p.X), Y: float64(p.Y)})
	}
	for _, l := range ls {
		c := r.Min
		if l.Axis == core.X {
			c.X = l.Coord
		} else {
			c.Y = l.Coord
		}
		add(c)
	}
	r.Min = r.Min.Minus(geom.Coord{X: pad, Y: pad})
	r.Max = r.Max.Plus(geom.Coord{X: pad, Y: pad})

	return r
}

// SVG writes the drawing to w.
func SVG(w io.Writer, points []core.Point, ls []lines.Line, opts Options) error {
	box := Bounds(points, ls, opts.Padding)
	svg := newWriter(w)

	// Flip to screen space: y' = −y.
	view := geom.Rect{
		Min: geom.Coord{X: box.Min.X, Y: -box.Max.Y},
		Max: geom.Coord{X: box.Max.X, Y: -box.Min.Y},
	}
	svg.start(view)
	for _, l := range ls {
		if l.Axis == core.X {
			svg.line(geom.Coord{X: l.Coord, Y: view.Min.Y}, geom.Coord{X: l.Coord, Y: view.Max.Y}, opts.XLineStyle)
		} else {
			svg.line(geom.Coord{X: view.Min.X, Y: -l.Coord}, geom.Coord{X: view.Max.X, Y: -l.Coord}, opts.YLineStyle)
		}
	}
	for _, p := range points {
		svg.circle(geom.Coord{X: float64(p.X), Y: -float64(p.Y)}, opts.PointRadius, opts.PointStyle)
	}
	svg.end()

	return svg.err
}

// writer serializes SVG elements and keeps the first write error.
type writer struct {
	w   io.Writer
	err error
}

func newWriter(w io.Writer) *writer {
	return &writer{w: w}
}

func (svg *writer) printf(format string, a ...any) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.w, format, a...)
}

func styleAttr(s string) string {
	if s == "" {
		return ""
	}

	return fmt.Sprintf("style='%s' ", strings.ReplaceAll(s, "'", "&apos;"))
}

func (svg *writer) start(viewBox geom.Rect) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg">
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height())
}

func (svg *writer) end() {
	svg.printf("</svg>\n")
}

func (svg *writer) line(p1, p2 geom.Coord, style string) {
	svg.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' %s/>\n", p1.X, p1.Y, p2.X, p2.Y, styleAttr(style))
}

func (svg *writer) circle(c geom.Coord, r float64, style string) {
	svg.printf("<circle cx='%f' cy='%f' r='%f' %s/>\n", c.X, c.Y, r, styleAttr(style))
}
