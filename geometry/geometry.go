// Package geometry provides the plain value types used to place and size
// video frames: positions, rectangles and frame dimensions.
//
// All coordinates are single precision. No invariant is enforced on sign or
// ordering, so degenerate rectangles are valid values.
package geometry

import "fmt"

// Coordinate is the scalar type of every geometric field.
type Coordinate = float32

// Position is a point in frame space.
type Position struct {
	X Coordinate `json:"x" yaml:"x"`
	Y Coordinate `json:"y" yaml:"y"`
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Rect is an edge-described rectangle.
type Rect struct {
	Top    Coordinate `json:"top" yaml:"top"`
	Left   Coordinate `json:"left" yaml:"left"`
	Right  Coordinate `json:"right" yaml:"right"`
	Bottom Coordinate `json:"bottom" yaml:"bottom"`
}

// Width returns Right - Left. It may be negative for degenerate rects.
func (r Rect) Width() Coordinate {
	return r.Right - r.Left
}

// Height returns Bottom - Top. It may be negative for degenerate rects.
func (r Rect) Height() Coordinate {
	return r.Bottom - r.Top
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("[t=%g l=%g r=%g b=%g]", r.Top, r.Left, r.Right, r.Bottom)
}

// Frame holds the dimensions of a frame or viewport.
type Frame struct {
	Width  Coordinate `json:"width" yaml:"width"`
	Height Coordinate `json:"height" yaml:"height"`
}

// ScaleWidth returns the factor that maps this frame's width onto width.
//
// A zero-width frame yields +Inf or NaN under IEEE-754 rules.
func (f Frame) ScaleWidth(width Coordinate) Coordinate {
	return width / f.Width
}

// ScaleHeight returns the factor that maps this frame's height onto height.
//
// A zero-height frame yields +Inf or NaN under IEEE-754 rules.
func (f Frame) ScaleHeight(height Coordinate) Coordinate {
	return height / f.Height
}

// String implements fmt.Stringer.
func (f Frame) String() string {
	return fmt.Sprintf("%gx%g", f.Width, f.Height)
}
