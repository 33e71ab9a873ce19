package svgpath

import (
	"strconv"
	"strings"
)

// Point is an X,Y coordinate. Values are emitted as-is; non-finite
// coordinates render as NaN or +Inf/-Inf text.
type Point struct {
	X, Y float64
}

// String renders the point as two space-separated numbers.
func (p Point) String() string {
	return number(p.X) + " " + number(p.Y)
}

// Segment is a single command of a path description. The segment types
// in this package form the complete command set of the SVG path
// grammar; each renders itself as one token through its String method,
// with the command letter lowercased when Rel is set.
type Segment interface {
	// String returns the path data token for the command.
	String() string

	segment()
}

// MoveTo starts a new subpath at P.
type MoveTo struct {
	P   Point
	Rel bool
}

func (s MoveTo) String() string {
	return letter("M", s.Rel) + s.P.String()
}

// LineTo draws a straight line to P.
type LineTo struct {
	P   Point
	Rel bool
}

func (s LineTo) String() string {
	return letter("L", s.Rel) + s.P.String()
}

// HLineTo draws a horizontal line to the x-coordinate X.
type HLineTo struct {
	X   float64
	Rel bool
}

func (s HLineTo) String() string {
	return letter("H", s.Rel) + number(s.X)
}

// VLineTo draws a vertical line to the y-coordinate Y.
type VLineTo struct {
	Y   float64
	Rel bool
}

func (s VLineTo) String() string {
	return letter("V", s.Rel) + number(s.Y)
}

// ClosePath closes the current subpath.
type ClosePath struct {
	Rel bool
}

func (s ClosePath) String() string {
	return letter("Z", s.Rel)
}

// CurveTo draws a cubic Bezier curve through the control points C1 and
// C2 to the endpoint P.
type CurveTo struct {
	C1, C2, P Point
	Rel       bool
}

func (s CurveTo) String() string {
	return letter("C", s.Rel) + s.C1.String() + ", " + s.C2.String() + ", " + s.P.String()
}

// SmoothCurveTo draws a cubic Bezier curve through the control point C2
// to the endpoint P; the first control point is the reflection of the
// previous one.
type SmoothCurveTo struct {
	C2, P Point
	Rel   bool
}

func (s SmoothCurveTo) String() string {
	return letter("S", s.Rel) + s.C2.String() + ", " + s.P.String()
}

// QuadCurveTo draws a quadratic Bezier curve through the control point
// C to the endpoint P.
type QuadCurveTo struct {
	C, P Point
	Rel  bool
}

func (s QuadCurveTo) String() string {
	return letter("Q", s.Rel) + s.C.String() + ", " + s.P.String()
}

// SmoothQuadCurveTo draws a quadratic Bezier curve to the endpoint P;
// the control point is the reflection of the previous one.
type SmoothQuadCurveTo struct {
	P   Point
	Rel bool
}

func (s SmoothQuadCurveTo) String() string {
	return letter("T", s.Rel) + s.P.String()
}

// ArcTo draws an elliptical arc to the endpoint P. Radii holds the x
// and y radii of the ellipse and Rotation its x-axis rotation in
// degrees; the two flags pick one of the four candidate arcs.
type ArcTo struct {
	Radii    Point
	Rotation float64
	LargeArc bool
	Sweep    bool
	P        Point
	Rel      bool
}

func (s ArcTo) String() string {
	return letter("A", s.Rel) + s.Radii.String() + " " + number(s.Rotation) +
		" " + flag(s.LargeArc) + " " + flag(s.Sweep) + " " + s.P.String()
}

func (MoveTo) segment()            {}
func (LineTo) segment()            {}
func (HLineTo) segment()           {}
func (VLineTo) segment()           {}
func (ClosePath) segment()         {}
func (CurveTo) segment()           {}
func (SmoothCurveTo) segment()     {}
func (QuadCurveTo) segment()       {}
func (SmoothQuadCurveTo) segment() {}
func (ArcTo) segment()             {}

// letter selects the lowercase command letter for the relative form.
func letter(abs string, rel bool) string {
	if rel {
		return strings.ToLower(abs)
	}
	return abs
}

// number renders a coordinate in the shortest decimal form that
// round-trips. Never exponent notation and never locale-dependent,
// either of which would corrupt the grammar.
func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// flag renders an arc flag as the 1 or 0 the grammar requires.
func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
