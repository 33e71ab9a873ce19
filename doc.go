// Package svgpath encodes drawing commands into the textual
// mini-language of the SVG path "d" attribute.
//
// A Path is an ordered sequence of segment values; rendering it with
// String produces the attribute text:
//
//	d := svgpath.Path{
//		svgpath.MoveTo{P: svgpath.Point{X: 10, Y: 10}},
//		svgpath.LineTo{P: svgpath.Point{X: 0, Y: 100}},
//		svgpath.ClosePath{},
//	}
//	fmt.Println(d) // M10 10 L0 100 Z
//
// The package performs no geometry: coordinates are formatted, never
// interpreted, and the relative form of a command differs from the
// absolute one only in the case of its letter. Encoding never fails;
// every constructible segment has exactly one token.
package svgpath
