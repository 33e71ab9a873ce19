package svgpath

import "strings"

// Path is an ordered sequence of segments forming a complete path
// description. Segments are emitted in insertion order; duplicates are
// allowed and an empty path encodes to an empty string.
type Path []Segment

// String joins the token of every segment with a single space. The
// result is the exact text expected by an SVG path "d" attribute.
func (p Path) String() string {
	tokens := make([]string, len(p))
	for i, s := range p {
		tokens[i] = s.String()
	}
	return strings.Join(tokens, " ")
}
