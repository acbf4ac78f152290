package asciiart

// DefaultRampGlyphs is the character ramp used when no other ramp is configured. Densest glyph first.
const DefaultRampGlyphs = "@%#*+=-:. "

/*
Ramp is an ordered sequence of glyphs used as a visual density gradient. Index 0 represents maximum darkness (the densest glyph), and the last index represents minimum darkness (usually whitespace).

A Ramp is never mutated after construction. Use NewRamp() or DefaultRamp() to obtain one.
*/
type Ramp struct {
	glyphs []rune
}

// NewRamp builds a Ramp from a string of glyphs, densest first. Returns ErrEmptyRamp if glyphs is empty.
func NewRamp(glyphs string) (Ramp, error) {
	runes := []rune(glyphs)
	if len(runes) == 0 {
		return Ramp{}, ErrEmptyRamp
	}

	return Ramp{glyphs: runes}, nil
}

// DefaultRamp returns the Ramp built from DefaultRampGlyphs.
func DefaultRamp() Ramp {
	return Ramp{glyphs: []rune(DefaultRampGlyphs)}
}

// Len returns the number of glyphs k in the ramp.
func (r Ramp) Len() int {
	return len(r.glyphs)
}

// IsZero reports whether the ramp has no glyphs (the zero value).
func (r Ramp) IsZero() bool {
	return len(r.glyphs) == 0
}

/*
Index returns the ramp position for a luminance value:

	floor(lum * (k - 1) / 255)

The result is always within [0, k-1] and is monotonic non-decreasing in lum.
*/
func (r Ramp) Index(lum uint8) int {
	return int(lum) * (len(r.glyphs) - 1) / 255
}

// Glyph returns the glyph at Index(lum).
func (r Ramp) Glyph(lum uint8) rune {
	return r.glyphs[r.Index(lum)]
}

// Reversed returns a new ramp with the glyph order flipped. Useful for light text on a dark background.
func (r Ramp) Reversed() Ramp {
	n := len(r.glyphs)
	rev := make([]rune, n)
	for i, g := range r.glyphs {
		rev[n-1-i] = g
	}

	return Ramp{glyphs: rev}
}

func (r Ramp) String() string {
	return string(r.glyphs)
}
