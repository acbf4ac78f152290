package asciiart

import (
	"image"
	"io"
	"strings"
)

/*
Canvas is the textual rendering of an image: Height() lines of exactly Width() glyphs each. String() joins the lines with a single newline and never adds a trailing one.

A Canvas is immutable once produced by MapGlyphs.
*/
type Canvas struct {
	width int
	rows  []string
}

// Width returns the number of glyphs per row.
func (c Canvas) Width() int {
	return c.width
}

// Height returns the number of rows.
func (c Canvas) Height() int {
	return len(c.rows)
}

// Rows returns a copy of the canvas rows.
func (c Canvas) Rows() []string {
	rows := make([]string, len(c.rows))
	copy(rows, c.rows)

	return rows
}

func (c Canvas) String() string {
	return strings.Join(c.rows, "\n")
}

// WriteTo writes String() to w.
func (c Canvas) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())
	return int64(n), err
}

/*
MapGlyphs maps every luminance value of gray to a glyph from the converter's Ramp, producing one flat sequence of width x height glyphs in row-major order. The sequence is then split into chunks of the image's own width, so row boundaries of the canvas always line up with rows of gray.
*/
func (a *AsciiConverter) MapGlyphs(gray *image.Gray) Canvas {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	glyphs := make([]rune, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			glyphs = append(glyphs, a.Ramp.Glyph(gray.GrayAt(x, y).Y))
		}
	}

	return wrapGlyphs(glyphs, width)
}

// wrapGlyphs partitions glyphs into consecutive rows of width glyphs.
func wrapGlyphs(glyphs []rune, width int) Canvas {
	if width <= 0 {
		return Canvas{}
	}

	rows := make([]string, 0, len(glyphs)/width)
	for start := 0; start < len(glyphs); start += width {
		rows = append(rows, string(glyphs[start:min(start+width, len(glyphs))]))
	}

	return Canvas{width: width, rows: rows}
}
