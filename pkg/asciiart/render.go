package asciiart

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RenderOptions configures Canvas.Render.
type RenderOptions struct {
	// Face draws the glyphs. It should be monospaced for the columns to line up.
	Face font.Face
	// Padding is the empty border around the text, in pixels.
	Padding int
	// LineHeight is the distance between baselines, in pixels. Zero uses the face's own line height.
	LineHeight int
	Background color.Color
	Foreground color.Color
}

/*
DefaultRenderOptions draws with basicfont.Face7x13 (7px advance) in pale green on black, with a 20px border and 16px between lines.
*/
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Face:       basicfont.Face7x13,
		Padding:    20,
		LineHeight: 16,
		Background: color.Black,
		Foreground: color.RGBA{R: 0xc8, G: 0xff, B: 0xcf, A: 0xff},
	}
}

/*
Render draws the canvas as text onto a new image. The image is as wide as the widest row measured in opts.Face plus the padding on both sides, and as tall as Height() lines plus the padding on both sides.

Zero-valued fields of opts fall back to DefaultRenderOptions().
*/
func (c Canvas) Render(opts RenderOptions) *image.RGBA {
	def := DefaultRenderOptions()
	if opts.Face == nil {
		opts.Face = def.Face
	}
	if opts.Background == nil {
		opts.Background = def.Background
	}
	if opts.Foreground == nil {
		opts.Foreground = def.Foreground
	}

	metrics := opts.Face.Metrics()
	lineHeight := opts.LineHeight
	if lineHeight <= 0 {
		lineHeight = metrics.Height.Ceil()
	}

	textWidth := 0
	for _, row := range c.rows {
		textWidth = max(textWidth, font.MeasureString(opts.Face, row).Ceil())
	}

	width := textWidth + 2*opts.Padding
	height := len(c.rows)*lineHeight + 2*opts.Padding

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(opts.Foreground),
		Face: opts.Face,
	}

	// Rows are laid out top-down, so each baseline sits one ascent below its line top.
	for i, row := range c.rows {
		top := opts.Padding + i*lineHeight
		drawer.Dot = fixed.Point26_6{X: fixed.I(opts.Padding), Y: fixed.I(top) + metrics.Ascent}
		drawer.DrawString(row)
	}

	return dst
}
