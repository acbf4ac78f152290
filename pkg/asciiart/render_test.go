package asciiart

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"
)

func countColor(img *image.RGBA, r image.Rectangle, c color.RGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}

	return n
}

func TestRenderSize(t *testing.T) {
	canvas := wrapGlyphs([]rune("@@@@@@"), 3)
	opts := DefaultRenderOptions()

	img := canvas.Render(opts)

	advance := basicfont.Face7x13.Advance
	assert.Equal(t, 3*advance+2*opts.Padding, img.Bounds().Dx(), "cols x advance plus padding")
	assert.Equal(t, 2*opts.LineHeight+2*opts.Padding, img.Bounds().Dy(), "rows x line height plus padding")
}

func TestRenderDrawsGlyphs(t *testing.T) {
	canvas := wrapGlyphs([]rune("@@@@@@"), 3)
	opts := DefaultRenderOptions()
	fg := opts.Foreground.(color.RGBA)

	img := canvas.Render(opts)

	assert.Equal(t, color.RGBA{A: 0xff}, img.RGBAAt(0, 0), "border is background")

	firstCell := image.Rect(opts.Padding, opts.Padding, opts.Padding+basicfont.Face7x13.Advance, opts.Padding+opts.LineHeight)
	assert.Positive(t, countColor(img, firstCell, fg), "the first glyph is drawn inside its cell")

	border := image.Rect(0, 0, img.Bounds().Dx(), opts.Padding)
	assert.Zero(t, countColor(img, border, fg), "nothing is drawn in the top padding")
}

func TestRenderBlankCanvas(t *testing.T) {
	canvas := wrapGlyphs([]rune("    "), 2)
	opts := DefaultRenderOptions()

	img := canvas.Render(opts)

	assert.Zero(t, countColor(img, img.Bounds(), opts.Foreground.(color.RGBA)))
}

func TestRenderZeroOptions(t *testing.T) {
	canvas := wrapGlyphs([]rune("ab"), 2)

	img := canvas.Render(RenderOptions{})

	// Face7x13 is 13px tall, and there is no padding.
	assert.Equal(t, image.Rect(0, 0, 14, 13), img.Bounds())
}
