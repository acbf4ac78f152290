package asciiart

import (
	"image"
	"image/color"
	"math"

	"github.com/pkg/errors"
)

// LuminanceFunc maps a pixel's color channels to a single luminance value in [0, 255].
type LuminanceFunc func(c color.Color) uint8

/*
Rec601Luminance weights the channels with the ITU-R 601-2 luma transform:

	L = R * 299/1000 + G * 587/1000 + B * 114/1000

The alpha channel is ignored, so a transparent pixel contributes its un-premultiplied color.
*/
func Rec601Luminance(c color.Color) uint8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	// Fixed point weights scaled by 1<<16, rounded.
	return uint8((uint32(n.R)*19595 + uint32(n.G)*38470 + uint32(n.B)*7471 + 1<<15) >> 16)
}

/*
Rec709Luminance weights the channels with the ITU-R BT.709 coefficients and composites the result over white using the alpha channel:

	L = (0.2126R + 0.7152G + 0.0722B) * a + 255 * (1 - a)

A fully transparent pixel is therefore treated as white (the lightest glyph).
*/
func Rec709Luminance(c color.Color) uint8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	alpha := float64(n.A) / 255
	lum := 0.2126*float64(n.R) + 0.7152*float64(n.G) + 0.0722*float64(n.B)
	lum = lum*alpha + 255*(1-alpha)

	return uint8(math.Min(255, math.Max(0, math.Round(lum))))
}

// LuminanceByName returns the weighting registered under name: "rec601" (default) or "rec709".
func LuminanceByName(name string) (LuminanceFunc, error) {
	switch name {
	case "", "rec601", "601":
		return Rec601Luminance, nil
	case "rec709", "709":
		return Rec709Luminance, nil
	default:
		return nil, errors.Wrapf(ErrUnknownLuminance, "%q", name)
	}
}

/*
Grayscale converts img into a single-channel image of identical width and height, using the converter's LuminanceFunc for every pixel. The result always has its origin at (0, 0). img is not modified.
*/
func (a *AsciiConverter) Grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	gray := image.NewGray(image.Rect(0, 0, width, height))
	luminance := a.luminance()

	for y := 0; y < height; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+width]
		for x := 0; x < width; x++ {
			row[x] = luminance(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	return gray
}

// luminance returns the configured LuminanceFunc, or Rec601Luminance when none is set.
func (a *AsciiConverter) luminance() LuminanceFunc {
	if a.Luminance == nil {
		return Rec601Luminance
	}

	return a.Luminance
}
