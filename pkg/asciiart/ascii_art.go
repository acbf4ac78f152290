package asciiart

import (
	"bytes"
	"image"
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

/*
AsciiConverter holds the configuration of the decode -> grayscale -> resize -> map pipeline. Each stage is exposed as a method (Grayscale, Resize, MapGlyphs) and produces a new image rather than mutating its input.

Treat an AsciiConverter as read-only once it has been built by New() or NewDefault().
*/
type AsciiConverter struct {
	// AspectCompensation scales the output height to offset the character cell aspect ratio. See TargetSize().
	AspectCompensation float64
	// Ramp is the glyph ramp luminance is mapped onto, densest glyph first.
	Ramp Ramp
	// Luminance converts a pixel to a luminance value (0-255).
	Luminance LuminanceFunc
	// Resampler scales the grayscale image to the target size.
	Resampler Resampler
}

// AsciiOption configures an AsciiConverter. See options.go.
type AsciiOption func(*AsciiConverter)

/*
NewDefault initializes an AsciiConverter with default parameters.

  - AspectCompensation: 0.55
  - Ramp: "@%#*+=-:. "
  - Luminance: Rec601Luminance
  - Resampler: BilinearResampler
*/
func NewDefault() *AsciiConverter {
	return &AsciiConverter{
		AspectCompensation: DefaultAspectCompensation,
		Ramp:               DefaultRamp(),
		Luminance:          Rec601Luminance,
		Resampler:          BilinearResampler,
	}
}

// New initializes an AsciiConverter with default parameters, then applies opts.
func New(opts ...AsciiOption) *AsciiConverter {
	a := NewDefault()

	for _, o := range opts {
		o(a)
	}

	return a
}

/*
ConvertFile renders the image at path to a Canvas of width characters per row.

The width is validated before the filesystem is touched. A missing path yields an error wrapping ErrPathNotFound; an unreadable or unrecognised file yields a *DecodeError.
*/
func (a *AsciiConverter) ConvertFile(path string, width int) (Canvas, error) {
	if width <= 0 {
		return Canvas{}, errors.Wrapf(ErrInvalidWidth, "got %d", width)
	}

	img, _, err := DecodeFile(path)
	if err != nil {
		return Canvas{}, err
	}

	return a.Convert(img, width)
}

// ConvertReader decodes an image from r and renders it. See Decode() for supported formats.
func (a *AsciiConverter) ConvertReader(r io.Reader, width int) (Canvas, error) {
	if width <= 0 {
		return Canvas{}, errors.Wrapf(ErrInvalidWidth, "got %d", width)
	}

	img, _, err := Decode(r)
	if err != nil {
		return Canvas{}, err
	}

	return a.Convert(img, width)
}

// ConvertBytes decodes an in-memory image and renders it. See ConvertReader().
func (a *AsciiConverter) ConvertBytes(b []byte, width int) (Canvas, error) {
	return a.ConvertReader(bytes.NewReader(b), width)
}

/*
Convert runs an already decoded image through the grayscale, resize and glyph mapping stages. A nil Luminance or Resampler falls back to the NewDefault() choice; an empty Ramp is an error. The output is deterministic: the same image and width always produce the same canvas.
*/
func (a *AsciiConverter) Convert(img image.Image, width int) (Canvas, error) {
	if a.Ramp.IsZero() {
		return Canvas{}, ErrEmptyRamp
	}

	gray := a.Grayscale(img)

	resized, err := a.Resize(gray, width)
	if err != nil {
		return Canvas{}, err
	}

	bounds := resized.Bounds()
	slog.Debug("resized image",
		slog.Int("width", bounds.Dx()),
		slog.Int("height", bounds.Dy()),
		slog.Int("ramp_len", a.Ramp.Len()),
	)

	return a.MapGlyphs(resized), nil
}
