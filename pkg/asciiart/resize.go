package asciiart

import (
	"image"
	"math"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// DefaultAspectCompensation shrinks the output height to offset character cells being taller than they are wide.
const DefaultAspectCompensation = 0.55

// Resampler scales a grayscale image to exactly width x height. Implementations must return a new image and leave src untouched.
type Resampler interface {
	Resample(src *image.Gray, width, height int) *image.Gray
}

// interpolatorResampler adapts a golang.org/x/image/draw interpolator.
type interpolatorResampler struct {
	interp draw.Interpolator
}

func (r interpolatorResampler) Resample(src *image.Gray, width, height int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, width, height))
	r.interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst
}

// lanczosResampler resamples with a Lanczos3 kernel through github.com/nfnt/resize.
type lanczosResampler struct{}

func (lanczosResampler) Resample(src *image.Gray, width, height int) *image.Gray {
	scaled := resize.Resize(uint(width), uint(height), src, resize.Lanczos3)

	// resize.Resize hands back src itself when no scaling is needed, so always copy.
	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), scaled, scaled.Bounds().Min, draw.Src)

	return dst
}

var (
	// BilinearResampler is the default resampler.
	BilinearResampler Resampler = interpolatorResampler{interp: draw.BiLinear}
	// NearestResampler copies the closest source pixel. Fast, but blocky on photos.
	NearestResampler Resampler = interpolatorResampler{interp: draw.NearestNeighbor}
	// CatmullRomResampler is slower but sharper than BilinearResampler.
	CatmullRomResampler Resampler = interpolatorResampler{interp: draw.CatmullRom}
	// LanczosResampler uses a Lanczos3 kernel. Sharpest and slowest of the four.
	LanczosResampler Resampler = lanczosResampler{}
)

// ResamplerNames lists the names accepted by ResamplerByName.
func ResamplerNames() []string {
	return []string{"bilinear", "nearest", "catmullrom", "lanczos"}
}

// ResamplerByName returns the resampler registered under name. An empty name selects bilinear.
func ResamplerByName(name string) (Resampler, error) {
	switch name {
	case "", "bilinear":
		return BilinearResampler, nil
	case "nearest":
		return NearestResampler, nil
	case "catmullrom", "catmull-rom":
		return CatmullRomResampler, nil
	case "lanczos", "lanczos3":
		return LanczosResampler, nil
	default:
		return nil, errors.Wrapf(ErrUnknownResampler, "%q", name)
	}
}

/*
TargetSize computes the output dimensions for a source of srcWidth x srcHeight pixels rendered at width characters:

	height = max(1, floor(width * (srcHeight / srcWidth) * compensation))

The width is returned unchanged. Returns ErrInvalidWidth if width <= 0, and an error if the source has no pixels.
*/
func TargetSize(srcWidth, srcHeight, width int, compensation float64) (int, int, error) {
	if width <= 0 {
		return 0, 0, errors.Wrapf(ErrInvalidWidth, "got %d", width)
	}
	if srcWidth <= 0 || srcHeight <= 0 {
		return 0, 0, errors.Errorf("source image has no pixels (%dx%d)", srcWidth, srcHeight)
	}

	aspectRatio := float64(srcHeight) / float64(srcWidth)
	height := int(math.Floor(float64(width) * aspectRatio * compensation))

	return width, max(1, height), nil
}

/*
Resize computes the target size for gray (see TargetSize) using the converter's AspectCompensation, then resamples gray to exactly that size with the converter's Resampler.
*/
func (a *AsciiConverter) Resize(gray *image.Gray, width int) (*image.Gray, error) {
	bounds := gray.Bounds()
	newWidth, newHeight, err := TargetSize(bounds.Dx(), bounds.Dy(), width, a.AspectCompensation)
	if err != nil {
		return nil, err
	}

	return a.resampler().Resample(gray, newWidth, newHeight), nil
}

// resampler returns the configured Resampler, or BilinearResampler when none is set.
func (a *AsciiConverter) resampler() Resampler {
	if a.Resampler == nil {
		return BilinearResampler
	}

	return a.Resampler
}
