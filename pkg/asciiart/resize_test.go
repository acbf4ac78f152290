package asciiart

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformGray(width, height int, y uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = y
	}

	return img
}

func TestTargetSize(t *testing.T) {
	cases := []struct {
		name                  string
		srcW, srcH, width     int
		wantWidth, wantHeight int
	}{
		{"square 2x2", 2, 2, 2, 2, 1},
		{"square at 80", 100, 100, 80, 80, 44},
		{"portrait", 100, 200, 100, 100, 110},
		{"landscape", 640, 480, 100, 100, 41},
		{"extreme landscape clamps to 1", 1000, 1, 10, 10, 1},
		{"single column", 1, 1, 1, 1, 1},
		{"upscale", 4, 4, 200, 200, 110},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, h, err := TargetSize(tc.srcW, tc.srcH, tc.width, DefaultAspectCompensation)
			require.NoError(t, err)
			assert.Equal(t, tc.wantWidth, w)
			assert.Equal(t, tc.wantHeight, h)
		})
	}
}

func TestTargetSizeInvalid(t *testing.T) {
	_, _, err := TargetSize(10, 10, 0, DefaultAspectCompensation)
	assert.ErrorIs(t, err, ErrInvalidWidth)

	_, _, err = TargetSize(10, 10, -3, DefaultAspectCompensation)
	assert.ErrorIs(t, err, ErrInvalidWidth)

	_, _, err = TargetSize(0, 10, 5, DefaultAspectCompensation)
	assert.Error(t, err)
}

func TestResamplersProduceExactSize(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 37, 23))
	for y := 0; y < 23; y++ {
		for x := 0; x < 37; x++ {
			src.SetGray(x, y, color.Gray{Y: uint8((x * 7) ^ (y * 11))})
		}
	}
	before := append([]uint8(nil), src.Pix...)

	for _, name := range ResamplerNames() {
		t.Run(name, func(t *testing.T) {
			r, err := ResamplerByName(name)
			require.NoError(t, err)

			for _, size := range [][2]int{{13, 4}, {37, 23}, {80, 30}, {1, 1}} {
				out := r.Resample(src, size[0], size[1])
				assert.Equal(t, image.Rect(0, 0, size[0], size[1]), out.Bounds(), "%s %v", name, size)
				assert.NotSame(t, src, out, "resampler must return a new image")
			}

			assert.Equal(t, before, src.Pix, "source must not be modified")
		})
	}
}

func TestResamplerKeepsUniformImages(t *testing.T) {
	for _, r := range []Resampler{BilinearResampler, NearestResampler} {
		for _, y := range []uint8{0, 255} {
			out := r.Resample(uniformGray(9, 9, y), 4, 2)
			for _, p := range out.Pix {
				assert.Equal(t, y, p)
			}
		}
	}
}

func TestResamplerByNameUnknown(t *testing.T) {
	_, err := ResamplerByName("bicubic-ish")
	assert.ErrorIs(t, err, ErrUnknownResampler)

	r, err := ResamplerByName("")
	require.NoError(t, err)
	assert.Equal(t, BilinearResampler, r)
}

func TestConverterResize(t *testing.T) {
	a := NewDefault()

	out, err := a.Resize(uniformGray(200, 100, 128), 50)
	require.NoError(t, err)
	assert.Equal(t, 50, out.Bounds().Dx())
	assert.Equal(t, 13, out.Bounds().Dy()) // floor(50 * 0.5 * 0.55)

	_, err = a.Resize(uniformGray(4, 4, 0), 0)
	assert.ErrorIs(t, err, ErrInvalidWidth)
}
