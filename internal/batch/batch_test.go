package batch

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/nebbyJammin/imgascii/pkg/asciiart"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSolidPNG(t *testing.T, path string, c color.Color) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestIsImagePath(t *testing.T) {
	assert.True(t, IsImagePath("a/b/photo.JPG"))
	assert.True(t, IsImagePath("scan.tiff"))
	assert.True(t, IsImagePath("x.webp"))
	assert.False(t, IsImagePath("notes.txt"))
	assert.False(t, IsImagePath("Makefile"))
}

func TestConvertDir(t *testing.T) {
	dir := t.TempDir()
	writeSolidPNG(t, filepath.Join(dir, "a_black.png"), color.Black)
	writeSolidPNG(t, filepath.Join(dir, "nested", "b_white.png"), color.White)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("nope"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("skip me"), 0o644))

	var results []Result
	summary, err := ConvertDir(dir, asciiart.NewDefault(), 4, func(r Result) error {
		results = append(results, r)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, Summary{Converted: 2, Failed: 1}, summary)
	require.Len(t, results, 3)

	assert.Equal(t, "a_black.png", filepath.Base(results[0].Path))
	require.NoError(t, results[0].Err)
	assert.Equal(t, "@@@@\n@@@@", results[0].Canvas.String())

	assert.Equal(t, "broken.png", filepath.Base(results[1].Path))
	var decodeErr *asciiart.DecodeError
	assert.ErrorAs(t, results[1].Err, &decodeErr)

	assert.Equal(t, "b_white.png", filepath.Base(results[2].Path))
	assert.Equal(t, "    \n    ", results[2].Canvas.String())
}

func TestConvertDirHandlerStops(t *testing.T) {
	dir := t.TempDir()
	writeSolidPNG(t, filepath.Join(dir, "1.png"), color.Black)
	writeSolidPNG(t, filepath.Join(dir, "2.png"), color.Black)

	stop := errors.New("stop")
	calls := 0
	_, err := ConvertDir(dir, asciiart.NewDefault(), 4, func(Result) error {
		calls++
		return stop
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestConvertDirMissing(t *testing.T) {
	_, err := ConvertDir(filepath.Join(t.TempDir(), "gone"), asciiart.NewDefault(), 4, func(Result) error {
		return nil
	})
	assert.Error(t, err)
}
