package asciiart

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

/*
Decode reads an image from r. Image formats supported are png, jpeg, gif, bmp, tiff and webp. Multi-frame formats yield their first frame.

Any failure is returned as a *DecodeError. The format name reported by the image package is returned alongside the image.
*/
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", &DecodeError{Err: err}
	}

	return img, format, nil
}

/*
DecodeFile checks that path exists, then opens and decodes it. The file is closed before DecodeFile returns.

Returns an error wrapping ErrPathNotFound if nothing exists at path, and a *DecodeError if the file cannot be read or is not a recognised image.
*/
func DecodeFile(path string) (image.Image, string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, "", errors.Wrap(ErrPathNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", &DecodeError{Path: path, Err: err}
	}

	bounds := img.Bounds()
	slog.Debug("decoded image",
		slog.String("path", path),
		slog.String("format", format),
		slog.Int("width", bounds.Dx()),
		slog.Int("height", bounds.Dy()),
	)

	return img, format, nil
}

// DecodeBytes decodes an in-memory image. See Decode.
func DecodeBytes(b []byte) (image.Image, string, error) {
	return Decode(bytes.NewReader(b))
}
