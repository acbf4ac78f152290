package asciiart

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrPathNotFound is returned by ConvertFile and DecodeFile when the input path does not exist.
	ErrPathNotFound = errors.New("image not found")
	// ErrInvalidWidth is returned when the target width is not a positive integer.
	ErrInvalidWidth = errors.New("width must be a positive integer")
	// ErrEmptyRamp is returned when a ramp with no glyphs is supplied.
	ErrEmptyRamp = errors.New("ramp must contain at least one glyph")
	// ErrUnknownResampler is returned by ResamplerByName for names it does not recognise.
	ErrUnknownResampler = errors.New("unknown resampler")
	// ErrUnknownLuminance is returned by LuminanceByName for names it does not recognise.
	ErrUnknownLuminance = errors.New("unknown luminance weighting")
)

/*
DecodeError is returned when a file exists but could not be read or interpreted as a supported image format. Err holds the underlying failure from the image package (or the filesystem).
*/
type DecodeError struct {
	// Path is the file that failed to decode. Empty when decoding from a reader.
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode image: %v", e.Err)
	}

	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Cause lets github.com/pkg/errors.Cause walk through a DecodeError.
func (e *DecodeError) Cause() error {
	return e.Err
}
