// Package batch converts every image found under a directory, one at a time.
package batch

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/nebbyJammin/imgascii/pkg/asciiart"
	"github.com/pkg/errors"
)

// Result is the outcome of converting one file.
type Result struct {
	Path    string
	Canvas  asciiart.Canvas
	Elapsed time.Duration
	// Err is set when the file could not be converted. Canvas is empty in that case.
	Err error
}

// Summary counts what ConvertDir processed.
type Summary struct {
	Converted int
	Failed    int
}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// IsImagePath reports whether path has an extension of a format the converter can decode.
func IsImagePath(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

/*
ConvertDir walks dir in lexical order and converts every regular file with an image extension at width characters. handle is called once per file, including files that failed to convert.

A failed conversion is reported through Result.Err and does not stop the walk. An error returned by handle, or a failure to walk dir, stops the walk and is returned.
*/
func ConvertDir(dir string, conv *asciiart.AsciiConverter, width int, handle func(Result) error) (Summary, error) {
	var summary Summary

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !d.Type().IsRegular() || !IsImagePath(path) {
			return nil
		}

		start := time.Now()
		canvas, convErr := conv.ConvertFile(path, width)
		res := Result{
			Path:    path,
			Canvas:  canvas,
			Elapsed: time.Since(start),
			Err:     convErr,
		}

		if convErr != nil {
			summary.Failed++
		} else {
			summary.Converted++
		}

		return handle(res)
	})
	if err != nil {
		return summary, errors.Wrapf(err, "walk %s", dir)
	}

	return summary, nil
}
