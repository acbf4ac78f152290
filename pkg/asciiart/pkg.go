// The asciiart package implements the logic for generating ascii art from some image.
// The pipeline has four stages, each exposed on AsciiConverter:
//
//	decode -> Grayscale() -> Resize() -> MapGlyphs()
//
// By default, the package supports .png, .jpg, .jpeg, .gif, .bmp, .tiff and .webp.
// See ConvertFile(), ConvertBytes() and ConvertReader(). To support other image formats,
// either decode the image yourself and use Convert(), or import your custom decoder:
/*
import (
	... <other imports>

	_ "mycustomdecoder/mycustomformat" // Here is your custom file format

	...
)
*/
// Start by calling New() or NewDefault(). Pass the options into the constructors (see options.go).
package asciiart
