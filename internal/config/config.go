package config

import (
	"os"
	"strconv"

	"github.com/nebbyJammin/imgascii/pkg/asciiart"
)

// Defaults for the command line tool.
const (
	DefaultWidth              = 100
	DefaultAspectCompensation = asciiart.DefaultAspectCompensation
	DefaultRamp               = asciiart.DefaultRampGlyphs
	DefaultResampler          = "bilinear"
	DefaultLuminance          = "rec601"

	// WidthEnv overrides DefaultWidth when set to a positive integer.
	WidthEnv = "ASCIIART_WIDTH"
)

// Options holds the runtime parameters bound to CLI flags.
type Options struct {
	Width     int    // --width
	Output    string // --output
	Ramp      string // --ramp
	Resampler string // --resampler
	Luminance string // --luma
	Invert    bool   // --invert
	Fit       bool   // --fit
	PNG       string // --png
	Verbose   bool   // --verbose
}

// WidthFromEnv returns the width set in WidthEnv, or DefaultWidth if it is unset or not a positive integer.
func WidthFromEnv() int {
	v, ok := os.LookupEnv(WidthEnv)
	if !ok {
		return DefaultWidth
	}

	width, err := strconv.Atoi(v)
	if err != nil || width <= 0 {
		return DefaultWidth
	}

	return width
}

// Converter builds an AsciiConverter from the ramp, resampler, luminance and invert options.
func (o Options) Converter() (*asciiart.AsciiConverter, error) {
	ramp, err := asciiart.NewRamp(o.Ramp)
	if err != nil {
		return nil, err
	}

	resampler, err := asciiart.ResamplerByName(o.Resampler)
	if err != nil {
		return nil, err
	}

	luminance, err := asciiart.LuminanceByName(o.Luminance)
	if err != nil {
		return nil, err
	}

	opts := []asciiart.AsciiOption{
		asciiart.WithAspectCompensation(DefaultAspectCompensation),
		asciiart.WithRamp(ramp),
		asciiart.WithResampler(resampler),
		asciiart.WithLuminance(luminance),
	}
	if o.Invert {
		opts = append(opts, asciiart.WithInvertedRamp())
	}

	return asciiart.New(opts...), nil
}
