package asciiart

/*
WithAspectCompensation sets the factor applied to the output height. Terminal characters are usually about twice as tall as they are wide, so the default of 0.55 roughly halves the height.
*/
func WithAspectCompensation(factor float64) AsciiOption {
	return func(a *AsciiConverter) {
		a.AspectCompensation = factor
	}
}

// WithRamp sets the glyph ramp. Build it with NewRamp() so emptiness is checked up front.
func WithRamp(r Ramp) AsciiOption {
	return func(a *AsciiConverter) {
		a.Ramp = r
	}
}

/*
WithInvertedRamp reverses whichever ramp is configured at the time the option is applied, so pass it after WithRamp(). Use it when rendering light text on a dark background.
*/
func WithInvertedRamp() AsciiOption {
	return func(a *AsciiConverter) {
		a.Ramp = a.Ramp.Reversed()
	}
}

// WithLuminance sets the pixel to luminance weighting. See Rec601Luminance and Rec709Luminance.
func WithLuminance(fn LuminanceFunc) AsciiOption {
	return func(a *AsciiConverter) {
		a.Luminance = fn
	}
}

// WithResampler sets the algorithm used to scale the grayscale image to the target size.
func WithResampler(r Resampler) AsciiOption {
	return func(a *AsciiConverter) {
		a.Resampler = r
	}
}
