package main

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nebbyJammin/imgascii/internal/config"
	"github.com/nebbyJammin/imgascii/internal/termsize"
	"github.com/nebbyJammin/imgascii/pkg/asciiart"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	widthUsage   = "Target width in characters. Defaults to $" + config.WidthEnv + " when set."
	outputUsage  = "Write the result to this file instead of printing it."
	rampUsage    = "Glyph ramp ordered from densest to lightest."
	invertUsage  = "Reverse the ramp, for light text on a dark background."
	lumaUsage    = `Luminance weighting: "rec601" or "rec709" (alpha over white).`
	fitUsage     = "Cap the width to the terminal's column count when printing to a terminal."
	pngUsage     = "Also render the result as monospace text on a dark background and save it as a PNG."
	verboseUsage = "Log pipeline details to stderr."
)

var resamplerUsage = "Resampling algorithm: " + strings.Join(asciiart.ResamplerNames(), ", ") + "."

// newRootCmd builds the command tree. Each call returns fresh flag state, so tests can build their own.
func newRootCmd() *cobra.Command {
	opts := &config.Options{}

	rootCmd := &cobra.Command{
		Use:           "asciiart IMAGE",
		Short:         "Render an image as ascii art",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args[0])
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&opts.Width, "width", "w", config.WidthFromEnv(), widthUsage)
	flags.StringVar(&opts.Ramp, "ramp", config.DefaultRamp, rampUsage)
	flags.StringVar(&opts.Resampler, "resampler", config.DefaultResampler, resamplerUsage)
	flags.StringVar(&opts.Luminance, "luma", config.DefaultLuminance, lumaUsage)
	flags.BoolVar(&opts.Invert, "invert", false, invertUsage)
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, verboseUsage)

	rootCmd.Flags().StringVarP(&opts.Output, "output", "o", "", outputUsage)
	rootCmd.Flags().BoolVar(&opts.Fit, "fit", false, fitUsage)
	rootCmd.Flags().StringVar(&opts.PNG, "png", "", pngUsage)

	rootCmd.AddCommand(newBatchCmd(opts))

	return rootCmd
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func runConvert(cmd *cobra.Command, opts *config.Options, path string) error {
	conv, err := opts.Converter()
	if err != nil {
		return err
	}

	width := opts.Width
	if opts.Fit && opts.Output == "" {
		width = fitWidth(width, cmd.OutOrStdout())
	}

	canvas, err := conv.ConvertFile(path, width)
	if err != nil {
		return err
	}

	if opts.PNG != "" {
		if err := writeCanvasPNG(opts.PNG, canvas); err != nil {
			return err
		}
	}

	if opts.Output != "" {
		if err := writeCanvas(opts.Output, canvas); err != nil {
			return err
		}

		slog.Info("wrote ascii art",
			slog.String("output", opts.Output),
			slog.Int("width", canvas.Width()),
			slog.Int("height", canvas.Height()),
		)

		return nil
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), canvas.String())
	return err
}

// terminalColumns reports the column count of the terminal on fd. Tests swap it out.
var terminalColumns = termsize.Columns

// fitWidth caps width to the columns of the terminal behind w. Writers without a descriptor, or not attached to a terminal, leave width as is.
func fitWidth(width int, w io.Writer) int {
	fd, ok := termsize.FD(w)
	if !ok {
		return width
	}

	cols, ok := terminalColumns(fd)
	if !ok {
		return width
	}

	return min(width, cols)
}

// writeCanvasPNG renders canvas with the default font and colors and saves it to path.
func writeCanvasPNG(path string, canvas asciiart.Canvas) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas.Render(asciiart.DefaultRenderOptions())); err != nil {
		return errors.Wrap(err, "encode png")
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	slog.Info("wrote png", slog.String("output", path))

	return nil
}

// writeCanvas writes exactly the canvas text to path, with no trailing newline added.
func writeCanvas(path string, canvas asciiart.Canvas) error {
	if err := os.WriteFile(path, []byte(canvas.String()), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	return nil
}
