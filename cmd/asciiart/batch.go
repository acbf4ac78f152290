package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nebbyJammin/imgascii/internal/batch"
	"github.com/nebbyJammin/imgascii/internal/config"
	"github.com/nebbyJammin/imgascii/pkg/asciiart"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const outputDirUsage = "Write one <path>.txt per image into this directory instead of printing, mirroring the layout under DIR."

func newBatchCmd(opts *config.Options) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "batch DIR",
		Short: "Convert every image under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts, args[0], outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", outputDirUsage)

	return cmd
}

func runBatch(cmd *cobra.Command, opts *config.Options, dir, outputDir string) error {
	if opts.Width <= 0 {
		return errors.Wrapf(asciiart.ErrInvalidWidth, "got %d", opts.Width)
	}

	conv, err := opts.Converter()
	if err != nil {
		return err
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", outputDir)
		}
	}

	out := cmd.OutOrStdout()
	summary, err := batch.ConvertDir(dir, conv, opts.Width, func(res batch.Result) error {
		if res.Err != nil {
			slog.Error("conversion failed", slog.String("path", res.Path), slog.Any("error", res.Err))
			return nil
		}

		slog.Debug("converted image",
			slog.String("path", res.Path),
			slog.Int64("conversion_ms", res.Elapsed.Milliseconds()),
		)

		if outputDir != "" {
			target, err := outputPath(dir, outputDir, res.Path)
			if err != nil {
				return err
			}
			return writeCanvas(target, res.Canvas)
		}

		_, err := fmt.Fprintf(out, "Image: %s\n%s\n\n", filepath.Base(res.Path), res.Canvas.String())
		return err
	})
	if err != nil {
		return err
	}

	slog.Info("batch finished", slog.Int("converted", summary.Converted), slog.Int("failed", summary.Failed))

	if summary.Failed > 0 {
		return errors.Errorf("%d of %d images failed to convert", summary.Failed, summary.Failed+summary.Converted)
	}

	return nil
}

/*
outputPath maps an image under dir to its text file under outputDir. The relative path and the image extension are kept, so photos/a.png becomes <outputDir>/photos/a.png.txt and a.gif next to a.png never share a target.
*/
func outputPath(dir, outputDir, path string) (string, error) {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return "", errors.Wrapf(err, "relative path of %s", path)
	}

	target := filepath.Join(outputDir, rel+".txt")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", errors.Wrapf(err, "create %s", filepath.Dir(target))
	}

	return target, nil
}
