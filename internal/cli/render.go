package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sawtooth/pkg/animate"
	"github.com/matzehuels/sawtooth/pkg/config"
	"github.com/matzehuels/sawtooth/pkg/errors"
	"github.com/matzehuels/sawtooth/pkg/sink"
	"github.com/matzehuels/sawtooth/pkg/svg"
	"github.com/matzehuels/sawtooth/pkg/theme"
)

const defaultTicks = 20

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output        string   // output file (single format) or base path (multiple)
	formats       []string // output formats: "svg", "png", "json"
	ticks         int      // number of loop ticks to run before rendering
	scale         float64  // PNG scale factor
	withoutHidden bool     // drop evicted shapes from SVG output
	title         string   // SVG <title>
}

// renderCommand runs the loop for a fixed number of ticks and writes the frame.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		ticks: defaultTicks,
		scale: 1,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Run the loop for N ticks and write the frame",
		Long: `Run the sawtooth loop synchronously for --ticks ticks, then write the
resulting document in each requested format.

Examples:
  sawtooth render --ticks 30 -o frame.svg
  sawtooth render -f svg,png -o out/frame
  sawtooth render -f json -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := sink.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if opts.ticks < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--ticks must not be negative")
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().IntVarP(&opts.ticks, "ticks", "n", opts.ticks, "number of ticks to run")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.withoutHidden, "without-hidden", false, "omit evicted shapes from SVG output")
	cmd.Flags().StringVar(&opts.title, "title", "", "SVG title")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	formats := sink.ParseFormats(s)
	if len(formats) == 0 {
		return []string{sink.FormatSVG}
	}
	return formats
}

// basePath derives the base output path from the output flag.
// If output has a format extension (.svg, .png, .json), it strips that extension.
func basePath(output string) string {
	if output == "" {
		return appName
	}
	ext := filepath.Ext(output)
	if sink.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// newDocument builds the canvas described by cfg.
func newDocument(cfg *config.Config, th *theme.Theme) (*svg.Document, error) {
	doc := svg.NewDocument(cfg.Canvas.Width, cfg.Canvas.Height)
	bg, err := cfg.Background(th)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "canvas.background")
	}
	doc.SetBackground(bg)
	return doc, nil
}

func (c *CLI) runRender(ctx context.Context, stdout io.Writer, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	cfg, th, err := c.loadConfig()
	if err != nil {
		return err
	}
	doc, err := newDocument(cfg, th)
	if err != nil {
		return err
	}
	loopOpts, err := cfg.AnimateOptions(th)
	if err != nil {
		return err
	}

	loop, err := animate.New(doc, loopOpts, animate.WithLogger(logger))
	if err != nil {
		return err
	}

	sw := startStopwatch(logger)
	for range opts.ticks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := loop.Tick(); err != nil {
			return err
		}
	}
	st := loop.State()
	sw.done("Ran loop", "ticks", st.Tick, "shapes", doc.Len(), "visible", doc.VisibleLen())

	sinkOpts := sink.Options{
		PNG: []sink.PNGOption{sink.WithScale(opts.scale)},
	}
	if opts.title != "" {
		sinkOpts.SVG = append(sinkOpts.SVG, sink.WithTitle(opts.title))
	}
	if opts.withoutHidden {
		sinkOpts.SVG = append(sinkOpts.SVG, sink.WithoutHidden())
	}

	for _, format := range opts.formats {
		data, err := sink.Render(ctx, doc, format, sinkOpts)
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
		logger.Debugf("Generated %s: %d bytes", format, len(data))

		if opts.output == "-" {
			if _, err := stdout.Write(data); err != nil {
				return err
			}
			continue
		}

		path := opts.output
		if path == "" || len(opts.formats) > 1 {
			path = basePath(opts.output) + "." + format
		}
		if err := writeFile(path, data); err != nil {
			return err
		}
		logger.Infof("Generated %s", path)
	}
	return nil
}

// writeFile writes data next to path and renames it into place, so readers
// never see a partial frame.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
