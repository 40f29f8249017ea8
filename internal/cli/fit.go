package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/sheetanchor/pkg/anchor"
	"github.com/matzehuels/sheetanchor/pkg/errors"
	"github.com/matzehuels/sheetanchor/pkg/imagesize"
	"github.com/matzehuels/sheetanchor/pkg/units"
)

// fitOptions holds the flags of the fit command.
type fitOptions struct {
	at         string
	scale      float64
	configPath string
	noCache    bool
	jsonOut    bool
}

// fitResult is the outcome for one image file.
type fitResult struct {
	File    string         `json:"file"`
	Image   imagesize.Info `json:"image"`
	Scale   float64        `json:"scale"`
	Picture anchor.Picture `json:"picture"`
}

// fitCommand creates the fit command.
func (c *CLI) fitCommand() *cobra.Command {
	opts := fitOptions{at: "A1", scale: 1}

	cmd := &cobra.Command{
		Use:   "fit IMAGE...",
		Short: "Fit pictures onto the sheet grid",
		Long: `Fit each image onto the sheet grid as a picture whose top-left corner is the
cell given by --at, and print the resulting anchor and transform.

Column widths and row heights come from a geometry file (see "sheetanchor
geometry init"); without one, the default sheet geometry is used. Images whose
size cannot be read are anchored as a single cell with zero extent.`,
		Example: `  sheetanchor fit logo.png --at C3
  sheetanchor fit *.png --scale 0.5 --config geometry.toml --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFit(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.at, "at", opts.at, "top-left cell of the pictures (A1 reference)")
	cmd.Flags().Float64VarP(&opts.scale, "scale", "s", opts.scale, "scale factor applied to the native size")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "sheet geometry file (TOML)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "do not use the image dimension cache")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print results as JSON")

	return cmd
}

func (c *CLI) runFit(cmd *cobra.Command, files []string, opts fitOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	col, row, err := anchor.ParseCellRef(opts.at)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	engine, err := cfg.Engine()
	if err != nil {
		return err
	}

	dec := c.newDecoder(opts.noCache)
	defer dec.Cache.Close()
	resizer := anchor.NewResizer(engine, dec, logger)

	prog := newProgress(logger)
	var spin *spinner
	if len(files) > 1 && !opts.jsonOut {
		spin = newSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Fitting %d pictures...", len(files)))
		spin.Start()
	}

	results, err := fitFiles(ctx, resizer, files, anchor.At(col, row), opts.scale)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}
	prog.done("fitted pictures", "count", len(results))

	if opts.jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	p := newPrinter(cmd.OutOrStdout())
	for _, r := range results {
		printFitResult(p, r, engine.Options().PixelsPerInch)
	}
	return nil
}

// fitFiles fits every file concurrently. Results keep the order of files.
// An unreadable file fails the whole run; an undecodable image does not.
func fitFiles(ctx context.Context, r *anchor.Resizer, files []string, start anchor.GridAnchor, scale float64) ([]fitResult, error) {
	results := make([]fitResult, len(files))
	ppi := r.Grid.Options().PixelsPerInch

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "read %s", file)
			}

			info := r.Decoder.DecodeOrZero(ctx, bytes.NewReader(data))
			a, t, err := r.Resize(ctx, start, scale, info.Size(ppi))
			if err != nil {
				return errors.Wrap(errors.GetCode(err), err, "fit %s", file)
			}
			results[i] = fitResult{
				File:    file,
				Image:   info,
				Scale:   scale,
				Picture: anchor.Picture{Anchor: a, Transform: t},
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printFitResult(p printer, r fitResult, ppi float64) {
	a, t := r.Picture.Anchor, r.Picture.Transform
	name := filepath.Base(r.File)

	if r.Image.Width == 0 && r.Image.Height == 0 {
		p.warning("%s: size unknown, anchored at %s with zero extent", name, anchor.CellRef(a.StartCol, a.StartRow))
		return
	}

	p.success("%s %s", name, StyleNumber.Render(a.String()))
	p.stats(
		r.Image.Format,
		fmt.Sprintf("%dx%d px", r.Image.Width, r.Image.Height),
		fmt.Sprintf("scale %g", r.Scale),
		fmt.Sprintf("%d cols x %d rows", a.Columns(), a.Rows()),
	)
	p.keyValue("End offset", fmt.Sprintf("%.1f, %.1f px", units.EMUToPixels(a.EndDx, ppi), units.EMUToPixels(a.EndDy, ppi)))
	p.keyValue("Position", fmt.Sprintf("%d, %d EMU", t.X, t.Y))
	p.keyValue("Extent", fmt.Sprintf("%d x %d EMU", t.CX, t.CY))
}
