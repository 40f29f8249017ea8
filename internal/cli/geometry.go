package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sheetanchor/pkg/config"
	"github.com/matzehuels/sheetanchor/pkg/errors"
	"github.com/matzehuels/sheetanchor/pkg/units"
)

// geometryCommand creates the geometry command.
func (c *CLI) geometryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Write or check sheet geometry files",
	}

	cmd.AddCommand(c.geometryInitCommand())
	cmd.AddCommand(c.geometryCheckCommand())

	return cmd
}

// geometryInitCommand creates the "geometry init" subcommand.
func (c *CLI) geometryInitCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default sheet geometry",
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			if err := config.Default().Encode(&buf); err != nil {
				return err
			}
			if output == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "write %s", output)
			}
			p := newPrinter(cmd.OutOrStdout())
			p.success("Wrote default geometry")
			p.file(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

// geometryCheckCommand creates the "geometry check" subcommand.
func (c *CLI) geometryCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a sheet geometry file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd.OutOrStdout())

			cfg, err := config.Load(args[0])
			if err != nil {
				p.errorf("%s", errors.UserMessage(err))
				return err
			}
			p.success("%s is valid", args[0])
			p.keyValue("Resolution", fmt.Sprintf("%g ppi", cfg.PixelsPerInch))
			p.keyValue("Column", fmt.Sprintf("%.2f px default, %d explicit", units.CharsToPixels(cfg.Columns.DefaultWidth, cfg.Columns.CharacterWidth), len(cfg.Columns.Widths)))
			p.keyValue("Row", fmt.Sprintf("%.2f px default, %d explicit", units.PointsToPixels(cfg.Rows.DefaultHeight, cfg.PixelsPerInch), len(cfg.Rows.Heights)))
			p.detail("Limits: %d columns, %d rows", cfg.Columns.MaxIndex, cfg.Rows.MaxIndex)
			return nil
		},
	}
}
