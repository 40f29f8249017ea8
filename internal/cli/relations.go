package cli

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sheetanchor/pkg/errors"
	"github.com/matzehuels/sheetanchor/pkg/relation"
)

// relationsCommand creates the relations command.
func (c *CLI) relationsCommand() *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "relations [TYPE]",
		Short: "List relationship types or look one up",
		Long: `List the standard SpreadsheetML relationship types with the part kind and
default part name each one produces.

With an argument, look a single type up. TYPE is either the full relationship
type URI or its last path segment ("worksheet", "image", "vbaProject").`,
		Example: `  sheetanchor relations
  sheetanchor relations worksheet --index 3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := relation.Standard()
			p := newPrinter(cmd.OutOrStdout())

			if len(args) == 0 {
				listRelations(p, reg)
				return nil
			}

			d, err := lookupRelation(reg, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("index") {
				showRelation(p, d, "")
				return nil
			}

			name, err := expandName(d, index)
			if err != nil {
				return err
			}
			showRelation(p, d, name)
			return nil
		},
	}

	cmd.Flags().IntVarP(&index, "index", "n", 0, "expand the default part name for the Nth part (1-based)")

	return cmd
}

// lookupRelation finds the descriptor for a full relationship type URI or
// for the last segment of one.
func lookupRelation(reg *relation.Registry, name string) (relation.Descriptor, error) {
	if d, ok := reg.Lookup(name); ok {
		return d, nil
	}
	for _, d := range reg.Descriptors() {
		if strings.EqualFold(path.Base(d.RelationshipType), name) {
			return d, nil
		}
	}
	return relation.Descriptor{}, errors.New(errors.ErrCodeNotFound, "no registered relationship type %q", name)
}

// expandName returns the default name of the nth part of d.
func expandName(d relation.Descriptor, n int) (string, error) {
	if !d.Indexed() {
		return "", errors.New(errors.ErrCodeInvalidInput, "%s names a single part and takes no index", d.DefaultName)
	}
	if n < 1 {
		return "", errors.New(errors.ErrCodeInvalidInput, "index must be 1 or greater, got %d", n)
	}
	return d.FileName(n), nil
}

func listRelations(p printer, reg *relation.Registry) {
	p.title("Relationship types")
	for _, d := range reg.Descriptors() {
		p.line(styleKind.Render(d.Kind.String()) + " " + StyleValue.Render(d.DefaultName))
	}
	p.stats(fmt.Sprintf("%d types", reg.Len()))
}

func showRelation(p printer, d relation.Descriptor, name string) {
	p.keyValue("Type", d.RelationshipType)
	p.keyValue("Kind", d.Kind.String())
	p.keyValue("Content", d.ContentType)
	p.keyValue("Template", d.DefaultName)
	if name != "" {
		p.keyValue("Part name", name)
	}
}
