package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sepline/core"
	"github.com/katalvlaran/sepline/instance"
	"github.com/katalvlaran/sepline/pointset"
)

type genOptions struct {
	kind   string
	n      int
	step   int
	seed   int64
	span   int
	output string
}

func newGenCmd(stdout io.Writer) *cobra.Command {
	g := &genOptions{}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a generated instance file",
		Long: `gen writes an instance in the input format.

Kinds:
  grid      n×n lattice with spacing --step
  diagonal  (i, i) for i < n
  row       n points on y = 0
  column    n points on x = 0
  random    n distinct points in [0, span)², seeded by --seed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := g.generator()
			if err != nil {
				return err
			}
			pts, err := pointset.Build([]pointset.Option{pointset.WithSeed(g.seed)}, gen)
			if err != nil {
				return err
			}
			if g.output == "" {
				return instance.WritePoints(stdout, pts)
			}

			f, err := os.Create(g.output)
			if err != nil {
				return err
			}
			if err = instance.WritePoints(f, pts); err != nil {
				f.Close()
				return err
			}

			return f.Close()
		},
	}

	f := cmd.Flags()
	f.StringVar(&g.kind, "kind", "random", "grid, diagonal, row, column or random")
	f.IntVar(&g.n, "n", 10, "number of points (grid: side length)")
	f.IntVar(&g.step, "step", 1, "grid spacing")
	f.Int64Var(&g.seed, "seed", 1, "random seed")
	f.IntVar(&g.span, "span", 100, "random coordinate range")
	f.StringVarP(&g.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (g *genOptions) generator() (pointset.Generator, error) {
	switch g.kind {
	case "grid":
		return pointset.Grid(g.n, g.n, g.step), nil
	case "diagonal":
		return pointset.Diagonal(g.n), nil
	case "row":
		return pointset.Collinear(core.X, g.n), nil
	case "column":
		return pointset.Collinear(core.Y, g.n), nil
	case "random":
		return pointset.RandomUnique(g.n, g.span), nil
	}

	return nil, fmt.Errorf("kind %q: %w", g.kind, errInvalidConfig)
}
