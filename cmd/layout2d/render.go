package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-layout2d/internal/render"
)

func newRenderCmd() *cobra.Command {
	var (
		size   sizeFlags
		output string
		scale  float64
	)

	cmd := &cobra.Command{
		Use:   "render <scene>",
		Short: "Draw node bounds and clip rectangles to a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vp, res, err := layoutScene(args[0], size)
			if err != nil {
				return err
			}

			r, err := render.NewRasterizer(vp.Size(), scale)
			if err != nil {
				return err
			}
			defer r.Close()

			if err := r.Draw(vp.Root()); err != nil {
				return err
			}
			if err := r.SavePNG(output); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printStatus(out, args[0], vp, res)
			okColor.Fprint(out, "✓ ")
			fmt.Fprintf(out, "wrote %dx%d image to %s\n", r.Width(), r.Height(), output)
			return nil
		},
	}

	addSizeFlags(cmd, &size)
	cmd.Flags().StringVarP(&output, "output", "o", "layout.png", "PNG file to write")
	cmd.Flags().Float64Var(&scale, "scale", 1, "pixels per layout unit")
	return cmd
}
