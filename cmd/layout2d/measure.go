package main

import (
	"github.com/spf13/cobra"
)

func newMeasureCmd() *cobra.Command {
	var size sizeFlags

	cmd := &cobra.Command{
		Use:   "measure <scene>",
		Short: "Lay out a scene and print the arranged tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vp, res, err := layoutScene(args[0], size)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printStatus(out, args[0], vp, res)
			printTree(out, vp)
			return nil
		},
	}

	addSizeFlags(cmd, &size)
	return cmd
}

func addSizeFlags(cmd *cobra.Command, size *sizeFlags) {
	cmd.Flags().Float64Var(&size.width, "width", 0, "viewport width (overrides the scene)")
	cmd.Flags().Float64Var(&size.height, "height", 0, "viewport height (overrides the scene)")
}
