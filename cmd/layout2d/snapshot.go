package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-layout2d/internal/snapshot"
)

func newSnapshotCmd() *cobra.Command {
	var (
		size   sizeFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "snapshot <scene>",
		Short: "Export the computed geometry of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := snapshot.ParseFormat(format)
			if err != nil {
				return err
			}
			vp, _, err := layoutScene(args[0], size)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				defer file.Close()
				w = file
			}
			if err := snapshot.Encode(w, snapshot.Capture(vp.Root()), f); err != nil {
				return err
			}
			if output != "" {
				okColor.Fprint(cmd.ErrOrStderr(), "✓ ")
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s snapshot to %s\n", f, output)
			}
			return nil
		},
	}

	addSizeFlags(cmd, &size)
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml|toml|msgpack)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}
