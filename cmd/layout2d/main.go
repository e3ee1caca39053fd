// Package main provides the layout2d CLI for laying out scene documents.
//
// Usage:
//
//	layout2d measure <scene>               Lay out a scene and print the tree
//	layout2d snapshot <scene> -f yaml      Export computed geometry
//	layout2d render <scene> -o out.png     Draw bounds and clips to a PNG
//	layout2d watch <scene>                 Re-lay out whenever the file changes
//	layout2d bench <scene...>              Time repeated layouts
//
// Scenes are TOML or YAML, picked by file extension.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	layout2d "github.com/grindlemire/go-layout2d"
	"github.com/grindlemire/go-layout2d/internal/debug"
)

const version = "0.1.0"

var errorColor = color.New(color.FgRed, color.Bold)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		errorColor.Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	debugPath string
	noColor   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "layout2d",
		Short:         "Lay out 2D overlay scenes",
		Long:          "layout2d runs the Measure/Arrange layout passes over TOML or YAML scene documents.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.noColor {
				color.NoColor = true
			}
			return setupDebug(opts.debugPath)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			layout2d.SetLogger(nil)
			return debug.Close()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.debugPath, "debug", "", "append debug logs to this file (default $"+debug.EnvVar+")")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newMeasureCmd(),
		newSnapshotCmd(),
		newRenderCmd(),
		newWatchCmd(),
		newBenchCmd(),
	)
	return cmd
}

func setupDebug(path string) error {
	enabled := false
	if path != "" {
		if err := debug.Init(path); err != nil {
			return err
		}
		enabled = true
	} else {
		var err error
		if enabled, err = debug.FromEnv(); err != nil {
			return err
		}
	}
	if enabled {
		layout2d.SetLogger(debug.Logger())
	}
	return nil
}
