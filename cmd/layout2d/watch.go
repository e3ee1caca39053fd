package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	layout2d "github.com/grindlemire/go-layout2d"
)

const watchDebounce = 100 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var size sizeFlags

	cmd := &cobra.Command{
		Use:   "watch <scene>",
		Short: "Re-lay out a scene every time the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return watchScene(cmd.Context(), args[0], size, func(vp *layout2d.Viewport, res layout2d.UpdateResult, err error) {
				if err != nil {
					errorColor.Fprint(out, "✗ ")
					fmt.Fprintln(out, err)
					return
				}
				printStatus(out, args[0], vp, res)
				printTree(out, vp)
			})
		},
	}

	addSizeFlags(cmd, &size)
	return cmd
}

// watchScene lays out the scene once, then again after every write to it,
// until ctx is done. Layout errors are reported to fn rather than stopping
// the watch. The parent directory is watched so that editors replacing the
// file by rename are still seen.
func watchScene(ctx context.Context, path string, size sizeFlags, fn func(*layout2d.Viewport, layout2d.UpdateResult, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	run := func() {
		vp, res, err := layoutScene(path, size)
		fn(vp, res, err)
	}
	run()

	// A single save often produces several events; fire once they stop.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			timer.Reset(watchDebounce)
		case <-timer.C:
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				timer.Reset(watchDebounce)
				continue
			}
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
}
