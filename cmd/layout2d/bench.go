package main

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	layout2d "github.com/grindlemire/go-layout2d"
	"github.com/grindlemire/go-layout2d/internal/metrics"
)

type benchOptions struct {
	size       sizeFlags
	iterations int
	workers    int
	metrics    bool
}

type benchResult struct {
	path    string
	nodes   int
	total   time.Duration
	slowest time.Duration
}

func newBenchCmd() *cobra.Command {
	opts := &benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench <scene...>",
		Short: "Time repeated full layouts of one or more scenes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.iterations < 1 {
				return fmt.Errorf("iterations must be at least 1")
			}
			reg := prometheus.NewRegistry()
			results, err := runBench(cmd, args, opts, reg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				okColor.Fprint(out, "✓ ")
				fmt.Fprintf(out, "%s nodes=%d iterations=%d ", r.path, r.nodes, opts.iterations)
				infoColor.Fprintf(out, "avg=%s", r.total/time.Duration(opts.iterations))
				fmt.Fprintf(out, " max=%s\n", r.slowest)
			}
			if opts.metrics {
				return metrics.Dump(out, reg)
			}
			return nil
		},
	}

	addSizeFlags(cmd, &opts.size)
	cmd.Flags().IntVarP(&opts.iterations, "iterations", "n", 100, "full layouts per scene")
	cmd.Flags().IntVar(&opts.workers, "workers", runtime.GOMAXPROCS(0), "scenes laid out concurrently")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", true, "print Prometheus metrics after the run")
	return cmd
}

// runBench lays out each scene on its own goroutine. Trees share nothing,
// so each gets its own viewport; metrics are labeled per scene.
func runBench(cmd *cobra.Command, paths []string, opts *benchOptions, reg *prometheus.Registry) ([]benchResult, error) {
	results := make([]benchResult, len(paths))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(opts.workers, 1))

	for i, path := range paths {
		labeled := prometheus.WrapRegistererWith(prometheus.Labels{
			"scene": fmt.Sprintf("%d:%s", i, filepath.Base(path)),
		}, reg)

		g.Go(func() error {
			vp, _, err := layoutScene(path, opts.size, layout2d.WithMetrics(labeled))
			if err != nil {
				return err
			}

			r := benchResult{path: path}
			var leaves []*layout2d.Node
			vp.Root().Walk(func(n *layout2d.Node) bool {
				r.nodes++
				if len(n.Children()) == 0 {
					leaves = append(leaves, n)
				}
				return true
			})

			for range opts.iterations {
				if err := ctx.Err(); err != nil {
					return err
				}
				// Dirtying every leaf forces the whole tree to re-measure.
				for _, leaf := range leaves {
					leaf.InvalidateMeasure()
				}
				res, err := vp.Update()
				if err != nil {
					return err
				}
				r.total += res.Duration
				r.slowest = max(r.slowest, res.Duration)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
