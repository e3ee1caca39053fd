package layout2d

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/grindlemire/go-layout2d/internal/metrics"
)

// ViewportOption is a functional option for configuring a Viewport.
type ViewportOption func(*Viewport) error

// WithViewportSize sets the initial viewport size. Both dimensions must be
// finite and non-negative.
func WithViewportSize(width, height float64) ViewportOption {
	return func(v *Viewport) error {
		s, err := validateSize(width, height)
		if err != nil {
			return err
		}
		v.size = s
		return nil
	}
}

// WithLogger sets the logger for viewport events. The layout engine's own
// logger is configured separately with SetLogger.
func WithLogger(l *slog.Logger) ViewportOption {
	return func(v *Viewport) error {
		if l == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		v.logger = l
		return nil
	}
}

// WithMetrics records update statistics into collectors registered with reg.
func WithMetrics(reg prometheus.Registerer) ViewportOption {
	return func(v *Viewport) error {
		r, err := metrics.NewRecorder(reg)
		if err != nil {
			return err
		}
		v.recorder = r
		return nil
	}
}

// WithMaxPasses limits how many Measure+Arrange passes one Update may run.
// Default is 4. Must be at least 1.
func WithMaxPasses(n int) ViewportOption {
	return func(v *Viewport) error {
		if n < 1 {
			return fmt.Errorf("max passes must be at least 1")
		}
		v.maxPasses = n
		return nil
	}
}

// WithOnRedraw sets a callback invoked after Update with the nodes that
// requested a repaint during it.
func WithOnRedraw(fn func([]*Node)) ViewportOption {
	return func(v *Viewport) error {
		v.onRedraw = fn
		return nil
	}
}
