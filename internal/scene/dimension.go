package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-layout2d/internal/layout"
)

// Dimension is a length read from a scene document. The zero value is
// unset and leaves the node's default in place.
type Dimension struct {
	Value float64
	Set   bool
}

// Length returns a set Dimension holding v.
func Length(v float64) Dimension {
	return Dimension{Value: v, Set: true}
}

// Or returns the dimension's value, or def when it is unset.
func (d Dimension) Or(def float64) float64 {
	if !d.Set {
		return def
	}
	return d.Value
}

// String formats the dimension the way it is written in documents.
func (d Dimension) String() string {
	switch {
	case !d.Set:
		return ""
	case math.IsInf(d.Value, 1):
		return "auto"
	default:
		return strconv.FormatFloat(d.Value, 'g', -1, 64)
	}
}

func parseDimension(s string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "inf", "infinity", ".inf":
		return Length(layout.Infinity), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return Dimension{}, fmt.Errorf("invalid dimension %q: want a number, \"auto\" or \"inf\"", s)
	}
	return Length(v), nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (d *Dimension) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case int64:
		*d = Length(float64(x))
	case float64:
		if math.IsNaN(x) {
			return fmt.Errorf("invalid dimension: nan")
		}
		*d = Length(x)
	case string:
		parsed, err := parseDimension(x)
		if err != nil {
			return err
		}
		*d = parsed
	default:
		return fmt.Errorf("invalid dimension type %T", v)
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Dimension) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: dimension must be a scalar", value.Line)
	}
	parsed, err := parseDimension(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = parsed
	return nil
}
