package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a scene document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for file extensions or format names that are
// neither TOML nor YAML.
var ErrUnknownFormat = errors.New("scene: unknown format")

// Document is a parsed scene.
type Document struct {
	Viewport Viewport `toml:"viewport" yaml:"viewport"`
	Root     NodeSpec `toml:"root" yaml:"root"`
}

// Viewport is the size the root is laid out in.
type Viewport struct {
	Width  float64 `toml:"width" yaml:"width" validate:"gte=0"`
	Height float64 `toml:"height" yaml:"height" validate:"gte=0"`
}

// NodeSpec declares one node and its subtree.
type NodeSpec struct {
	Name string `toml:"name" yaml:"name"`

	Width     Dimension `toml:"width" yaml:"width" validate:"gte=0"`
	Height    Dimension `toml:"height" yaml:"height" validate:"gte=0"`
	MinWidth  Dimension `toml:"min_width" yaml:"min_width" validate:"gte=0"`
	MinHeight Dimension `toml:"min_height" yaml:"min_height" validate:"gte=0"`
	MaxWidth  Dimension `toml:"max_width" yaml:"max_width" validate:"gte=0"`
	MaxHeight Dimension `toml:"max_height" yaml:"max_height" validate:"gte=0"`

	// Margin holds 1 (all sides), 2 (horizontal, vertical) or 4 (left, top,
	// right, bottom) values.
	Margin []float64 `toml:"margin" yaml:"margin" validate:"thickness,dive,gte=0"`

	HAlign string `toml:"halign" yaml:"halign" validate:"omitempty,align"`
	VAlign string `toml:"valign" yaml:"valign" validate:"omitempty,align"`

	Policy      string    `toml:"policy" yaml:"policy" validate:"omitempty,oneof=overlay stack intrinsic"`
	Orientation string    `toml:"orientation" yaml:"orientation" validate:"omitempty,oneof=vertical horizontal"`
	Spacing     float64   `toml:"spacing" yaml:"spacing" validate:"gte=0"`
	Content     []float64 `toml:"content" yaml:"content" validate:"omitempty,len=2,dive,gte=0"`

	ClipToBound bool `toml:"clip_to_bound" yaml:"clip_to_bound"`

	Children []NodeSpec `toml:"children" yaml:"children" validate:"dive"`
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Load reads and validates the scene document at path.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode reads and validates a scene document. Unknown keys are errors.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}
