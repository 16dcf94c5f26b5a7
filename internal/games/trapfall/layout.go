package trapfall

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Layout is a printable description of one generated level.
type Layout struct {
	Level     int              `yaml:"level"`
	BaseSeed  int64            `yaml:"base_seed"`
	Seed      int64            `yaml:"seed"`
	Width     float64          `yaml:"width"`
	Counts    map[string]int   `yaml:"counts"`
	Platforms []LayoutPlatform `yaml:"platforms"`
}

// LayoutPlatform is one platform in a Layout.
type LayoutPlatform struct {
	Kind   string  `yaml:"kind"`
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// BuildLayout generates a level and describes it.
func BuildLayout(level int, baseSeed int64, width float64) Layout {
	platforms := Generate(level, baseSeed, width)

	l := Layout{
		Level:     level,
		BaseSeed:  baseSeed,
		Seed:      LevelSeed(baseSeed, level),
		Width:     width,
		Counts:    make(map[string]int),
		Platforms: make([]LayoutPlatform, 0, len(platforms)),
	}
	for _, p := range platforms {
		l.Counts[p.Kind.String()]++
		l.Platforms = append(l.Platforms, LayoutPlatform{
			Kind:   p.Kind.String(),
			Left:   p.Bounds.Left,
			Top:    p.Bounds.Top,
			Right:  p.Bounds.Right,
			Bottom: p.Bounds.Bottom,
		})
	}
	return l
}

// WriteYAML encodes the layout as YAML.
func (l Layout) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
