package geom

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorKind discriminates the Color sum type.
type ColorKind int

const (
	ColorDefault ColorKind = iota
	ColorNamed
	ColorIndexed
	ColorRGB
)

// Color is a closed sum of the terminal color representations: the
// terminal's default, one of the sixteen named ANSI colors, a 256-color
// palette index, or a truecolor RGB triple.
type Color struct {
	Kind  ColorKind
	Index uint8 // ColorNamed (0-15) or ColorIndexed (0-255)
	R     uint8
	G     uint8
	B     uint8
}

// namedColors maps the standard+bright ANSI names to their palette index.
var namedColors = map[string]uint8{
	"black": 0, "red": 1, "green": 2, "yellow": 3,
	"blue": 4, "magenta": 5, "cyan": 6, "white": 7,
	"bright-black": 8, "bright-red": 9, "bright-green": 10, "bright-yellow": 11,
	"bright-blue": 12, "bright-magenta": 13, "bright-cyan": 14, "bright-white": 15,
}

// Named resolves one of the sixteen standard ANSI color names.
func Named(name string) (Color, error) {
	idx, ok := namedColors[name]
	if !ok {
		return Color{}, fmt.Errorf("geom: unknown color name %q", name)
	}
	return Color{Kind: ColorNamed, Index: idx}, nil
}

// Indexed builds a 256-color palette reference.
func Indexed(i uint8) Color { return Color{Kind: ColorIndexed, Index: i} }

// RGB builds a truecolor reference.
func RGB(r, g, b uint8) Color { return Color{Kind: ColorRGB, R: r, G: g, B: b} }

// Default is the terminal's configured default foreground/background.
var Default = Color{Kind: ColorDefault}

// DowngradeTo256 projects a truecolor Color onto the nearest entry of the
// standard 256-color cube, for targets that report no truecolor support.
// Named/indexed/default colors pass through unchanged.
func (c Color) DowngradeTo256() Color {
	if c.Kind != ColorRGB {
		return c
	}
	target := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	best := uint8(16)
	bestDist := math.MaxFloat64
	for i := 16; i < 256; i++ {
		r, g, b := cube256(i)
		cand := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		d := target.DistanceCIE94(cand)
		if d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	return Indexed(best)
}

// cube256 computes the RGB components of one of the 216 color-cube entries
// or 24 grayscale ramp entries in the standard xterm 256-color palette.
func cube256(i int) (r, g, b uint8) {
	if i >= 232 {
		level := uint8(8 + (i-232)*10)
		return level, level, level
	}
	i -= 16
	steps := [6]uint8{0, 95, 135, 175, 215, 255}
	return steps[(i/36)%6], steps[(i/6)%6], steps[i%6]
}

// Style is the visual style of a cell: colors plus SGR attributes.
type Style struct {
	Fg         Color
	Bg         Color
	Bold       bool
	Dim        bool
	Italic     bool
	Underline  bool
	Blink      bool
	Reverse    bool
	Strike     bool
}

// IsZero reports whether the style is the default, unstyled cell.
func (s Style) IsZero() bool { return s == Style{} }
