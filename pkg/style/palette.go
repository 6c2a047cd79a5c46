package style

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fallback hue for entities with a missing or malformed color.
const DefaultBase = "#ff6b6b"

// nightSky is the tone day colors blend toward in night mode.
var nightSky, _ = colorful.Hex("#273352")

// ParseHex parses a #rrggbb (or #rgb) color, reporting success.
func ParseHex(s string) (colorful.Color, bool) {
	if len(s) == 4 && s[0] == '#' {
		s = fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Darken shifts every channel down by percent points (2.5 units of 255
// per point), the same flat adjustment the house roof tints are built
// from. Negative percent brightens.
func Darken(hex string, percent float64) string {
	c, ok := ParseHex(hex)
	if !ok {
		return "#555555"
	}
	d := percent * 2.5 / 255
	return colorful.Color{
		R: clamp01(c.R - d),
		G: clamp01(c.G - d),
		B: clamp01(c.B - d),
	}.Hex()
}

// Lighten blends a color toward white by amount in [0,1].
func Lighten(hex string, amount float64) string {
	c, ok := ParseHex(hex)
	if !ok {
		return hex
	}
	return c.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, clamp01(amount)).Hex()
}

// Night maps a day color to its night-mode tone.
func Night(hex string) string {
	c, ok := ParseHex(hex)
	if !ok {
		return hex
	}
	return c.BlendLab(nightSky, 0.55).Clamped().Hex()
}

// Alpha renders a hex color as an rgba() string with the given opacity.
func Alpha(hex string, a float64) string {
	c, ok := ParseHex(hex)
	if !ok {
		c, _ = colorful.Hex(DefaultBase)
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", r, g, b, clamp01(a))
}

// Palette is the resolved color set for one house.
type Palette struct {
	Wall       string
	WallShadow string
	Trim       string
	Glass      string
	GlassAlt   string
	Door       string
	RoofMain   string
	RoofDark   string
	Foundation string
}

// HousePalette derives the full palette from an entity's base color.
// Abandoned houses ignore the base hue entirely and use the fixed
// desaturated set.
func HousePalette(base string, abandoned bool) Palette {
	if _, ok := ParseHex(base); !ok {
		base = DefaultBase
	}
	p := Palette{
		Wall:       "#fdfbf7",
		WallShadow: "#e0dad1",
		Trim:       "#dfe6e9",
		Glass:      "#74b9ff",
		GlassAlt:   "#81ecec",
		Door:       "#5d4037",
		Foundation: "#b2bec3",
	}
	if abandoned {
		base = "#535c68"
		p.Wall = "#95a5a6"
		p.WallShadow = "#7f8c8d"
		p.Trim = "#636e72"
		p.Glass = "#2d3436"
		p.GlassAlt = "#2d3436"
		p.Door = "#2d3436"
		p.Foundation = "#7f8c8d"
	}
	p.RoofMain = Darken(base, 20)
	p.RoofDark = Darken(base, 40)
	return p
}
