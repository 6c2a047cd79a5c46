package export

import (
	"fmt"

	"github.com/ChicagoDave/gitville/pkg/draw"
	"github.com/ChicagoDave/gitville/pkg/geo"
	"github.com/ChicagoDave/gitville/pkg/render"
	"github.com/ChicagoDave/gitville/pkg/style"
	"github.com/ChicagoDave/gitville/pkg/svg"
)

// scatter returns a stable pseudo-random value in [0,1) for overlay
// placement, keyed by item index and a per-overlay salt.
func scatter(i int, salt float64) float64 {
	return style.NoiseXY(float64(i)*3.7+salt, salt*2.3+1.1, style.AspectScatter)
}

func driftClass(i int) string {
	if d := i % 4; d != 0 {
		return fmt.Sprintf("drift drift-%d", d)
	}
	return "drift"
}

func flickerClass(i int) string {
	if d := i % 3; d != 0 {
		return fmt.Sprintf("flicker flicker-%d", d)
	}
	return "flicker"
}

// drawClouds spaces a few puff clusters along the sky band, each in its
// own drift group with a staggered delay.
func drawClouds(c *svg.Canvas, vp geo.Rect, night bool) {
	ctx := render.Context{S: c, Phase: exportPhase, Night: night}
	n := 3 + int(vp.Width())/800
	for i := 0; i < n; i++ {
		at := geo.Point{
			X: vp.Min.X + (float64(i)+0.5)/float64(n)*vp.Width() + (scatter(i, 7.3)-0.5)*120,
			Y: vp.Min.Y + 46 + scatter(i, 13.9)*80,
		}
		c.BeginGroup("", driftClass(i))
		render.Cloud(ctx, at, 0.8+scatter(i, 5.1)*0.5, 3+i*5)
		c.EndGroup()
	}
}

// drawRain covers the viewport with streaks falling as one group.
func drawRain(c *svg.Canvas, vp geo.Rect) {
	ctx := render.Context{S: c, Phase: exportPhase}
	c.BeginGroup("", "fall")
	n := int(vp.Width() / 26)
	for i := 0; i < n; i++ {
		at := geo.Point{
			X: vp.Min.X + (float64(i)+scatter(i, 3.3))*26,
			Y: vp.Min.Y + scatter(i, 9.7)*vp.Height(),
		}
		render.Raindrop(ctx, at, 9+scatter(i, 6.1)*5)
	}
	c.EndGroup()
}

// drawFireflies sprinkles flickering night lights over the town band.
func drawFireflies(c *svg.Canvas, vp geo.Rect) {
	const n = 14
	for i := 0; i < n; i++ {
		x := vp.Min.X + vp.Width()*(0.12+0.76*scatter(i, 17.9))
		y := vp.Min.Y + vp.Height()*(0.25+0.55*scatter(i, 23.3))
		c.BeginGroup("", flickerClass(i))
		c.BeginPath()
		c.Circle(x, y, 1.6)
		c.SetFill("#ffeaa7")
		c.Fill()
		c.EndGroup()
	}
}

// drawBirds strokes a few distant wing pairs in the day sky.
func drawBirds(c *svg.Canvas, vp geo.Rect) {
	const n = 4
	for i := 0; i < n; i++ {
		x := vp.Min.X + vp.Width()*(0.15+0.7*scatter(i, 29.1))
		y := vp.Min.Y + 36 + scatter(i, 31.7)*54
		k := 0.8 + scatter(i, 37.3)*0.5
		c.BeginPath()
		c.MoveTo(x-6*k, y)
		c.QuadTo(x-3*k, y-4*k, x, y)
		c.QuadTo(x+3*k, y-4*k, x+6*k, y)
		c.SetStroke("rgba(45,52,54,0.65)")
		c.SetLineWidth(1.6)
		c.Stroke()
	}
}

// drawVignette darkens the corners with a radial gradient over the
// whole viewport.
func drawVignette(c *svg.Canvas, vp geo.Rect) {
	c.DefineRadialGradient("vignette", []svg.GradientStop{
		{Offset: 0, Color: "#000000", Opacity: 0},
		{Offset: 0.72, Color: "#000000", Opacity: 0},
		{Offset: 1, Color: "#000000", Opacity: 0.28},
	})
	c.BeginPath()
	c.MoveTo(vp.Min.X, vp.Min.Y)
	c.LineTo(vp.Max.X, vp.Min.Y)
	c.LineTo(vp.Max.X, vp.Max.Y)
	c.LineTo(vp.Min.X, vp.Max.Y)
	c.ClosePath()
	c.SetFill(svg.Paint("vignette"))
	c.Fill()
}

// drawCaption writes the town title and the population line.
func drawCaption(c *svg.Canvas, vp geo.Rect, title string, population int, night bool) {
	ink := "#2d3436"
	if night {
		ink = "#dfe6e9"
	}
	c.Text(vp.Min.X+26, vp.Min.Y+44, title, draw.TextOpts{
		Size: 24,
		Fill: ink,
		Bold: true,
	})
	c.Text(vp.Min.X+26, vp.Min.Y+64, fmt.Sprintf("population %d", population), draw.TextOpts{
		Size: 13,
		Fill: ink,
	})
}

// drawFrame strokes the border just inside the document edge.
func drawFrame(c *svg.Canvas, vp geo.Rect, night bool) {
	ink := "rgba(45,52,54,0.6)"
	if night {
		ink = "rgba(223,230,233,0.5)"
	}
	const inset = 10.0
	c.BeginPath()
	c.MoveTo(vp.Min.X+inset, vp.Min.Y+inset)
	c.LineTo(vp.Max.X-inset, vp.Min.Y+inset)
	c.LineTo(vp.Max.X-inset, vp.Max.Y-inset)
	c.LineTo(vp.Min.X+inset, vp.Max.Y-inset)
	c.ClosePath()
	c.SetStroke(ink)
	c.SetLineWidth(3)
	c.Stroke()
}
