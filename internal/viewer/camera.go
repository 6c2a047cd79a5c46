package viewer

import (
	"math"

	"github.com/ChicagoDave/gitville/pkg/canvas"
	"github.com/ChicagoDave/gitville/pkg/geo"
	"github.com/ChicagoDave/gitville/pkg/iso"
)

// Zoom limits. Below minZoom the town is a smudge, above maxZoom single
// strokes alias badly.
const (
	minZoom  = 0.35
	maxZoom  = 3.0
	zoomStep = 1.12
)

// Camera is the world-space focus point and magnification of the window.
type Camera struct {
	X, Y float64
	Zoom float64
}

// view produces the pixel transform for the current window size, keeping
// the focus point at the screen center.
func (c Camera) view(w, h int) canvas.View {
	return canvas.View{
		Zoom:    c.Zoom,
		OffsetX: float64(w)/2 - c.X*c.Zoom,
		OffsetY: float64(h)/2 - c.Y*c.Zoom,
	}
}

// zoomAt scales the camera by notches wheel steps while the world point
// under the given screen position stays put.
func (c *Camera) zoomAt(sx, sy, notches float64, w, h int) {
	wx, wy := c.view(w, h).Invert(sx, sy)

	c.Zoom = math.Min(maxZoom, math.Max(minZoom, c.Zoom*math.Pow(zoomStep, notches)))

	ax, ay := c.view(w, h).Invert(sx, sy)
	c.X += wx - ax
	c.Y += wy - ay
}

// cell resolves a screen position to the grid cell under it.
func (c Camera) cell(sx, sy float64, w, h int) (int, int) {
	wx, wy := c.view(w, h).Invert(sx, sy)
	return iso.WorldToGrid(geo.Point{X: wx, Y: wy})
}
