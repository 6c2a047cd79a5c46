package scene

import (
	"fmt"
	"sort"

	"github.com/ChicagoDave/gitville/pkg/city"
	"github.com/ChicagoDave/gitville/pkg/draw"
	"github.com/ChicagoDave/gitville/pkg/geo"
	"github.com/ChicagoDave/gitville/pkg/iso"
	"github.com/ChicagoDave/gitville/pkg/render"
	"github.com/ChicagoDave/gitville/pkg/style"
)

// Roads sort under every standing entity while keeping painter order
// among themselves.
const roadBias = 100.0

// item is one depth-sorted draw call. Ties break on world y then x so the
// order is total and identical across runs.
type item struct {
	depth float64
	y, x  float64
	paint func()
}

// Compose draws the whole scene onto the surface.
func Compose(s draw.Surface, snap *city.Snapshot, opts Options) {
	ctx := render.Context{S: s, Phase: opts.Phase, Night: opts.Night}

	for gy := opts.Ground.MinY; gy <= opts.Ground.MaxY; gy++ {
		for gx := opts.Ground.MinX; gx <= opts.Ground.MaxX; gx++ {
			render.Ground(ctx, gx, gy)
		}
	}

	items := make([]item, 0, snap.Roads.Len()+len(snap.Houses)+len(opts.Walkers))
	add := func(depth, y, x float64, paint func()) {
		items = append(items, item{depth: depth, y: y, x: x, paint: paint})
	}

	for _, rt := range snap.Roads.Tiles() {
		rt := rt
		w := iso.GridToWorld(rt.X, rt.Y)
		add(float64(rt.X+rt.Y)-roadBias, w.Y, w.X, func() {
			render.Road(ctx, snap.Roads, rt.X, rt.Y)
		})
	}

	for i := range snap.Houses {
		h := &snap.Houses[i]
		w := iso.GridToWorld(h.X, h.Y)
		depth := float64(h.X + h.Y)
		if h.IsObstacle() {
			gx, gy := h.X, h.Y
			add(depth, w.Y, w.X, func() {
				s.BeginGroup("", swayClass(gx, gy))
				render.Tree(ctx, gx, gy)
				s.EndGroup()
			})
			continue
		}
		hctx := ctx
		if opts.Hover != nil {
			hctx.Hover = opts.Hover(h)
		}
		add(depth, w.Y, w.X, func() { render.House(hctx, h) })
	}

	for _, wk := range opts.Walkers {
		pos := walkerWorld(wk)
		wk := wk
		add(wk.GX+wk.GY, pos.Y, pos.X, func() {
			render.Walker(ctx, pos, wk.Coat, wk.Step)
		})
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.depth != b.depth {
			return a.depth < b.depth
		}
		if a.y != b.y {
			return a.y < b.y
		}
		return a.x < b.x
	})
	for _, it := range items {
		it.paint()
	}
}

// walkerWorld projects fractional grid coordinates the same way
// iso.GridToWorld projects whole cells.
func walkerWorld(w Walker) geo.Point {
	return geo.Point{
		X: (w.GX - w.GY) * iso.TileW / 2,
		Y: (w.GX + w.GY) * iso.TileH / 2,
	}
}

// swayClass staggers tree animation starts so a row of trees does not
// move in lockstep.
func swayClass(gx, gy int) string {
	v := style.VariantAt(gx, gy, style.AspectSway, 4)
	if v == 0 {
		return "sway"
	}
	return fmt.Sprintf("sway sway-%d", v)
}
