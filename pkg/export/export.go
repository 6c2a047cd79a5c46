// Package export renders one snapshot into a standalone SVG document:
// background, animated style classes, the ground carpet, the depth-sorted
// town, and the decorative overlay layers. The same input always produces
// the same bytes, and documents are written atomically.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChicagoDave/gitville/pkg/city"
	"github.com/ChicagoDave/gitville/pkg/geo"
	"github.com/ChicagoDave/gitville/pkg/iso"
	"github.com/ChicagoDave/gitville/pkg/scene"
	"github.com/ChicagoDave/gitville/pkg/style"
	"github.com/ChicagoDave/gitville/pkg/svg"
)

// exportPhase is the sway phase baked into static documents. Any constant
// works; continuous motion comes from the document's animation classes.
const exportPhase = 3.7

// grassMargin widens the ground carpet past the outermost entity.
const grassMargin = 2

// Viewport is the world-space box the document frames: the ground carpet
// diamonds padded all around, with extra headroom for roofs and sky.
func Viewport(ground scene.CellRect, pad, topPad float64) geo.Rect {
	b := geo.EmptyRect()
	for _, cell := range [][2]int{
		{ground.MinX, ground.MinY}, {ground.MaxX, ground.MinY},
		{ground.MinX, ground.MaxY}, {ground.MaxX, ground.MaxY},
	} {
		for _, p := range iso.TileDiamond(iso.GridToWorld(cell[0], cell[1])) {
			b = b.Union(p)
		}
	}
	b = b.Pad(pad)
	b.Min.Y -= topPad
	return b
}

// Document renders the snapshot to SVG text using the project's framing
// presets.
func Document(snap *city.Snapshot, proj city.Project) string {
	ground, ok := scene.CellBounds(snap)
	if !ok {
		ground = scene.CellRect{MinX: -4, MinY: -4, MaxX: 4, MaxY: 4}
	}
	ground = ground.Expand(grassMargin)
	vp := Viewport(ground, proj.Export.Pad, proj.Export.TopPad)

	world := proj.ApplyWorld(snap.World)
	night := world.IsNight()
	c := svg.New(vp)
	bg := proj.Background
	if night {
		bg = style.Night(bg)
	}
	c.SetBackground(bg)

	scene.Compose(c, snap, scene.Options{
		Phase:  exportPhase,
		Night:  night,
		Ground: ground,
	})

	drawClouds(c, vp, night)
	if world.IsRaining() {
		drawRain(c, vp)
	}
	if night {
		drawFireflies(c, vp)
	} else {
		drawBirds(c, vp)
	}
	drawVignette(c, vp)
	drawCaption(c, vp, proj.Title, snap.Population(), night)
	drawFrame(c, vp, night)

	return c.Doc()
}

// Write renders and atomically replaces path, so a failed export never
// leaves a partial document behind.
func Write(path string, snap *city.Snapshot, proj city.Project) error {
	doc := Document(snap, proj)

	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*.svg")
	if err != nil {
		return fmt.Errorf("creating temp document: %w", err)
	}
	if _, err := tmp.WriteString(doc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing document: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}
