// Package viewer opens the interactive window: the live twin of the SVG
// export, with camera pan and zoom, house hover, and the ambient
// simulation advancing in real time.
package viewer

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ChicagoDave/gitville/pkg/canvas"
	"github.com/ChicagoDave/gitville/pkg/city"
	"github.com/ChicagoDave/gitville/pkg/draw"
	"github.com/ChicagoDave/gitville/pkg/export"
	"github.com/ChicagoDave/gitville/pkg/geo"
	"github.com/ChicagoDave/gitville/pkg/render"
	"github.com/ChicagoDave/gitville/pkg/scene"
	"github.com/ChicagoDave/gitville/pkg/sim"
	"github.com/ChicagoDave/gitville/pkg/style"
)

const (
	windowW = 1280
	windowH = 800

	// Grass carpet cells past the outermost entity.
	grassMargin = 4

	// The ambient fields extend this far past the town so clouds drift in
	// from off-screen instead of popping.
	skyPad    = 200.0
	skyTopPad = 150.0

	// Cloud shadows land this far below their puff cluster.
	shadowDrop = 90.0

	// Arrow-key scroll speed in screen pixels per second.
	arrowPan = 520.0

	// Cursor travel in pixels under which a press still counts as a click.
	clickSlop = 4
)

// Game is the ebiten application state. One instance owns the snapshot,
// the camera, and the ambient simulation for the window's lifetime.
type Game struct {
	log  *slog.Logger
	snap *city.Snapshot
	proj city.Project

	ground scene.CellRect
	homes  map[[2]int]*city.House

	cam           Camera
	width, height int

	phase   float64
	night   bool
	raining bool

	crowd  *sim.Crowd
	hovers *sim.HoverSet
	sky    *sim.Sky
	rain   *sim.Rain

	drag *dragState
}

// dragState anchors an active left-button pan so the grabbed world point
// tracks the cursor without accumulating error.
type dragState struct {
	fromX, fromY int
	camX, camY   float64
	moved        bool
}

// New assembles a game around a loaded snapshot. The seed scatters the
// ambient population; the town layout itself never depends on it.
func New(snap *city.Snapshot, proj city.Project, seed int64, log *slog.Logger) *Game {
	ground, ok := scene.CellBounds(snap)
	if !ok {
		ground = scene.CellRect{MinX: -4, MinY: -4, MaxX: 4, MaxY: 4}
	}
	ground = ground.Expand(grassMargin)

	homes := make(map[[2]int]*city.House, len(snap.Houses))
	for i := range snap.Houses {
		h := &snap.Houses[i]
		if !h.IsObstacle() {
			homes[[2]int{h.X, h.Y}] = h
		}
	}

	world := proj.ApplyWorld(snap.World)
	bounds := export.Viewport(ground, skyPad, skyTopPad)

	return &Game{
		log:     log,
		snap:    snap,
		proj:    proj,
		ground:  ground,
		homes:   homes,
		cam:     Camera{Zoom: 1},
		width:   windowW,
		height:  windowH,
		night:   world.IsNight(),
		raining: world.IsRaining(),
		crowd:   sim.NewCrowd(seed, ground, crowdSize(snap.Population())),
		hovers:  sim.NewHoverSet(),
		sky:     sim.NewSky(seed+1, bounds, cloudCount(bounds)),
		rain:    sim.NewRain(seed+2, bounds, rainCount(bounds)),
	}
}

// Run loads the project, opens the window, and blocks until it closes.
// A missing or unreadable snapshot substitutes the built-in demo town so
// the viewport is never blank.
func Run(dir string, log *slog.Logger) error {
	proj, err := city.LoadProject(dir)
	if err != nil {
		return err
	}
	snap, err := city.LoadSnapshot(dir)
	if err != nil {
		log.Warn("snapshot unavailable, showing fallback town", "dir", dir, "error", err)
		snap = city.Fallback()
	}

	g := New(snap, proj, time.Now().UnixNano(), log)
	log.Info("opening viewer", "title", proj.Title, "population", snap.Population())

	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle(proj.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	return ebiten.RunGame(g)
}

// Update advances one simulation tick and folds in pending input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.night = !g.night
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.raining = !g.raining
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.phase += dt

	mx, my := ebiten.CursorPosition()
	g.pointer(mx, my)
	g.scroll(dt)

	hx, hy := 0, 0
	hovering := false
	if g.drag == nil && mx >= 0 && my >= 0 && mx < g.width && my < g.height {
		hx, hy = g.cam.cell(float64(mx), float64(my), g.width, g.height)
		_, hovering = g.homes[[2]int{hx, hy}]
	}
	g.hovers.Advance(hx, hy, hovering)

	g.crowd.Step(dt)
	g.sky.Step(dt)
	if g.raining {
		g.rain.Step(dt)
	}
	return nil
}

// pointer handles wheel zoom, drag panning, and click release.
func (g *Game) pointer(mx, my int) {
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.cam.zoomAt(float64(mx), float64(my), wheelY, g.width, g.height)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.drag = &dragState{fromX: mx, fromY: my, camX: g.cam.X, camY: g.cam.Y}
	}
	if g.drag == nil {
		return
	}

	dx, dy := mx-g.drag.fromX, my-g.drag.fromY
	if abs(dx)+abs(dy) > clickSlop {
		g.drag.moved = true
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.cam.X = g.drag.camX - float64(dx)/g.cam.Zoom
		g.cam.Y = g.drag.camY - float64(dy)/g.cam.Zoom
		return
	}
	if !g.drag.moved {
		g.click(mx, my)
	}
	g.drag = nil
}

// click sends a visitor strolling from the plaza to the clicked house.
func (g *Game) click(mx, my int) {
	gx, gy := g.cam.cell(float64(mx), float64(my), g.width, g.height)
	h, ok := g.homes[[2]int{gx, gy}]
	if !ok {
		return
	}
	g.crowd.Visit(0, 0, float64(h.X), float64(h.Y))
}

// scroll applies arrow-key panning.
func (g *Game) scroll(dt float64) {
	d := arrowPan * dt / g.cam.Zoom
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.cam.X -= d
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.cam.X += d
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.cam.Y -= d
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.cam.Y += d
	}
}

// Draw paints one frame: flat sky, cloud shadows, the town, then the
// airborne layers and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	bg := g.proj.Background
	if g.night {
		bg = style.Night(bg)
	}
	screen.Fill(fillColor(bg))

	s := canvas.New(screen, g.cam.view(g.width, g.height))
	ctx := render.Context{S: s, Phase: g.phase, Night: g.night}

	// Shadows go under the town so houses are never dimmed by a passing
	// cloud's silhouette.
	for _, cl := range g.sky.Clouds {
		render.CloudShadow(ctx, geo.Point{X: cl.Pos.X, Y: cl.Pos.Y + shadowDrop}, cl.Scale)
	}

	scene.Compose(s, g.snap, scene.Options{
		Phase:   g.phase,
		Night:   g.night,
		Hover:   func(h *city.House) float64 { return g.hovers.At(h.X, h.Y) },
		Ground:  g.ground,
		Walkers: g.crowd.Snapshot(),
	})

	for _, cl := range g.sky.Clouds {
		render.Cloud(ctx, cl.Pos, cl.Scale, cl.Seed)
	}
	if g.raining {
		for _, d := range g.rain.Drops {
			render.Raindrop(ctx, geo.Point{X: d.X, Y: d.Y}, d.Len)
		}
	}

	g.hud(screen)
}

// hud draws the fixed caption through a unit view so it ignores the
// camera.
func (g *Game) hud(screen *ebiten.Image) {
	ink := "#2d3436"
	if g.night {
		ink = "#dfe6e9"
	}
	s := canvas.New(screen, canvas.View{Zoom: 1})
	s.Text(16, 30, g.proj.Title, draw.TextOpts{Size: 20, Fill: ink, Bold: true})
	s.Text(16, 50, fmt.Sprintf("population %d", g.snap.Population()),
		draw.TextOpts{Size: 12, Fill: ink})
	s.Text(16, float64(g.height)-14,
		"drag to pan · wheel to zoom · click a house for a visitor · n night · r rain",
		draw.TextOpts{Size: 11, Fill: ink})
}

// Layout tracks the outside size so resizing the window widens the view
// instead of stretching it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// crowdSize picks the ambient walker population for a town size.
func crowdSize(pop int) int {
	n := 2 + pop/3
	if n > 14 {
		n = 14
	}
	return n
}

func cloudCount(b geo.Rect) int {
	return 3 + int(b.Width())/800
}

func rainCount(b geo.Rect) int {
	n := int(b.Width() / 18)
	if n < 24 {
		n = 24
	}
	return n
}

// fillColor converts a palette hex into the flat background pixel.
func fillColor(hex string) color.RGBA {
	c, ok := style.ParseHex(hex)
	if !ok {
		c, _ = style.ParseHex(style.DefaultBase)
	}
	r, grn, b := c.RGB255()
	return color.RGBA{R: r, G: grn, B: b, A: 0xff}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
