// Package svg implements the retained vector backend of draw.Surface.
// Paint calls append elements to the document body, so paint order equals
// document order. Translation folds into emitted coordinates; only groups,
// clip paths and gradients introduce document structure.
package svg

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/ChicagoDave/gitville/pkg/draw"
	"github.com/ChicagoDave/gitville/pkg/geo"
)

type state struct {
	fill   string
	stroke string
	width  float64
	alpha  float64
	dash   []float64
	tx, ty float64
	clip   string
}

type pathBuf struct {
	d    []string
	cmds int
	// only is 'c' or 'e' while the path holds exactly one circle or
	// ellipse command; such paths emit as <circle>/<ellipse> elements.
	only           byte
	cx, cy, rx, ry float64
}

// Canvas builds a standalone SVG document from surface calls.
type Canvas struct {
	bounds     geo.Rect
	background string

	defs    []string
	body    []string
	classes map[string]bool
	clipSeq int

	cur   state
	stack []state
	path  pathBuf
}

// New returns a canvas whose viewBox covers bounds.
func New(bounds geo.Rect) *Canvas {
	return &Canvas{
		bounds:  bounds,
		classes: map[string]bool{},
		cur:     state{fill: "#000000", stroke: "#000000", width: 1, alpha: 1},
	}
}

// SetBackground sets the document background color.
func (c *Canvas) SetBackground(color string) { c.background = color }

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.cur = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *Canvas) Translate(dx, dy float64) {
	c.cur.tx += dx
	c.cur.ty += dy
}

func (c *Canvas) BeginPath() { c.path = pathBuf{} }

func (c *Canvas) pathCmd(s string) {
	c.path.d = append(c.path.d, s)
	c.path.cmds++
	c.path.only = 'x'
}

func (c *Canvas) MoveTo(x, y float64) {
	c.pathCmd(fmt.Sprintf("M %s %s", f2(x+c.cur.tx), f2(y+c.cur.ty)))
}

func (c *Canvas) LineTo(x, y float64) {
	c.pathCmd(fmt.Sprintf("L %s %s", f2(x+c.cur.tx), f2(y+c.cur.ty)))
}

func (c *Canvas) QuadTo(cx, cy, x, y float64) {
	c.pathCmd(fmt.Sprintf("Q %s %s %s %s",
		f2(cx+c.cur.tx), f2(cy+c.cur.ty), f2(x+c.cur.tx), f2(y+c.cur.ty)))
}

func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.pathCmd(fmt.Sprintf("C %s %s %s %s %s %s",
		f2(c1x+c.cur.tx), f2(c1y+c.cur.ty),
		f2(c2x+c.cur.tx), f2(c2y+c.cur.ty),
		f2(x+c.cur.tx), f2(y+c.cur.ty)))
}

func (c *Canvas) ClosePath() { c.pathCmd("Z") }

func (c *Canvas) Circle(cx, cy, r float64) { c.ellipseCmd('c', cx, cy, r, r) }

func (c *Canvas) Ellipse(cx, cy, rx, ry float64) { c.ellipseCmd('e', cx, cy, rx, ry) }

func (c *Canvas) ellipseCmd(kind byte, cx, cy, rx, ry float64) {
	cx += c.cur.tx
	cy += c.cur.ty
	if c.path.cmds == 0 {
		c.path.only = kind
		c.path.cx, c.path.cy, c.path.rx, c.path.ry = cx, cy, rx, ry
	} else {
		c.path.only = 'x'
	}
	c.path.d = append(c.path.d, fmt.Sprintf("M %s %s A %s %s 0 1 0 %s %s A %s %s 0 1 0 %s %s Z",
		f2(cx-rx), f2(cy), f2(rx), f2(ry), f2(cx+rx), f2(cy),
		f2(rx), f2(ry), f2(cx-rx), f2(cy)))
	c.path.cmds++
}

func (c *Canvas) SetFill(color string)      { c.cur.fill = color }
func (c *Canvas) SetStroke(color string)    { c.cur.stroke = color }
func (c *Canvas) SetLineWidth(w float64)    { c.cur.width = w }
func (c *Canvas) SetAlpha(a float64)        { c.cur.alpha = a }
func (c *Canvas) SetDash(pattern []float64) { c.cur.dash = pattern }

func (c *Canvas) Fill() {
	c.emitShape(fmt.Sprintf(` fill="%s"`, c.cur.fill))
}

func (c *Canvas) Stroke() {
	var b strings.Builder
	fmt.Fprintf(&b, ` fill="none" stroke="%s" stroke-width="%s"`, c.cur.stroke, f2(c.cur.width))
	if len(c.cur.dash) > 0 {
		fmt.Fprintf(&b, ` stroke-dasharray="%s"`, dashList(c.cur.dash))
	}
	c.emitShape(b.String())
}

func (c *Canvas) emitShape(paint string) {
	if c.cur.alpha != 1 {
		paint += fmt.Sprintf(` opacity="%s"`, f2(c.cur.alpha))
	}
	if c.cur.clip != "" {
		paint += fmt.Sprintf(` clip-path="url(#%s)"`, c.cur.clip)
	}
	var el string
	switch {
	case c.path.cmds == 1 && c.path.only == 'c':
		el = fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s"%s />`,
			f2(c.path.cx), f2(c.path.cy), f2(c.path.rx), paint)
	case c.path.cmds == 1 && c.path.only == 'e':
		el = fmt.Sprintf(`<ellipse cx="%s" cy="%s" rx="%s" ry="%s"%s />`,
			f2(c.path.cx), f2(c.path.cy), f2(c.path.rx), f2(c.path.ry), paint)
	default:
		el = fmt.Sprintf(`<path d="%s"%s />`, strings.Join(c.path.d, " "), paint)
	}
	c.body = append(c.body, el)
}

// Clip registers the current path as a clipPath def and applies it to
// subsequent paints. An already active clip is intersected by chaining
// the clip-path attribute onto the new def's content.
func (c *Canvas) Clip() {
	c.clipSeq++
	id := fmt.Sprintf("clip%d", c.clipSeq)
	inner := ""
	if c.cur.clip != "" {
		inner = fmt.Sprintf(` clip-path="url(#%s)"`, c.cur.clip)
	}
	c.defs = append(c.defs, fmt.Sprintf(`<clipPath id="%s"><path d="%s"%s /></clipPath>`,
		id, strings.Join(c.path.d, " "), inner))
	c.cur.clip = id
}

func (c *Canvas) ResetClip() { c.cur.clip = "" }

func (c *Canvas) BeginGroup(name, class string) {
	var b strings.Builder
	b.WriteString("<g")
	if name != "" {
		fmt.Fprintf(&b, ` id="%s"`, escape(name))
	}
	if class != "" {
		fmt.Fprintf(&b, ` class="%s"`, escape(class))
		for _, cl := range strings.Fields(class) {
			c.classes[cl] = true
		}
	}
	b.WriteString(">")
	c.body = append(c.body, b.String())
}

func (c *Canvas) EndGroup() {
	c.body = append(c.body, "</g>")
}

func (c *Canvas) Text(x, y float64, s string, opts draw.TextOpts) {
	anchor := opts.Anchor
	if anchor == "" {
		anchor = draw.AnchorStart
	}
	fill := opts.Fill
	if fill == "" {
		fill = c.cur.fill
	}
	weight := ""
	if opts.Bold {
		weight = ` font-weight="bold"`
	}
	c.body = append(c.body, fmt.Sprintf(
		`<text x="%s" y="%s" font-family="Verdana, sans-serif" font-size="%s" text-anchor="%s"%s fill="%s">%s</text>`,
		f2(x+c.cur.tx), f2(y+c.cur.ty), f2(opts.Size), anchor, weight, fill, escape(s)))
}

// GradientStop is one color stop of a defined gradient. Offset runs 0..1.
type GradientStop struct {
	Offset  float64
	Color   string
	Opacity float64
}

// DefineRadialGradient registers a centered radial gradient usable as a
// fill via Paint(id).
func (c *Canvas) DefineRadialGradient(id string, stops []GradientStop) {
	var b strings.Builder
	fmt.Fprintf(&b, `<radialGradient id="%s">`, escape(id))
	for _, s := range stops {
		fmt.Fprintf(&b, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`,
			f2(s.Offset), s.Color, f2(s.Opacity))
	}
	b.WriteString("</radialGradient>")
	c.defs = append(c.defs, b.String())
}

// Paint returns the fill value referencing a defined gradient.
func Paint(id string) string { return fmt.Sprintf("url(#%s)", id) }

// Doc assembles the document. The canvas can keep receiving calls and be
// assembled again.
func (c *Canvas) Doc() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s"`,
		f2(c.bounds.Min.X), f2(c.bounds.Min.Y), f2(c.bounds.Width()), f2(c.bounds.Height()))
	if c.background != "" {
		fmt.Fprintf(&b, ` style="background-color: %s;"`, c.background)
	}
	b.WriteString(">\n")

	style := c.styleSheet()
	if style != "" || len(c.defs) > 0 {
		b.WriteString("<defs>\n")
		if style != "" {
			b.WriteString("<style>\n")
			b.WriteString(style)
			b.WriteString("</style>\n")
		}
		for _, d := range c.defs {
			b.WriteString(d)
			b.WriteString("\n")
		}
		b.WriteString("</defs>\n")
	}
	for _, el := range c.body {
		b.WriteString(el)
		b.WriteString("\n")
	}
	b.WriteString("</svg>\n")
	return b.String()
}

// Animation classes understood by the stylesheet. Groups opt in through
// BeginGroup's class; rules are emitted only for classes actually used.
var classOrder = []string{
	"sway", "sway-1", "sway-2", "sway-3",
	"drift", "drift-1", "drift-2", "drift-3",
	"flicker", "flicker-1", "flicker-2",
	"fall",
}

var classRules = map[string]string{
	"sway": "@keyframes sway { 0%, 100% { transform: rotate(-1.4deg); } 50% { transform: rotate(1.4deg); } }\n" +
		".sway { animation: sway 4s ease-in-out infinite; transform-box: fill-box; transform-origin: 50% 100%; }",
	"sway-1": ".sway-1 { animation-delay: -0.9s; }",
	"sway-2": ".sway-2 { animation-delay: -1.8s; }",
	"sway-3": ".sway-3 { animation-delay: -2.7s; }",
	"drift": "@keyframes drift { from { transform: translateX(-30px); } to { transform: translateX(30px); } }\n" +
		".drift { animation: drift 26s ease-in-out infinite alternate; }",
	"drift-1": ".drift-1 { animation-delay: -6s; }",
	"drift-2": ".drift-2 { animation-delay: -13s; }",
	"drift-3": ".drift-3 { animation-delay: -19s; }",
	"flicker": "@keyframes flicker { 0%, 100% { opacity: 0.9; } 50% { opacity: 0.1; } }\n" +
		".flicker { animation: flicker 2.4s ease-in-out infinite; }",
	"flicker-1": ".flicker-1 { animation-delay: -0.8s; }",
	"flicker-2": ".flicker-2 { animation-delay: -1.6s; }",
	"fall": "@keyframes fall { from { transform: translateY(-30px); } to { transform: translateY(30px); } }\n" +
		".fall { animation: fall 0.8s linear infinite; }",
}

func (c *Canvas) styleSheet() string {
	var rules []string
	for _, cl := range classOrder {
		if c.classes[cl] {
			rules = append(rules, classRules[cl])
		}
	}
	if len(rules) == 0 {
		return ""
	}
	return strings.Join(rules, "\n") + "\n"
}

func f2(v float64) string { return fmt.Sprintf("%.2f", v) }

func dashList(dash []float64) string {
	parts := make([]string, len(dash))
	for i, d := range dash {
		parts[i] = f2(d)
	}
	return strings.Join(parts, " ")
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
