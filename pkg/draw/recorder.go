package draw

import "github.com/ChicagoDave/gitville/pkg/geo"

// Op is one recorded paint event.
type Op struct {
	Kind   string // "fill", "stroke", "clip", "resetclip", "group", "endgroup", "text"
	Color  string
	Width  float64
	Alpha  float64
	Dashed bool
	Name   string // group name, or the text string
	Class  string // group class, or the text anchor
	Bold   bool
	At     geo.Point   // text position, absolute
	Pts    []geo.Point // path points, absolute
}

type recorderState struct {
	fill   string
	stroke string
	width  float64
	alpha  float64
	dash   []float64
	tx, ty float64
}

// Recorder is a Surface that records paint calls for tests. Path commands
// accumulate into a pending path; Fill, Stroke and Clip consume it and
// append an Op carrying the paint state and the path's points translated
// to absolute coordinates.
type Recorder struct {
	Ops []Op

	// Dangling counts paths that were begun but never painted. SaveDepth
	// and GroupDepth end nonzero when a builder leaks Save or BeginGroup.
	Dangling   int
	SaveDepth  int
	GroupDepth int

	cur      recorderState
	stack    []recorderState
	path     []geo.Point
	pathOpen bool
}

func NewRecorder() *Recorder {
	return &Recorder{cur: recorderState{width: 1, alpha: 1}}
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.cur)
	r.SaveDepth++
}

func (r *Recorder) Restore() {
	if n := len(r.stack); n > 0 {
		r.cur = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
	r.SaveDepth--
}

func (r *Recorder) Translate(dx, dy float64) {
	r.cur.tx += dx
	r.cur.ty += dy
}

func (r *Recorder) BeginPath() {
	if r.pathOpen && len(r.path) > 0 {
		r.Dangling++
	}
	r.path = r.path[:0]
	r.pathOpen = true
}

func (r *Recorder) addPt(x, y float64) {
	r.path = append(r.path, geo.Point{X: x + r.cur.tx, Y: y + r.cur.ty})
}

func (r *Recorder) MoveTo(x, y float64) { r.addPt(x, y) }
func (r *Recorder) LineTo(x, y float64) { r.addPt(x, y) }

func (r *Recorder) QuadTo(cx, cy, x, y float64) {
	r.addPt(cx, cy)
	r.addPt(x, y)
}

func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.addPt(c1x, c1y)
	r.addPt(c2x, c2y)
	r.addPt(x, y)
}

func (r *Recorder) ClosePath() {}

func (r *Recorder) Circle(cx, cy, radius float64) { r.addPt(cx, cy) }

func (r *Recorder) Ellipse(cx, cy, rx, ry float64) { r.addPt(cx, cy) }

func (r *Recorder) SetFill(color string)      { r.cur.fill = color }
func (r *Recorder) SetStroke(color string)    { r.cur.stroke = color }
func (r *Recorder) SetLineWidth(w float64)    { r.cur.width = w }
func (r *Recorder) SetAlpha(a float64)        { r.cur.alpha = a }
func (r *Recorder) SetDash(pattern []float64) { r.cur.dash = pattern }

func (r *Recorder) paint(kind, color string) {
	op := Op{
		Kind:   kind,
		Color:  color,
		Width:  r.cur.width,
		Alpha:  r.cur.alpha,
		Dashed: len(r.cur.dash) > 0,
		Pts:    append([]geo.Point(nil), r.path...),
	}
	r.Ops = append(r.Ops, op)
	r.pathOpen = false
}

func (r *Recorder) Fill()   { r.paint("fill", r.cur.fill) }
func (r *Recorder) Stroke() { r.paint("stroke", r.cur.stroke) }
func (r *Recorder) Clip()   { r.paint("clip", "") }

func (r *Recorder) ResetClip() {
	r.Ops = append(r.Ops, Op{Kind: "resetclip"})
}

func (r *Recorder) BeginGroup(name, class string) {
	r.Ops = append(r.Ops, Op{Kind: "group", Name: name, Class: class})
	r.GroupDepth++
}

func (r *Recorder) EndGroup() {
	r.Ops = append(r.Ops, Op{Kind: "endgroup"})
	r.GroupDepth--
}

func (r *Recorder) Text(x, y float64, s string, opts TextOpts) {
	r.Ops = append(r.Ops, Op{
		Kind:  "text",
		Name:  s,
		Color: opts.Fill,
		Width: opts.Size,
		Class: opts.Anchor,
		Bold:  opts.Bold,
		At:    geo.Point{X: x + r.cur.tx, Y: y + r.cur.ty},
	})
}

// Balanced reports whether every begun path was painted and every Save
// and BeginGroup was closed.
func (r *Recorder) Balanced() bool {
	open := r.pathOpen && len(r.path) > 0
	return r.Dangling == 0 && r.SaveDepth == 0 && r.GroupDepth == 0 && !open
}

// OfKind returns the recorded ops of one kind, in order.
func (r *Recorder) OfKind(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) Fills() []Op   { return r.OfKind("fill") }
func (r *Recorder) Strokes() []Op { return r.OfKind("stroke") }
func (r *Recorder) Texts() []Op   { return r.OfKind("text") }

// FillColors returns the colors of all fill ops, in paint order.
func (r *Recorder) FillColors() []string {
	var out []string
	for _, op := range r.Fills() {
		out = append(out, op.Color)
	}
	return out
}

// FirstFill returns the index in Ops of the first fill with the given
// color, or -1.
func (r *Recorder) FirstFill(color string) int {
	for i, op := range r.Ops {
		if op.Kind == "fill" && op.Color == color {
			return i
		}
	}
	return -1
}

// HasGroup reports whether a group with the given class was opened.
func (r *Recorder) HasGroup(class string) bool {
	for _, op := range r.Ops {
		if op.Kind == "group" && op.Class == class {
			return true
		}
	}
	return false
}
