package canvas

import (
	"math"

	"github.com/ChicagoDave/gitville/pkg/geo"
)

// expandDash walks a polyline and splits it into the "on" runs of the
// repeating dash pattern. Pattern lengths are in the same units as the
// points. A nil or zero-length pattern returns the polyline unchanged.
func expandDash(pts []geo.Point, pattern []float64) [][]geo.Point {
	if len(pts) < 2 {
		return nil
	}
	total := 0.0
	for _, d := range pattern {
		total += d
	}
	if total <= 0 {
		return [][]geo.Point{pts}
	}

	var runs [][]geo.Point
	cur := []geo.Point{pts[0]}
	on := true
	idx := 0
	remaining := pattern[0]

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := a.Distance(b)
		pos := 0.0
		for segLen-pos > 1e-9 {
			step := math.Min(remaining, segLen-pos)
			pos += step
			remaining -= step
			pt := a.Lerp(b, pos/segLen)
			if on {
				cur = append(cur, pt)
			}
			if remaining <= 1e-9 {
				if on {
					runs = append(runs, cur)
					cur = nil
				} else {
					cur = []geo.Point{pt}
				}
				on = !on
				idx = (idx + 1) % len(pattern)
				remaining = pattern[idx]
			}
		}
	}
	if on && len(cur) > 1 {
		runs = append(runs, cur)
	}
	return runs
}
