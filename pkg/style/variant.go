// Package style derives every per-entity visual choice: variant indices for
// geometry aspects, deterministic placement noise, and the color palette.
// Nothing here keeps state; the same inputs yield the same answers across
// frames and across process restarts, which is what keeps re-renders stable
// without persisting style choices.
package style

import "math"

// Aspect names one visual dimension of an entity. Each aspect mixes the
// grid position with its own seed row so distinct aspects decorrelate on
// the same tile.
type Aspect int

const (
	AspectRoof Aspect = iota
	AspectDoor
	AspectWindow
	AspectChimney
	AspectWall
	AspectTuft
	AspectFlower
	AspectHole
	AspectVine
	AspectRubble
	AspectSway
	AspectWobble
	AspectShade
	AspectScatter
	AspectTree
)

// hashScale spreads the sine output so neighboring integer cells land far
// apart after the mod.
const hashScale = 43758.5453

// No additive term in the hash: sin(0) = 0, so every aspect resolves to
// variant 0 at the origin. A house with no recorded styles therefore keeps
// the plain default look on the founder tile.
var aspectSeeds = [...]struct{ fx, fy float64 }{
	AspectRoof:    {12.9898, 78.2330},
	AspectDoor:    {39.3468, 11.1350},
	AspectWindow:  {26.6514, 53.7420},
	AspectChimney: {95.4307, 27.1680},
	AspectWall:    {61.7219, 33.8910},
	AspectTuft:    {17.9374, 59.4930},
	AspectFlower:  {83.1553, 21.7070},
	AspectHole:    {45.2361, 67.3190},
	AspectVine:    {71.0419, 13.5770},
	AspectRubble:  {29.8317, 91.2210},
	AspectSway:    {53.6091, 41.8530},
	AspectWobble:  {67.4827, 19.1390},
	AspectShade:   {11.1213, 47.9890},
	AspectScatter: {37.7581, 73.4630},
	AspectTree:    {89.2157, 31.5490},
}

// value is the raw hash: abs(sin(x*fx + y*fy) * scale).
func value(x, y float64, a Aspect) float64 {
	s := aspectSeeds[a]
	return math.Abs(math.Sin(x*s.fx+y*s.fy) * hashScale)
}

// VariantAt returns a stable variant index in [0,n) for a grid cell.
func VariantAt(gx, gy int, a Aspect, n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Mod(value(float64(gx), float64(gy), a), float64(n)))
}

// Noise01 returns a stable value in [0,1) for a grid cell.
func Noise01(gx, gy int, a Aspect) float64 {
	return NoiseXY(float64(gx), float64(gy), a)
}

// NoiseXY is Noise01 over continuous coordinates. Builders feed local
// vertex coordinates through it for effects like the abandoned wobble,
// which must depend on geometry rather than on time.
func NoiseXY(x, y float64, a Aspect) float64 {
	v := value(x, y, a)
	return v - math.Floor(v)
}

// Variant counts and sentinels. Every aspect has four regular variants;
// roof, door and window additionally accept the damaged sentinel, which
// forces boarded/broken geometry.
const (
	VariantCount = 4
	Damaged      = 4
)

// ClampVariant folds any out-of-range index to variant 0. Variant fields
// are a closed enum with a safe default, never an error.
func ClampVariant(v int, allowDamaged bool) int {
	if v >= 0 && v < VariantCount {
		return v
	}
	if allowDamaged && v == Damaged {
		return v
	}
	return 0
}

// Resolve picks the variant for an aspect: the explicit index when the
// entity carries one, otherwise the deterministic grid-derived one.
func Resolve(explicit *int, gx, gy int, a Aspect, allowDamaged bool) int {
	if explicit != nil {
		return ClampVariant(*explicit, allowDamaged)
	}
	return VariantAt(gx, gy, a, VariantCount)
}
