package style

import (
	"math"
	"testing"
)

func TestVariantDeterminism(t *testing.T) {
	for gx := -20; gx <= 20; gx += 3 {
		for gy := -20; gy <= 20; gy += 3 {
			a := VariantAt(gx, gy, AspectRoof, VariantCount)
			b := VariantAt(gx, gy, AspectRoof, VariantCount)
			if a != b {
				t.Fatalf("variant at (%d,%d) unstable: %d vs %d", gx, gy, a, b)
			}
			if a < 0 || a >= VariantCount {
				t.Fatalf("variant at (%d,%d) out of range: %d", gx, gy, a)
			}
		}
	}
}

func TestOriginDefaultsToVariantZero(t *testing.T) {
	// A resident with no recorded styles gets the plain default look on
	// the founder tile: sin(0) selects variant 0 for every aspect.
	for a := AspectRoof; a <= AspectTree; a++ {
		if got := Resolve(nil, 0, 0, a, false); got != 0 {
			t.Errorf("aspect %d at origin resolves to variant %d, want 0", a, got)
		}
	}
}

func TestVariantAspectsDecorrelate(t *testing.T) {
	// Across a sample of tiles, distinct aspects must not always agree;
	// otherwise every tile would get roof i + door i + window i.
	same := 0
	total := 0
	for gx := 0; gx < 12; gx++ {
		for gy := 0; gy < 12; gy++ {
			r := VariantAt(gx, gy, AspectRoof, VariantCount)
			d := VariantAt(gx, gy, AspectDoor, VariantCount)
			w := VariantAt(gx, gy, AspectWindow, VariantCount)
			if r == d && d == w {
				same++
			}
			total++
		}
	}
	if same == total {
		t.Fatal("all aspects collapsed to the same variant on every tile")
	}
	if same > total/2 {
		t.Errorf("aspects agree on %d/%d tiles, expected mostly independent", same, total)
	}
}

func TestVariantCoversAllValues(t *testing.T) {
	seen := map[int]bool{}
	for gx := 0; gx < 30; gx++ {
		for gy := 0; gy < 30; gy++ {
			seen[VariantAt(gx, gy, AspectWall, VariantCount)] = true
		}
	}
	for v := 0; v < VariantCount; v++ {
		if !seen[v] {
			t.Errorf("variant %d never selected over a 30x30 grid", v)
		}
	}
}

func TestNoise01Range(t *testing.T) {
	for gx := -15; gx <= 15; gx++ {
		for gy := -15; gy <= 15; gy++ {
			v := Noise01(gx, gy, AspectTuft)
			if v < 0 || v >= 1 {
				t.Fatalf("noise at (%d,%d) out of range: %f", gx, gy, v)
			}
		}
	}
}

func TestClampVariant(t *testing.T) {
	cases := []struct {
		in           int
		allowDamaged bool
		want         int
	}{
		{0, false, 0},
		{3, false, 3},
		{-1, false, 0},
		{7, false, 0},
		{Damaged, false, 0},
		{Damaged, true, Damaged},
		{99, true, 0},
	}
	for _, c := range cases {
		if got := ClampVariant(c.in, c.allowDamaged); got != c.want {
			t.Errorf("ClampVariant(%d,%v) = %d, want %d", c.in, c.allowDamaged, got, c.want)
		}
	}
}

func TestResolveExplicitWins(t *testing.T) {
	two := 2
	if got := Resolve(&two, 5, 5, AspectRoof, false); got != 2 {
		t.Errorf("expected explicit variant 2, got %d", got)
	}
	bad := -9
	if got := Resolve(&bad, 5, 5, AspectRoof, false); got != 0 {
		t.Errorf("expected clamped variant 0, got %d", got)
	}
	derived := Resolve(nil, 5, 5, AspectRoof, false)
	if derived != VariantAt(5, 5, AspectRoof, VariantCount) {
		t.Error("expected nil to fall back to the grid-derived variant")
	}
}

func TestDarken(t *testing.T) {
	// 20 points = 50/255 per channel.
	got := Darken("#ff6b6b", 20)
	if got != "#cd3939" {
		t.Errorf("Darken(#ff6b6b,20) = %s, want #cd3939", got)
	}
	// Channels clamp at zero.
	if got := Darken("#050505", 50); got != "#000000" {
		t.Errorf("expected clamp to black, got %s", got)
	}
	// Malformed input degrades to the neutral grey.
	if got := Darken("nonsense", 20); got != "#555555" {
		t.Errorf("expected #555555 fallback, got %s", got)
	}
}

func TestLightenTowardWhite(t *testing.T) {
	if got := Lighten("#000000", 1); got != "#ffffff" {
		t.Errorf("expected #ffffff, got %s", got)
	}
	if got := Lighten("#888888", 0); got != "#888888" {
		t.Errorf("expected unchanged color, got %s", got)
	}
}

func TestAlphaFormat(t *testing.T) {
	if got := Alpha("#ff0000", 0.5); got != "rgba(255,0,0,0.50)" {
		t.Errorf("unexpected rgba string: %s", got)
	}
}

func TestNightDarkens(t *testing.T) {
	c, _ := ParseHex(Night("#fdfbf7"))
	base, _ := ParseHex("#fdfbf7")
	ln, _, _ := c.Lab()
	ld, _, _ := base.Lab()
	if ln >= ld {
		t.Errorf("expected night tone darker: %f vs %f", ln, ld)
	}
}

func TestHousePaletteNormal(t *testing.T) {
	p := HousePalette("#ff6b6b", false)
	if p.Wall != "#fdfbf7" || p.WallShadow != "#e0dad1" {
		t.Errorf("unexpected wall colors: %+v", p)
	}
	if p.RoofMain != "#cd3939" {
		t.Errorf("expected roof #cd3939, got %s", p.RoofMain)
	}
	if p.RoofDark != "#9b0707" {
		t.Errorf("expected dark roof #9b0707, got %s", p.RoofDark)
	}
}

func TestHousePaletteAbandonedIgnoresBase(t *testing.T) {
	a := HousePalette("#ff6b6b", true)
	b := HousePalette("#00ff00", true)
	if a != b {
		t.Error("abandoned palette must not depend on the base color")
	}
	if a.Wall != "#95a5a6" || a.Glass != "#2d3436" || a.Door != "#2d3436" {
		t.Errorf("unexpected abandoned palette: %+v", a)
	}
}

func TestHousePaletteBadBase(t *testing.T) {
	p := HousePalette("not-a-color", false)
	want := HousePalette(DefaultBase, false)
	if p != want {
		t.Error("expected malformed base to fall back to the default hue")
	}
}

func TestColorFor(t *testing.T) {
	if got := ColorFor("octocat"); got != "#554660" {
		t.Errorf("ColorFor(octocat) = %s, want #554660", got)
	}
	if got := ColorFor("ada"); got != "#8c8d35" {
		t.Errorf("ColorFor(ada) = %s, want #8c8d35", got)
	}
}

func TestStylesFor(t *testing.T) {
	// md5("octocat") = 554660db... -> digits 5,5,4,6,6 -> mod 4.
	got := StylesFor("octocat")
	want := Styles{Roof: 1, Door: 1, Window: 0, Chimney: 2, Wall: 2}
	if got != want {
		t.Errorf("StylesFor(octocat) = %+v, want %+v", got, want)
	}
	// md5("grace") = 15e5c8... -> 1,5,14,5,12 -> mod 4.
	got = StylesFor("grace")
	want = Styles{Roof: 1, Door: 1, Window: 2, Chimney: 1, Wall: 0}
	if got != want {
		t.Errorf("StylesFor(grace) = %+v, want %+v", got, want)
	}
}

func TestNoiseXYMatchesNoise01OnIntegers(t *testing.T) {
	if math.Abs(NoiseXY(4, -7, AspectVine)-Noise01(4, -7, AspectVine)) > 1e-12 {
		t.Error("NoiseXY must agree with Noise01 on integer coordinates")
	}
}
