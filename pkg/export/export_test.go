package export

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/gitville/pkg/city"
	"github.com/ChicagoDave/gitville/pkg/scene"
	"github.com/ChicagoDave/gitville/pkg/style"
)

func sample(weather, timeOfDay string) *city.Snapshot {
	snap := city.Fallback()
	snap.World = city.World{Weather: weather, TimeOfDay: timeOfDay}
	return snap
}

func parseXML(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		require.NoError(t, err, "document is not well-formed markup")
	}
}

func TestViewportFramesGroundCarpet(t *testing.T) {
	vp := Viewport(scene.CellRect{MinX: -2, MinY: -2, MaxX: 2, MaxY: 2}, 120, 50)
	assert.Equal(t, -370.0, vp.Min.X)
	assert.Equal(t, -295.0, vp.Min.Y)
	assert.Equal(t, 370.0, vp.Max.X)
	assert.Equal(t, 245.0, vp.Max.Y)
}

func TestDocumentDeterministic(t *testing.T) {
	proj := city.DefaultProject()
	a := Document(sample(city.WeatherNone, city.TimeDay), proj)
	b := Document(sample(city.WeatherNone, city.TimeDay), proj)
	require.Equal(t, a, b, "same snapshot must export identical bytes")
}

func TestDocumentWellFormed(t *testing.T) {
	for _, tc := range []struct {
		name    string
		weather string
		tod     string
	}{
		{"day", city.WeatherNone, city.TimeDay},
		{"night", city.WeatherNone, city.TimeNight},
		{"rain", city.WeatherRain, city.TimeDay},
	} {
		t.Run(tc.name, func(t *testing.T) {
			parseXML(t, Document(sample(tc.weather, tc.tod), city.DefaultProject()))
		})
	}
}

func TestDocumentDayLayers(t *testing.T) {
	proj := city.DefaultProject()
	doc := Document(sample(city.WeatherNone, city.TimeDay), proj)

	assert.Contains(t, doc, proj.Background, "background preset")
	assert.Contains(t, doc, "@keyframes drift", "cloud drift animation")
	assert.Contains(t, doc, "@keyframes sway", "tree sway animation")
	assert.Contains(t, doc, `id="vignette"`)
	assert.Contains(t, doc, ">GitVille<", "title text")
	assert.Contains(t, doc, ">population 5<", "fallback town has five residents")
	assert.NotContains(t, doc, "@keyframes flicker", "no fireflies in daylight")
	assert.NotContains(t, doc, "@keyframes fall", "no rain in calm weather")
}

func TestDocumentNightLayers(t *testing.T) {
	proj := city.DefaultProject()
	doc := Document(sample(city.WeatherNone, city.TimeNight), proj)

	assert.Contains(t, doc, style.Night(proj.Background), "background gets the night tint")
	assert.Contains(t, doc, "@keyframes flicker", "fireflies at night")
	assert.Contains(t, doc, "#dfe6e9", "caption ink flips for dark sky")
}

func TestDocumentRainLayer(t *testing.T) {
	doc := Document(sample(city.WeatherRain, city.TimeDay), city.DefaultProject())
	assert.Contains(t, doc, "@keyframes fall")
	assert.Contains(t, doc, `class="fall"`)
}

func TestDocumentEmptyTown(t *testing.T) {
	snap := &city.Snapshot{World: city.World{Weather: city.WeatherNone, TimeOfDay: city.TimeDay}}
	doc := Document(snap, city.DefaultProject())
	parseXML(t, doc)
	assert.Contains(t, doc, ">population 0<")
}

func TestWriteAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "town.svg")
	snap := sample(city.WeatherNone, city.TimeDay)
	proj := city.DefaultProject()

	require.NoError(t, Write(path, snap, proj))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Document(snap, proj), string(data))

	// Overwrite with a different world and confirm replacement.
	require.NoError(t, Write(path, sample(city.WeatherNone, city.TimeNight), proj))
	night, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, string(data), string(night))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files may survive an export")
}
