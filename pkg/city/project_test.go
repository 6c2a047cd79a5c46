package city

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProjectDefaults(t *testing.T) {
	proj, err := LoadProject(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "GitVille", proj.Title)
	assert.Equal(t, "#81c784", proj.Background)
	assert.Equal(t, "city_snapshot.svg", proj.Export.Out)
	assert.Equal(t, 120.0, proj.Export.Pad)
	assert.Equal(t, 50.0, proj.Export.TopPad)
	assert.Equal(t, ":8420", proj.Serve.Addr)
}

func TestLoadProjectOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ProjectFile, `
title: Starfall
weather: rain
export:
  out: town.svg
  pad: 80
serve:
  addr: ":9000"
`)
	proj, err := LoadProject(dir)
	require.NoError(t, err)
	assert.Equal(t, "Starfall", proj.Title)
	assert.Equal(t, "rain", proj.Weather)
	assert.Equal(t, "town.svg", proj.Export.Out)
	assert.Equal(t, 80.0, proj.Export.Pad)
	assert.Equal(t, 50.0, proj.Export.TopPad, "unset preset keeps its default")
	assert.Equal(t, ":9000", proj.Serve.Addr)
}

func TestLoadProjectUnknownKey(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ProjectFile, "zoom_factor: 3\n")
	_, err := LoadProject(dir)
	require.Error(t, err)
}

func TestApplyWorld(t *testing.T) {
	w := World{Weather: WeatherNone, TimeOfDay: TimeDay}

	p := Project{Weather: WeatherRain}
	out := p.ApplyWorld(w)
	assert.Equal(t, WeatherRain, out.Weather)
	assert.Equal(t, TimeDay, out.TimeOfDay)

	p = Project{TimeOfDay: TimeNight}
	out = p.ApplyWorld(w)
	assert.Equal(t, WeatherNone, out.Weather)
	assert.Equal(t, TimeNight, out.TimeOfDay)
}
