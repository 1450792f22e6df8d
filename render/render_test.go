// SPDX-License-Identifier: MIT

package render_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transport-catalogue/catalogue"
	"github.com/katalvlaran/transport-catalogue/geo"
	"github.com/katalvlaran/transport-catalogue/render"
)

// settingsJSON fits a 1°×1° network into the inner 100×100 square of a
// 200×200 canvas, so one degree is 100 units.
const settingsJSON = `{
  "width": 200,
  "height": 200,
  "padding": 50,
  "line_width": 14,
  "stop_radius": 5,
  "bus_label_font_size": 20,
  "bus_label_offset": [7, 15],
  "stop_label_font_size": 18,
  "stop_label_offset": [7, -3],
  "underlayer_color": [255, 255, 255, 0.85],
  "underlayer_width": 3,
  "color_palette": ["green", [255, 160, 0], "red"]
}`

func mustSettings(t *testing.T) render.Settings {
	t.Helper()

	var s render.Settings
	require.NoError(t, json.Unmarshal([]byte(settingsJSON), &s))
	require.NoError(t, s.Validate())

	return s
}

// newCity builds roundtrip bus "14" over A, B, C and linear bus "7" over
// "D & Co", B, C. Stop E is served by no bus.
func newCity(t *testing.T) *catalogue.Catalogue {
	t.Helper()

	c := catalogue.New()
	stops := []struct {
		name     string
		lat, lng float64
	}{
		{"A", 1, 0},
		{"B", 0.5, 0.5},
		{"C", 0, 1},
		{"D & Co", 0, 0},
		{"E", 10, 10},
	}
	for _, s := range stops {
		_, err := c.AddStop(s.name, geo.Coordinates{Lat: s.lat, Lng: s.lng})
		require.NoError(t, err)
	}
	_, err := c.AddBus("7", []string{"D & Co", "B", "C"}, false)
	require.NoError(t, err)
	_, err = c.AddBus("14", []string{"A", "B", "C", "A"}, true)
	require.NoError(t, err)

	return c
}

func TestMap_Golden(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("testdata", "map.svg"))
	require.NoError(t, err)

	got := render.Map(newCity(t), mustSettings(t)).String()
	assert.Equal(t, strings.TrimSuffix(string(want), "\n"), got)
}

func TestMap_Deterministic(t *testing.T) {
	c, s := newCity(t), mustSettings(t)

	first := render.Map(c, s).String()
	for i := 0; i < 5; i++ {
		require.Equal(t, first, render.Map(c, s).String())
	}
}

func TestMap_Empty(t *testing.T) {
	doc := render.Map(catalogue.New(), mustSettings(t))
	assert.Zero(t, doc.Len())
	assert.Equal(t, "<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n"+
		"<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n</svg>", doc.String())
}

func TestMap_NonRoundtripSingleLabelWhenEndsMatch(t *testing.T) {
	c := catalogue.New()
	for i, name := range []string{"A", "B"} {
		_, err := c.AddStop(name, geo.Coordinates{Lat: 0, Lng: float64(i)})
		require.NoError(t, err)
	}
	_, err := c.AddBus("1", []string{"A", "B", "A"}, false)
	require.NoError(t, err)

	doc := render.Map(c, mustSettings(t))
	// 1 polyline, 1 label pair, 2 circles, 2 label pairs.
	assert.Equal(t, 1+2+2+4, doc.Len())
}

func TestMap_PaletteCycles(t *testing.T) {
	c := catalogue.New()
	_, err := c.AddStop("A", geo.Coordinates{})
	require.NoError(t, err)
	for _, name := range []string{"a", "b", "c", "d"} {
		_, err = c.AddBus(name, []string{"A"}, true)
		require.NoError(t, err)
	}

	svg := render.Map(c, mustSettings(t)).String()
	lines := strings.Split(svg, "\n")
	require.Greater(t, len(lines), 6)
	for i, color := range []string{"green", "rgb(255,160,0)", "red", "green"} {
		assert.Contains(t, lines[2+i], `stroke="`+color+`"`, "bus %d", i)
	}
}

func TestProjector(t *testing.T) {
	t.Run("keeps aspect ratio", func(t *testing.T) {
		p := render.NewProjector([]geo.Coordinates{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 2}}, 300, 300, 50)
		// width fit 200/2 = 100 beats height fit 200/1 = 200.
		assert.Equal(t, render.Point{X: 50, Y: 150}, p.Project(geo.Coordinates{Lat: 0, Lng: 0}))
		assert.Equal(t, render.Point{X: 250, Y: 50}, p.Project(geo.Coordinates{Lat: 1, Lng: 2}))
	})
	t.Run("single point", func(t *testing.T) {
		p := render.NewProjector([]geo.Coordinates{{Lat: 5, Lng: 5}}, 300, 300, 20)
		assert.Equal(t, render.Point{X: 20, Y: 20}, p.Project(geo.Coordinates{Lat: 5, Lng: 5}))
	})
	t.Run("vertical line", func(t *testing.T) {
		p := render.NewProjector([]geo.Coordinates{{Lat: 0, Lng: 3}, {Lat: 2, Lng: 3}}, 300, 100, 10)
		assert.Equal(t, render.Point{X: 10, Y: 90}, p.Project(geo.Coordinates{Lat: 0, Lng: 3}))
	})
	t.Run("no points", func(t *testing.T) {
		p := render.NewProjector(nil, 300, 300, 20)
		assert.Equal(t, render.Point{X: 20, Y: 20}, p.Project(geo.Coordinates{Lat: 7, Lng: 7}))
	})
}

func TestSettings_Validate(t *testing.T) {
	cases := map[string]func(s *render.Settings){
		"negative width":   func(s *render.Settings) { s.Width = -1 },
		"huge height":      func(s *render.Settings) { s.Height = 100001 },
		"padding too wide": func(s *render.Settings) { s.Padding = 101 },
		"negative radius":  func(s *render.Settings) { s.StopRadius = -1 },
		"offset range":     func(s *render.Settings) { s.BusLabelOffset.X = -100001 },
		"font size":        func(s *render.Settings) { s.StopLabelFontSize = -1 },
		"no underlayer":    func(s *render.Settings) { s.UnderlayerColor = "" },
		"empty palette":    func(s *render.Settings) { s.ColorPalette = nil },
		"blank palette":    func(s *render.Settings) { s.ColorPalette = []render.Color{""} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := mustSettings(t)
			mutate(&s)
			require.ErrorIs(t, s.Validate(), render.ErrInvalidSettings)
		})
	}
}

func TestColor_UnmarshalJSON(t *testing.T) {
	good := map[string]render.Color{
		`"red"`:              "red",
		`[1, 2, 3]`:          "rgb(1,2,3)",
		`[255, 0, 10, 0.5]`:  "rgba(255,0,10,0.5)",
		`[0, 0, 0, 1]`:       "rgba(0,0,0,1)",
		`[10, 20, 30, 0.25]`: "rgba(10,20,30,0.25)",
	}
	for in, want := range good {
		var c render.Color
		require.NoError(t, json.Unmarshal([]byte(in), &c), in)
		assert.Equal(t, want, c, in)
	}

	for _, in := range []string{`[1, 2]`, `[256, 0, 0]`, `[1.5, 0, 0]`, `[0, 0, 0, 2]`, `{}`, `true`} {
		var c render.Color
		require.ErrorIs(t, json.Unmarshal([]byte(in), &c), render.ErrInvalidColor, in)
	}
}

func TestPoint_JSON(t *testing.T) {
	var p render.Point
	require.NoError(t, json.Unmarshal([]byte(`[7, -3.5]`), &p))
	assert.Equal(t, render.Point{X: 7, Y: -3.5}, p)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `[7, -3.5]`, string(out))

	require.Error(t, json.Unmarshal([]byte(`[1, 2, 3]`), &p))
}

func TestDocument_Shapes(t *testing.T) {
	var doc render.Document
	doc.Add(render.Circle{Center: render.Point{X: 1.5, Y: 2}, Radius: 0.125})
	doc.Add(render.Text{Data: `<a href='x'>"b"</a>`, FontSize: 12})
	doc.Add(render.Polyline{Points: []render.Point{{X: 1234567, Y: 0.1}}})

	lines := strings.Split(doc.String(), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, `  <circle cx="1.5" cy="2" r="0.125" />`, lines[2])
	assert.Equal(t, `  <text x="0" y="0" dx="0" dy="0" font-size="12">`+
		`&lt;a href=&apos;x&apos;&gt;&quot;b&quot;&lt;/a&gt;</text>`, lines[3])
	assert.Equal(t, `  <polyline points="1.23457e+06,0.1"/>`, lines[4])
	assert.Equal(t, `</svg>`, lines[5])

	var buf strings.Builder
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, doc.String(), buf.String())
}
