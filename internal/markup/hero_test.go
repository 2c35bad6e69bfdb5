package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleButtons() Buttons {
	return Buttons{
		Enabled:   true,
		Primary:   &ButtonSpec{Text: "Get Started", Color: "#3b82f6"},
		Secondary: &ButtonSpec{Text: "Learn More", Color: "#64748b"},
	}
}

func TestRenderHero_SplitGradient(t *testing.T) {
	cfg := HeroConfig{
		Heading:     "Build faster",
		Description: "Ship today",
		Layout:      LayoutSplit,
		Background:  GradientBackground("#3b82f6", "#06b6d4"),
		Font:        FontSerif,
		Buttons:     sampleButtons(),
	}

	want := `import React from 'react'

export default function Hero() {
  return (
    <div className="relative w-full h-screen flex font-serif">
      {/* Left Content Side */}
      <div className="w-1/2 flex flex-col items-start justify-center p-12 bg-gradient-to-r from-black to-transparent">
        <h1 className="text-4xl md:text-6xl font-bold text-white">Build faster</h1>
        <h2 className="text-xl md:text-2xl mt-4 text-white/80">Ship today</h2>
        <div className="flex gap-4 mt-8">
          <button
            className="px-6 py-2 rounded-lg font-medium"
            style={{ backgroundColor: '#3b82f6' }}
          >
            Get Started
          </button>
          <button
            className="px-6 py-2 rounded-lg font-medium border-2"
            style={{ borderColor: '#64748b', color: '#64748b' }}
          >
            Learn More
          </button>
        </div>
      </div>
      {/* Right Image/Gradient Side */}
      <div className="w-1/2">
        <div
          className="w-full h-full"
          style={{ background: 'linear-gradient(to right, #3b82f6, #06b6d4)' }}
        />
      </div>
    </div>
  )
}`

	assert.Equal(t, want, RenderHero(cfg))
}

func TestRenderHero_SplitPanes(t *testing.T) {
	for _, bg := range []Background{
		ImageBackground("https://example.com/hero.jpg"),
		GradientBackground("#111111", "#222222"),
		SolidBackground("#1e293b"),
	} {
		t.Run(string(bg.Kind), func(t *testing.T) {
			doc := parseMarkup(t, RenderHero(HeroConfig{Layout: LayoutSplit, Background: bg}))
			assert.Equal(t, 2, doc.Find(`[classname^="w-1/2"]`).Length())

			imgs := doc.Find("img")
			if bg.Kind == BackgroundImage {
				require.Equal(t, 1, imgs.Length())
				assert.Equal(t, bg.URL, imgs.AttrOr("src", ""))
			} else {
				assert.Equal(t, 0, imgs.Length())
			}
		})
	}
}

func TestRenderHero_CenteredImageIsMasked(t *testing.T) {
	out := RenderHero(HeroConfig{
		Heading:    "Hello",
		Layout:     LayoutCentered,
		Background: ImageBackground("/bg.png"),
	})

	assert.Contains(t, out, "style={{ backgroundImage: 'url(/bg.png)' }}")
	assert.Contains(t, out, "bg-black/50")
	assert.Contains(t, out, `className="relative w-full h-screen font-sans bg-cover bg-center"`)
	assert.NotContains(t, out, "<img")
}

func TestRenderHero_CenteredFlatBackgroundsAreNotMasked(t *testing.T) {
	for _, bg := range []Background{GradientBackground("#000000", "#ffffff"), SolidBackground("#1e293b")} {
		out := RenderHero(HeroConfig{Layout: LayoutCentered, Background: bg})
		assert.NotContains(t, out, "bg-black/50", bg.Kind)
		assert.Contains(t, out, bg.Declaration(), bg.Kind)
	}
}

func TestRenderHero_Minimal(t *testing.T) {
	out := RenderHero(HeroConfig{
		Heading:    "Quiet",
		Layout:     LayoutMinimal,
		Background: ImageBackground("/bg.png"),
	})

	assert.NotContains(t, out, "bg-black/50")
	assert.Contains(t, out, "font-light")
	assert.NotEqual(t, out, RenderHero(HeroConfig{
		Heading:    "Quiet",
		Layout:     LayoutCentered,
		Background: ImageBackground("/bg.png"),
	}))
}

func TestRenderHero_UnknownLayoutRendersCentered(t *testing.T) {
	cfg := HeroConfig{Heading: "x", Background: SolidBackground("#000000")}
	centered := cfg
	centered.Layout = LayoutCentered

	cfg.Layout = "diagonal"
	assert.Equal(t, RenderHero(centered), RenderHero(cfg))
}

func TestRenderHero_ButtonRow(t *testing.T) {
	tests := []struct {
		name    string
		buttons Buttons
		count   int
	}{
		{"disabled", Buttons{Enabled: false, Primary: &ButtonSpec{Text: "Go", Color: "#ff0000"}}, 0},
		{"enabled without buttons", Buttons{Enabled: true}, 0},
		{"enabled with empty labels", Buttons{
			Enabled:   true,
			Primary:   &ButtonSpec{Color: "#ff0000"},
			Secondary: &ButtonSpec{Color: "#00ff00"},
		}, 0},
		{"primary only", Buttons{Enabled: true, Primary: &ButtonSpec{Text: "Go", Color: "#ff0000"}}, 1},
		{"secondary only", Buttons{Enabled: true, Secondary: &ButtonSpec{Text: "More", Color: "#00ff00"}}, 1},
		{"both", sampleButtons(), 2},
	}

	for _, tt := range tests {
		for _, layout := range Layouts {
			t.Run(tt.name+"/"+string(layout), func(t *testing.T) {
				out := RenderHero(HeroConfig{Layout: layout, Buttons: tt.buttons})
				doc := parseMarkup(t, out)

				assert.Equal(t, tt.count, doc.Find("button").Length())
				if tt.count == 0 {
					assert.NotContains(t, out, "flex gap-4 mt-8")
				}
			})
		}
	}
}

func TestRenderHero_PrimaryOnlyUsesPrimaryColor(t *testing.T) {
	out := RenderHero(HeroConfig{
		Layout: LayoutCentered,
		Buttons: Buttons{
			Enabled:   true,
			Primary:   &ButtonSpec{Text: "Go", Color: "#ff0000"},
			Secondary: &ButtonSpec{Text: "", Color: "#00ff00"},
		},
	})

	doc := parseMarkup(t, out)
	require.Equal(t, 1, doc.Find("button").Length())
	assert.Equal(t, "Go", strings.TrimSpace(doc.Find("button").Text()))
	assert.Contains(t, out, "backgroundColor: '#ff0000'")
	assert.NotContains(t, out, "#00ff00")
}

func TestRenderHero_GradientKeepsColorOrder(t *testing.T) {
	out := RenderHero(HeroConfig{Background: GradientBackground("#3b82f6", "#06b6d4")})

	assert.Contains(t, out, "linear-gradient(to right, #3b82f6, #06b6d4)")
	assert.Less(t, strings.Index(out, "#3b82f6"), strings.Index(out, "#06b6d4"))
}

func TestRenderHero_GradientDirection(t *testing.T) {
	bg := GradientBackground("#000000", "#ffffff")
	bg.Direction = DirectionBottom

	assert.Contains(t, RenderHero(HeroConfig{Background: bg}), "linear-gradient(to bottom, #000000, #ffffff)")
}

func TestRenderHero_FontClass(t *testing.T) {
	tests := []struct {
		font Font
		want string
	}{
		{FontSans, "font-sans"},
		{FontSerif, "font-serif"},
		{FontMono, "font-mono"},
		{"", "font-sans"},
		{"comic", "font-sans"},
	}
	for _, tt := range tests {
		t.Run(string(tt.font), func(t *testing.T) {
			for _, layout := range Layouts {
				out := RenderHero(HeroConfig{Layout: layout, Font: tt.font})
				// The outermost element opens on lines 5-6 of the component.
				lines := strings.Split(out, "\n")
				outer := strings.Join(lines[4:6], " ")
				assert.Contains(t, outer, `className="relative w-full h-screen`, layout)
				assert.Contains(t, outer, tt.want, layout)
			}
		})
	}
}

func TestRenderHero_EmptyConfig(t *testing.T) {
	out := RenderHero(HeroConfig{})

	assert.NotContains(t, out, "undefined")
	assert.NotContains(t, out, "<nil>")
	assert.Contains(t, out, `<h1 className="text-4xl md:text-6xl font-bold"></h1>`)
	assert.Contains(t, out, "backgroundColor: ''")
}

func TestRenderHero_InterpolatesUnescaped(t *testing.T) {
	out := RenderHero(HeroConfig{Heading: `<script>alert("x")</script>`})
	assert.Contains(t, out, `<script>alert("x")</script>`)
}

func TestRenderHero_Idempotent(t *testing.T) {
	cfg := HeroConfig{
		Heading:    "Same",
		Layout:     LayoutSplit,
		Background: ImageBackground("/a.png"),
		Buttons:    sampleButtons(),
	}
	assert.Equal(t, RenderHero(cfg), RenderHero(cfg))
}

func TestRenderHero_DoesNotMutateConfig(t *testing.T) {
	cfg := HeroConfig{
		Heading: "Keep",
		Layout:  LayoutCentered,
		Buttons: Buttons{Enabled: true, Primary: &ButtonSpec{Text: "A", Color: "#000000"}},
	}
	before := cfg
	primary := *cfg.Buttons.Primary

	RenderHero(cfg)

	assert.Equal(t, before, cfg)
	assert.Equal(t, primary, *cfg.Buttons.Primary)
}
