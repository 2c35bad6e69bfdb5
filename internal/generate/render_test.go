package generate

import (
	"strings"
	"testing"

	"github.com/phravins/landinggen/internal/components"
	"github.com/phravins/landinggen/internal/config"
	"github.com/phravins/landinggen/internal/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCmd_Envelope(t *testing.T) {
	useConfig(t, config.Default(), nil)
	path := writeFile(t, "nav.yaml", "component: navbar\nconfig:\n  auth: signup\n")

	out, _, err := execute(t, NewRenderCmd(), path)
	require.NoError(t, err)
	assert.Equal(t, markup.RenderNavbar(markup.NavbarConfig{Auth: markup.AuthSignup})+"\n", out)
}

func TestRenderCmd_BarePreset(t *testing.T) {
	useConfig(t, config.Default(), nil)
	path := writeFile(t, "hero.yaml", "heading: Bare\n")

	_, _, err := execute(t, NewRenderCmd(), path)
	assert.ErrorContains(t, err, "does not name a component")

	out, _, err := execute(t, NewRenderCmd(), path, "--component", "Hero")
	require.NoError(t, err)
	assert.Equal(t, markup.RenderHero(markup.HeroConfig{Heading: "Bare"})+"\n", out)
}

func TestRenderCmd_Stdin(t *testing.T) {
	useConfig(t, config.Default(), nil)

	cmd := NewRenderCmd()
	cmd.SetIn(strings.NewReader("component: hero\nconfig:\n  heading: Piped\n"))
	out, _, err := execute(t, cmd, "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Piped")
}

func TestRenderCmd_UnknownComponent(t *testing.T) {
	useConfig(t, config.Default(), nil)
	path := writeFile(t, "x.yaml", "component: hreo\n")

	_, _, err := execute(t, NewRenderCmd(), path)
	assert.ErrorIs(t, err, components.ErrUnknown)
}

func TestListCmd(t *testing.T) {
	out, _, err := execute(t, NewListCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "hero")
	assert.Contains(t, out, "navbar")
	assert.Contains(t, out, "centered, split, minimal")
	assert.Contains(t, out, "static, gradient")
}
