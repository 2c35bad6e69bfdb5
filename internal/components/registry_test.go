package components

import (
	"errors"
	"testing"

	"github.com/phravins/landinggen/internal/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hero", "hero"},
		{"Navbar", "navbar"},
		{"  HERO ", "hero"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := Lookup(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Name)
		})
	}
}

func TestLookup_Suggestions(t *testing.T) {
	_, err := Lookup("nvbr")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknown))
	assert.Contains(t, err.Error(), `did you mean navbar?`)

	_, err = Lookup("zzz")
	require.ErrorIs(t, err, ErrUnknown)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, []string{"hero"}, Suggest("hr"))
	assert.Nil(t, Suggest(""))
}

func TestRender(t *testing.T) {
	doc, err := preset.Parse([]byte("component: navbar\nconfig:\n  auth: login\n"))
	require.NoError(t, err)

	out, err := Render(doc, "")
	require.NoError(t, err)
	assert.Contains(t, out, "const Navbar = () => {")
	assert.Contains(t, out, "Login")
}

func TestRender_BareDocumentNeedsFallback(t *testing.T) {
	doc, err := preset.Parse([]byte("heading: Hi\n"))
	require.NoError(t, err)

	_, err = Render(doc, "")
	assert.Error(t, err)

	out, err := Render(doc, "hero")
	require.NoError(t, err)
	assert.Contains(t, out, ">Hi</h1>")
}

func TestRegistryListsVariants(t *testing.T) {
	hero, err := Lookup("hero")
	require.NoError(t, err)
	assert.Equal(t, []string{"centered", "split", "minimal"}, hero.Layouts)
	assert.Equal(t, []string{"image", "gradient", "solid"}, hero.Backgrounds)
	assert.Len(t, List(), 2)
}

func TestResolve(t *testing.T) {
	doc, err := preset.Parse([]byte("component: NAVBAR\n"))
	require.NoError(t, err)

	c, err := Resolve(doc, "hero")
	require.NoError(t, err)
	assert.Equal(t, "navbar", c.Name, "the preset's own component wins over the fallback")
}
