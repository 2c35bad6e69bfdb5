package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendItem(t *testing.T) {
	tests := []struct {
		name  string
		items []MenuItem
		input string
		want  []MenuItem
	}{
		{"blank on empty", []MenuItem{}, "  ", []MenuItem{}},
		{"blank keeps items", []MenuItem{{ID: 1, Name: "Home"}}, "\t\n", []MenuItem{{ID: 1, Name: "Home"}}},
		{"first item", nil, "Home", []MenuItem{{ID: 1, Name: "Home"}}},
		{"appends after", []MenuItem{{ID: 1, Name: "Home"}}, "About", []MenuItem{{ID: 1, Name: "Home"}, {ID: 2, Name: "About"}}},
		{"trims name", nil, "  Pricing  ", []MenuItem{{ID: 1, Name: "Pricing"}}},
		{"id follows largest", []MenuItem{{ID: 4, Name: "Docs"}, {ID: 2, Name: "Blog"}}, "FAQ",
			[]MenuItem{{ID: 4, Name: "Docs"}, {ID: 2, Name: "Blog"}, {ID: 5, Name: "FAQ"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AppendItem(tt.items, tt.input))
		})
	}
}

func TestAppendItem_DoesNotShareBackingArray(t *testing.T) {
	items := make([]MenuItem, 1, 8)
	items[0] = MenuItem{ID: 1, Name: "Home"}

	a := AppendItem(items, "About")
	b := AppendItem(items, "Blog")

	assert.Equal(t, "About", a[1].Name)
	assert.Equal(t, "Blog", b[1].Name)
	assert.Len(t, items, 1)
}

func TestMenu_AddRemove(t *testing.T) {
	var m Menu

	_, ok := m.Add("   ")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())

	home, ok := m.Add("Home")
	require.True(t, ok)
	about, _ := m.Add(" About ")
	assert.Equal(t, MenuItem{ID: 1, Name: "Home"}, home)
	assert.Equal(t, MenuItem{ID: 2, Name: "About"}, about)

	require.True(t, m.Remove(about.ID))
	assert.False(t, m.Remove(about.ID))

	blog, _ := m.Add("Blog")
	assert.Equal(t, 3, blog.ID, "removed ids must not be reused")
	assert.Equal(t, []MenuItem{{ID: 1, Name: "Home"}, {ID: 3, Name: "Blog"}}, m.Items())
}

func TestNewMenu_ContinuesAfterLargestID(t *testing.T) {
	seed := []MenuItem{{ID: 7, Name: "Docs"}, {ID: 3, Name: "Home"}}
	m := NewMenu(seed...)

	it, _ := m.Add("FAQ")
	assert.Equal(t, 8, it.ID)

	items := m.Items()
	items[0].Name = "changed"
	assert.Equal(t, "Docs", m.Items()[0].Name)
	assert.Equal(t, "Docs", seed[0].Name)
}
