package markup

import (
	"slices"
	"strings"
)

// AppendItem returns items with a new entry named strings.TrimSpace(name)
// appended. A blank name returns items unchanged. The new id is one past the
// largest id in items, so it never collides with an existing entry. items is
// never written to.
func AppendItem(items []MenuItem, name string) []MenuItem {
	name = strings.TrimSpace(name)
	if name == "" {
		return items
	}
	out := make([]MenuItem, len(items), len(items)+1)
	copy(out, items)
	return append(out, MenuItem{ID: maxID(items) + 1, Name: name})
}

func maxID(items []MenuItem) int {
	highest := 0
	for _, it := range items {
		if it.ID > highest {
			highest = it.ID
		}
	}
	return highest
}

// Menu is an editable list of menu items whose ids come from a counter that
// only moves forward, so removing and re-adding never reuses an id.
// The zero value is an empty menu.
type Menu struct {
	items  []MenuItem
	lastID int
}

// NewMenu returns a menu holding items. The counter starts after the largest
// id among them.
func NewMenu(items ...MenuItem) *Menu {
	return &Menu{items: slices.Clone(items), lastID: maxID(items)}
}

// Add appends name and reports the created item. Blank names are ignored.
func (m *Menu) Add(name string) (MenuItem, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return MenuItem{}, false
	}
	m.lastID++
	it := MenuItem{ID: m.lastID, Name: name}
	m.items = append(m.items, it)
	return it, true
}

// Remove deletes the item with id and reports whether it existed.
func (m *Menu) Remove(id int) bool {
	i := slices.IndexFunc(m.items, func(it MenuItem) bool { return it.ID == id })
	if i < 0 {
		return false
	}
	m.items = slices.Delete(m.items, i, i+1)
	return true
}

// Items returns a copy of the items in display order.
func (m *Menu) Items() []MenuItem {
	return slices.Clone(m.items)
}

func (m *Menu) Len() int { return len(m.items) }
