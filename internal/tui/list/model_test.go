package listview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func numbered(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func newTestList(n, itemHeight, height int) *Model[int] {
	m := New(func(item, _ int, selected bool) string {
		marker := " "
		if selected {
			marker = ">"
		}
		lines := []string{fmt.Sprintf("%s item %d", marker, item)}
		for i := 1; i < itemHeight; i++ {
			lines = append(lines, "  detail")
		}
		return strings.Join(lines, "\n")
	}, itemHeight, height)
	m.SetItems(numbered(n))
	return m
}

func TestNavigation(t *testing.T) {
	m := newTestList(10, 1, 4)

	assert.True(t, m.Update(key("down")))
	assert.True(t, m.Update(key("j")))
	assert.Equal(t, 2, m.Selected())

	assert.True(t, m.Update(key("k")))
	assert.Equal(t, 1, m.Selected())

	m.Update(key("end"))
	assert.Equal(t, 9, m.Selected())

	m.Update(key("down"))
	assert.Equal(t, 9, m.Selected(), "selection stops at the last item")

	m.Update(key("home"))
	assert.Equal(t, 0, m.Selected())

	m.Update(key("up"))
	assert.Equal(t, 0, m.Selected(), "selection stops at the first item")

	assert.False(t, m.Update(key("x")), "unrelated keys are not consumed")
}

func TestPaging(t *testing.T) {
	m := newTestList(10, 2, 6) // three items per page

	m.Update(key("pgdown"))
	assert.Equal(t, 3, m.Selected())
	m.Update(key("pgdown"))
	m.Update(key("pgdown"))
	m.Update(key("pgdown"))
	assert.Equal(t, 9, m.Selected())
	m.Update(key("pgup"))
	assert.Equal(t, 6, m.Selected())
}

func TestViewportFollowsSelection(t *testing.T) {
	m := newTestList(10, 1, 3)

	from, to := m.VisibleRange()
	assert.Equal(t, 0, from)
	assert.Equal(t, 3, to)

	for range 4 {
		m.Update(key("down"))
	}
	from, to = m.VisibleRange()
	assert.Equal(t, 2, from)
	assert.Equal(t, 5, to)

	view := m.View()
	assert.Contains(t, view, "> item 4")
	assert.NotContains(t, view, "item 1")
	assert.Len(t, strings.Split(view, "\n"), 3)
}

func TestMultiRowItems(t *testing.T) {
	m := newTestList(5, 3, 7) // two whole items fit
	from, to := m.VisibleRange()
	assert.Equal(t, 0, from)
	assert.Equal(t, 2, to)
	assert.Len(t, strings.Split(m.View(), "\n"), 6)
}

func TestSetItemsResetsSelection(t *testing.T) {
	m := newTestList(10, 1, 3)
	m.Update(key("end"))
	m.SetItems(numbered(2))
	assert.Equal(t, 0, m.Selected())
	item, ok := m.SelectedItem()
	assert.True(t, ok)
	assert.Equal(t, 0, item)
}

func TestEmptyList(t *testing.T) {
	m := newTestList(0, 1, 3)
	assert.Equal(t, "", m.View())
	assert.False(t, m.Update(key("down")))
	_, ok := m.SelectedItem()
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestShrinkHeightKeepsSelectionVisible(t *testing.T) {
	m := newTestList(10, 1, 8)
	m.Update(key("end"))
	m.SetHeight(2)
	from, to := m.VisibleRange()
	assert.Equal(t, 8, from)
	assert.Equal(t, 10, to)
}
