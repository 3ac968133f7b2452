package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders the item at index. The selected parameter indicates
// whether this item is currently selected.
type RenderFunc[T any] func(item T, index int, selected bool) string

// Model is a scrolling list of multi-row items.
type Model[T any] struct {
	items  []T
	render RenderFunc[T]

	// selected is the selected item index (0-based).
	selected int

	// offset is the index of the first visible item.
	offset int

	// height is the viewport height in terminal rows.
	height int

	// itemHeight is the number of rows one rendered item occupies,
	// including any separator.
	itemHeight int
}

// New creates an empty list. itemHeight values below 1 are treated as 1.
func New[T any](render RenderFunc[T], itemHeight, height int) *Model[T] {
	if itemHeight < 1 {
		itemHeight = 1
	}
	return &Model[T]{
		render:     render,
		itemHeight: itemHeight,
		height:     height,
	}
}

// SetItems replaces the items and moves the selection back to the top.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.selected = 0
	m.offset = 0
}

// SetRender replaces the item renderer.
func (m *Model[T]) SetRender(render RenderFunc[T]) {
	m.render = render
}

// SetHeight resizes the viewport, keeping the selection visible.
func (m *Model[T]) SetHeight(height int) {
	m.height = height
	m.clamp()
}

// Update handles navigation keys. It reports whether the key was consumed.
func (m *Model[T]) Update(msg tea.KeyMsg) bool {
	if len(m.items) == 0 {
		return false
	}

	switch msg.String() {
	case "up", "k":
		m.selected--
	case "down", "j":
		m.selected++
	case "pgup":
		m.selected -= m.pageItems()
	case "pgdown":
		m.selected += m.pageItems()
	case "home", "g":
		m.selected = 0
	case "end", "G":
		m.selected = len(m.items) - 1
	default:
		return false
	}

	m.clamp()
	return true
}

// pageItems is the number of whole items that fit in the viewport.
func (m *Model[T]) pageItems() int {
	n := m.height / m.itemHeight
	if n < 1 {
		return 1
	}
	return n
}

// clamp bounds the selection and scrolls the viewport just enough to show it.
func (m *Model[T]) clamp() {
	if len(m.items) == 0 {
		m.selected, m.offset = 0, 0
		return
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(m.items) {
		m.selected = len(m.items) - 1
	}

	visible := m.pageItems()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visible {
		m.offset = m.selected - visible + 1
	}
	if maxOffset := len(m.items) - visible; m.offset > maxOffset {
		m.offset = max(maxOffset, 0)
	}
}

// View renders the visible items.
func (m *Model[T]) View() string {
	from, to := m.VisibleRange()
	if from == to {
		return ""
	}

	rendered := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		rendered = append(rendered, m.render(m.items[i], i, i == m.selected))
	}
	return strings.Join(rendered, "\n")
}

// VisibleRange returns the half-open range of item indexes in view.
func (m *Model[T]) VisibleRange() (int, int) {
	to := m.offset + m.pageItems()
	if to > len(m.items) {
		to = len(m.items)
	}
	return m.offset, to
}

// Len returns the number of items.
func (m *Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the selected item index.
func (m *Model[T]) Selected() int {
	return m.selected
}

// SelectedItem returns the selected item, or false when the list is empty.
func (m *Model[T]) SelectedItem() (T, bool) {
	var zero T
	if len(m.items) == 0 {
		return zero, false
	}
	return m.items[m.selected], true
}
