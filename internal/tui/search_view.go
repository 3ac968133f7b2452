package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/holocron/internal/pagination"
	"github.com/rshade/holocron/internal/swapi"
	listview "github.com/rshade/holocron/internal/tui/list"
)

const (
	screenTitle = "Star Wars Characters Search"
	idleHint    = "Type a name and press enter to search the archives."
	selectedBar = "▌"
)

// View renders the search screen (Bubble Tea interface).
func (m SearchModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	width := m.contentWidth()
	sections := []string{
		m.stars.View(),
		TitleStyle.Width(width).Render(screenTitle),
		"",
		m.renderControls(),
		"",
		m.renderBody(width),
		"",
	}
	if m.state == ViewStateList {
		sections = append(sections, m.renderFooter(width))
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.NewStyle().Padding(0, borderPadding).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func (m SearchModel) renderControls() string {
	input := InputStyle.Render(m.input.View())
	button := SearchButtonStyle.Render(" SEARCH ")
	picker := PickerStyle.Render(fmt.Sprintf("Page size: %d", m.pageSize))
	return lipgloss.JoinHorizontal(lipgloss.Top, input, " ", button, " ", picker)
}

func (m SearchModel) renderBody(width int) string {
	switch m.state {
	case ViewStateIdle:
		return SubtleStyle.Width(width).Align(lipgloss.Center).Render(idleHint)
	case ViewStateLoading:
		return InfoStyle.Width(width).Render(m.loading.View())
	case ViewStateError:
		return CriticalStyle.Width(width).Render(m.result.Message)
	case ViewStateEmpty:
		return InfoStyle.Width(width).Render(m.result.Message)
	case ViewStateList:
		return lipgloss.JoinVertical(lipgloss.Left,
			SubtleStyle.Render(m.result.Summary()),
			"",
			m.list.View(),
		)
	case ViewStateQuitting:
		return ""
	default:
		return ""
	}
}

// renderFooter draws Prev, the page label and Next. It is shown only next to
// the list; buttons are disabled at either end of the range.
func (m SearchModel) renderFooter(width int) string {
	total := m.result.TotalPages

	prev := DisabledButtonStyle.Render("Prev")
	if pagination.CanPrev(m.page) {
		prev = ButtonStyle.Render("Prev")
	}
	next := DisabledButtonStyle.Render("Next")
	if pagination.CanNext(m.page, total) {
		next = ButtonStyle.Render("Next")
	}

	label := LabelStyle.Render(" " + pagination.Label(m.page, total) + " ")
	row := lipgloss.JoinHorizontal(lipgloss.Center, prev, label, next)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}

// cardRenderer returns the list renderer for the current width. The first
// card on a page gets the highlight background.
func (m SearchModel) cardRenderer() listview.RenderFunc[swapi.Character] {
	width := max(m.contentWidth()-2, 10) //nolint:mnd // Room for the selection bar.
	return func(c swapi.Character, index int, selected bool) string {
		return renderCard(c, index == 0, selected, width)
	}
}

func renderCard(c swapi.Character, first, selected bool, width int) string {
	body := strings.Join([]string{
		CardTitleStyle.Render(c.Name),
		CardDetailStyle.Render("Birth: " + c.BirthYear),
		CardDetailStyle.Render("Eye color: " + c.EyeColor),
	}, "\n")

	style := CardStyle
	if first {
		style = FirstCardStyle
	}
	card := style.Width(width).Render(body)

	bar := " "
	if selected {
		bar = SelectedMarkerStyle.Render(selectedBar)
	}
	gutter := strings.TrimSuffix(strings.Repeat(bar+"\n", lipgloss.Height(card)), "\n")
	return lipgloss.JoinHorizontal(lipgloss.Top, gutter, " ", card) + "\n"
}
