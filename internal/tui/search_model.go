package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/holocron/internal/pagination"
	"github.com/rshade/holocron/internal/roster"
	"github.com/rshade/holocron/internal/swapi"
	listview "github.com/rshade/holocron/internal/tui/list"
)

const (
	inputCharLimit = 64
	starRows       = 3
	starDensity    = 6 // one star per this many columns per row
	starSeed       = 1977
)

// SearchFunc runs one search. roster.Searcher.Search satisfies it.
type SearchFunc func(ctx context.Context, query string, page, pageSize int) roster.Result

// searchResultMsg carries a finished search back to Update. id ties it to the
// request that produced it.
type searchResultMsg struct {
	id     uint64
	result roster.Result
}

// SearchOption configures a SearchModel.
type SearchOption func(*SearchModel)

// WithInitialQuery submits query as soon as the program starts.
func WithInitialQuery(query string) SearchOption {
	return func(m *SearchModel) {
		m.input.SetValue(query)
		m.autoSubmit = true
	}
}

// WithPageSize sets the starting display page size. Unsupported sizes fall
// back to the default.
func WithPageSize(size int) SearchOption {
	return func(m *SearchModel) {
		if pagination.IsValidPageSize(size) {
			m.pageSize = size
		}
	}
}

// SearchModel is the Bubble Tea model for the character search screen.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type SearchModel struct {
	ctx    context.Context
	search SearchFunc

	// Interactive components
	keys    KeyMap
	help    help.Model
	input   textinput.Model
	list    *listview.Model[swapi.Character]
	loading *LoadingState
	stars   Starfield

	// View state
	state  ViewState
	focus  Focus
	width  int
	height int

	// Search state. query is the last submitted query, which page and page
	// size changes reuse.
	query      string
	submitted  bool
	autoSubmit bool
	page       int
	pageSize   int
	result     roster.Result

	// reqID identifies the newest request; results for older ids are dropped.
	reqID  uint64
	reqCtx context.Context
	cancel context.CancelFunc
}

// NewSearchModel creates the search screen. search is called from a tea.Cmd
// goroutine, one call per submitted query or page change.
func NewSearchModel(ctx context.Context, search SearchFunc, opts ...SearchOption) SearchModel {
	input := textinput.New()
	input.Placeholder = "Character name"
	input.CharLimit = inputCharLimit
	input.Prompt = ""
	input.Focus()

	m := SearchModel{
		ctx:      ctx,
		search:   search,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    input,
		loading:  NewLoadingState(),
		state:    ViewStateIdle,
		focus:    FocusInput,
		page:     pagination.DefaultPage,
		pageSize: pagination.DefaultPageSize,
		result: roster.Result{
			Page:       pagination.DefaultPage,
			PageSize:   pagination.DefaultPageSize,
			TotalPages: 1,
		},
	}
	m.list = listview.New(m.cardRenderer(), cardHeight, minListHeight)
	for _, opt := range opts {
		opt(&m)
	}
	m.resize(defaultWidth, defaultHeight)

	if m.autoSubmit {
		m = m.submit(m.input.Value())
		m.focus = FocusList
		m.input.Blur()
	}
	return m
}

// Init starts the cursor blink and, with an initial query, the first search.
func (m SearchModel) Init() tea.Cmd {
	if m.state == ViewStateLoading {
		return tea.Batch(textinput.Blink, m.loading.Init(), m.fetchCmd())
	}
	return textinput.Blink
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case searchResultMsg:
		return m.handleResult(msg)
	case spinner.TickMsg:
		if m.state != ViewStateLoading {
			return m, nil
		}
		return m, m.loading.Update(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == FocusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m SearchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.Search):
		m = m.submit(m.input.Value())
		m.focus = FocusList
		m.input.Blur()
		return m, tea.Batch(m.loading.Init(), m.fetchCmd())
	case key.Matches(msg, m.keys.PageSizeUp):
		return m.changePageSize(pagination.NextPageSize(m.pageSize))
	case key.Matches(msg, m.keys.PageSizeDown):
		return m.changePageSize(pagination.PrevPageSize(m.pageSize))
	}

	if m.focus == FocusInput {
		if key.Matches(msg, m.keys.FocusList) {
			m.focus = FocusList
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.FocusInput):
		m.focus = FocusInput
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.PrevPage):
		if p, ok := pagination.Prev(m.page); ok && m.state == ViewStateList {
			return m.goToPage(p)
		}
	case key.Matches(msg, m.keys.NextPage):
		if p, ok := pagination.Next(m.page, m.result.TotalPages); ok && m.state == ViewStateList {
			return m.goToPage(p)
		}
	default:
		m.list.Update(msg)
	}
	return m, nil
}

func (m SearchModel) handleResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.reqID {
		return m, nil
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	m.result = msg.result
	switch {
	case !msg.result.Failed():
		m.state = ViewStateList
		m.list.SetItems(msg.result.Characters)
	case msg.result.Message == roster.MsgNoCharacters:
		m.state = ViewStateEmpty
		m.list.SetItems(nil)
	default:
		m.state = ViewStateError
		m.list.SetItems(nil)
	}
	return m, nil
}

// submit records query as the active query and starts a search for its
// first page. The caller schedules fetchCmd.
func (m SearchModel) submit(query string) SearchModel {
	m.query = strings.TrimSpace(query)
	m.submitted = true
	m.page = pagination.DefaultPage
	return m.begin()
}

func (m SearchModel) goToPage(page int) (tea.Model, tea.Cmd) {
	m.page = page
	m = m.begin()
	return m, tea.Batch(m.loading.Init(), m.fetchCmd())
}

func (m SearchModel) changePageSize(size int) (tea.Model, tea.Cmd) {
	m.pageSize = size
	m.page = pagination.DefaultPage
	if !m.submitted {
		return m, nil
	}
	m = m.begin()
	return m, tea.Batch(m.loading.Init(), m.fetchCmd())
}

// begin cancels any in-flight request and allocates a new request id.
func (m SearchModel) begin() SearchModel {
	if m.cancel != nil {
		m.cancel()
	}
	m.reqID++
	m.reqCtx, m.cancel = context.WithCancel(m.ctx)
	m.state = ViewStateLoading
	return m
}

func (m SearchModel) fetchCmd() tea.Cmd {
	id, ctx, search := m.reqID, m.reqCtx, m.search
	query, page, size := m.query, m.page, m.pageSize
	return func() tea.Msg {
		return searchResultMsg{id: id, result: search(ctx, query, page, size)}
	}
}

func (m SearchModel) quit() (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.state = ViewStateQuitting
	return m, tea.Quit
}

func (m *SearchModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.input.Width = max(m.contentWidth()/2, 10) //nolint:mnd // Minimum usable input width.
	m.list.SetRender(m.cardRenderer())
	m.list.SetHeight(max(height-chromeHeight, minListHeight))
	m.stars = NewStarfield(width, starRows, width*starRows/starDensity, starSeed)
}

func (m SearchModel) contentWidth() int {
	return max(m.width-borderPadding*2, 20) //nolint:mnd // Minimum usable width.
}

// State returns the current view state.
func (m SearchModel) State() ViewState {
	return m.state
}

// Result returns the result currently on screen.
func (m SearchModel) Result() roster.Result {
	return m.result
}
