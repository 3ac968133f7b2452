package roster

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/holocron/internal/logging"
	"github.com/rshade/holocron/internal/pagination"
	"github.com/rshade/holocron/internal/swapi"
)

// PeopleLister fetches one page of people. *swapi.Client implements it.
type PeopleLister interface {
	ListPeople(ctx context.Context, query string, page int) (*swapi.PeoplePage, error)
}

// Result is the outcome of one search.
type Result struct {
	Query      string            `json:"query"           yaml:"query"`
	Page       int               `json:"page"            yaml:"page"`
	PageSize   int               `json:"page_size"       yaml:"page_size"`
	Count      int               `json:"count"           yaml:"count"`
	TotalPages int               `json:"total_pages"     yaml:"total_pages"`
	Characters []swapi.Character `json:"characters"      yaml:"characters"`
	Err        error             `json:"-"               yaml:"-"`
	Message    string            `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the search ended in an error state, including the
// empty result set.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Meta returns the pagination metadata for the result.
func (r Result) Meta() pagination.Meta {
	return pagination.NewMeta(pagination.Params{Page: r.Page, PageSize: r.PageSize}, r.Count)
}

// Summary renders a one-line description such as
// "Showing 10 of 1,024 characters (page 1 / 41)".
func (r Result) Summary() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("Showing %d of %d characters (page %s)",
		len(r.Characters), r.Count, pagination.Label(r.Page, r.TotalPages))
}

// State is a snapshot of the searcher: whether a request is in flight and
// the last completed result.
type State struct {
	Loading bool
	Result  Result
}

// Searcher runs searches against a PeopleLister and keeps the latest state.
type Searcher struct {
	lister PeopleLister
	logger zerolog.Logger

	mu    sync.Mutex
	seq   uint64
	state State
	nowFn func() time.Time
}

// SearcherOption configures a Searcher.
type SearcherOption func(*Searcher)

// WithSearchLogger sets the logger for search events.
func WithSearchLogger(logger zerolog.Logger) SearcherOption {
	return func(s *Searcher) {
		s.logger = logging.ComponentLogger(logger, "roster")
	}
}

// NewSearcher creates a Searcher over lister.
func NewSearcher(lister PeopleLister, opts ...SearcherOption) *Searcher {
	s := &Searcher{
		lister: lister,
		logger: zerolog.Nop(),
		nowFn:  time.Now,
		state: State{Result: Result{
			Page:       pagination.DefaultPage,
			PageSize:   pagination.DefaultPageSize,
			TotalPages: 1,
			Characters: []swapi.Character{},
		}},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the current state.
func (s *Searcher) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Search fetches page of query and returns the ordered result. The page
// count is derived from pageSize, the display page size.
//
// Only the most recently started search updates State; an older search that
// finishes late still returns its result but leaves State alone.
func (s *Searcher) Search(ctx context.Context, query string, page, pageSize int) Result {
	ctx = logging.ContextWithTraceID(ctx, logging.GetOrGenerateTraceID(ctx))

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.state.Loading = true
	s.mu.Unlock()

	start := s.nowFn()
	result := s.run(ctx, query, page, pageSize)

	evt := s.logger.Info()
	if result.Err != nil {
		evt = s.logger.Warn().Err(result.Err)
	}
	evt.Ctx(ctx).
		Str("query", query).
		Int("page", page).
		Int("page_size", pageSize).
		Int("count", result.Count).
		Int("results", len(result.Characters)).
		Dur("duration", s.nowFn().Sub(start)).
		Msg("search finished")

	s.mu.Lock()
	if seq == s.seq {
		s.state = State{Loading: false, Result: result}
	}
	s.mu.Unlock()

	return result
}

func (s *Searcher) run(ctx context.Context, query string, page, pageSize int) Result {
	result := Result{
		Query:      query,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: 1,
		Characters: []swapi.Character{},
	}

	if err := (pagination.Params{Page: page, PageSize: pageSize}).Validate(); err != nil {
		return withError(result, fmt.Errorf("invalid search: %w", err))
	}

	resp, err := s.lister.ListPeople(ctx, query, page)
	if err != nil {
		return withError(result, err)
	}

	if len(resp.Results) == 0 {
		result.Count = resp.Count
		return withError(result, ErrNoResults)
	}

	result.Count = resp.Count
	result.TotalPages = pagination.TotalPages(resp.Count, pageSize)
	result.Characters = Order(resp.Results)
	return result
}

func withError(r Result, err error) Result {
	r.Err = err
	r.Message = Message(err)
	r.Characters = []swapi.Character{}
	r.TotalPages = 1
	return r
}
