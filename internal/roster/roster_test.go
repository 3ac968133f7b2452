package roster_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rshade/holocron/internal/pagination"
	"github.com/rshade/holocron/internal/roster"
	"github.com/rshade/holocron/internal/swapi"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeLister returns a canned page or error and records calls.
type fakeLister struct {
	mu    sync.Mutex
	page  *swapi.PeoplePage
	err   error
	calls []string
}

func (f *fakeLister) ListPeople(_ context.Context, query string, page int) (*swapi.PeoplePage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf("%s#%d", query, page))
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

// gatedLister blocks each query until its gate is closed and reports when a
// request has started.
type gatedLister struct {
	started chan string
	gates   map[string]chan struct{}
}

func (g *gatedLister) ListPeople(_ context.Context, query string, _ int) (*swapi.PeoplePage, error) {
	g.started <- query
	<-g.gates[query]
	return &swapi.PeoplePage{Count: 1, Results: []swapi.Character{{Name: query, EyeColor: "blue"}}}, nil
}

func names(chars []swapi.Character) []string {
	out := make([]string, len(chars))
	for i, c := range chars {
		out[i] = c.Name
	}
	return out
}

func samplePeople() []swapi.Character {
	return []swapi.Character{
		{Name: "R2-D2", EyeColor: "red", Created: "2014-12-10T15:11:50.376000Z"},
		{Name: "Owen Lars", EyeColor: "blue", Created: "2014-12-10T15:52:14.024000Z"},
		{Name: "C-3PO", EyeColor: "yellow", Created: "2014-12-10T15:10:51.357000Z"},
		{Name: "Luke Skywalker", EyeColor: "blue", Created: "2014-12-09T13:50:51.644000Z"},
		{Name: "Darth Vader", EyeColor: "yellow", Created: "2014-12-10T15:18:20.704000Z"},
		{Name: "Beru Whitesun lars", EyeColor: "blue", Created: "2014-12-10T15:53:41.121000Z"},
		{Name: "Leia Organa", EyeColor: "brown", Created: "2014-12-10T15:20:09.791000Z"},
		{Name: "Anakin Skywalker", EyeColor: "blue-gray", Created: "2014-12-10T16:20:44.310000Z"},
	}
}

func TestOrder(t *testing.T) {
	got := names(roster.Order(samplePeople()))
	want := []string{
		// blue-eyed, by name
		"Anakin Skywalker",
		"Beru Whitesun lars",
		"Luke Skywalker",
		"Owen Lars",
		// everyone else, by creation time
		"C-3PO",
		"R2-D2",
		"Darth Vader",
		"Leia Organa",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Order() mismatch (-want +got):\n%s", diff)
	}
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	in := samplePeople()
	before := names(in)
	_ = roster.Order(in)
	assert.Equal(t, before, names(in))
}

func TestOrder_CollatesNamesCaseInsensitively(t *testing.T) {
	in := []swapi.Character{
		{Name: "zeb", EyeColor: "blue"},
		{Name: "Ahsoka", EyeColor: "blue"},
		{Name: "ézra", EyeColor: "blue"},
		{Name: "Bo-Katan", EyeColor: "blue"},
	}
	assert.Equal(t, []string{"Ahsoka", "Bo-Katan", "ézra", "zeb"}, names(roster.Order(in)))
}

func TestOrder_UndatedTrailAndKeepInputOrder(t *testing.T) {
	in := []swapi.Character{
		{Name: "no-date-1", EyeColor: "brown"},
		{Name: "late", EyeColor: "brown", Created: "2015-01-01T00:00:00Z"},
		{Name: "garbage-date", EyeColor: "brown", Created: "soon"},
		{Name: "early", EyeColor: "brown", Created: "2014-01-01T00:00:00Z"},
	}
	assert.Equal(t, []string{"early", "late", "no-date-1", "garbage-date"}, names(roster.Order(in)))
}

func TestOrder_Empty(t *testing.T) {
	assert.Empty(t, roster.Order(nil))
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty result", roster.ErrNoResults, roster.MsgNoCharacters},
		{"404", &swapi.StatusError{StatusCode: http.StatusNotFound}, roster.MsgNoCharacters},
		{"500", &swapi.StatusError{StatusCode: http.StatusInternalServerError}, roster.MsgServerError},
		{"502", &swapi.StatusError{StatusCode: http.StatusBadGateway}, roster.MsgUnexpected},
		{"418 wrapped", fmt.Errorf("outer: %w", &swapi.StatusError{StatusCode: http.StatusTeapot}), roster.MsgUnexpected},
		{"network", fmt.Errorf("%w: dial tcp: refused", swapi.ErrNetwork), roster.MsgNetwork},
		{"decode", fmt.Errorf("%w: eof", swapi.ErrDecode), roster.MsgGeneric},
		{"other", errors.New("boom"), roster.MsgGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roster.Message(tt.err))
		})
	}
}

func TestSearcher_Success(t *testing.T) {
	lister := &fakeLister{page: &swapi.PeoplePage{Count: 82, Results: samplePeople()}}
	s := roster.NewSearcher(lister)

	res := s.Search(context.Background(), "a", 2, 25)

	require.False(t, res.Failed())
	assert.Empty(t, res.Message)
	assert.Len(t, res.Characters, len(samplePeople()))
	assert.Equal(t, "Anakin Skywalker", res.Characters[0].Name)
	assert.Equal(t, 82, res.Count)
	assert.Equal(t, 4, res.TotalPages)
	assert.Equal(t, []string{"a#2"}, lister.calls)

	state := s.State()
	assert.False(t, state.Loading)
	assert.Equal(t, res, state.Result)
}

func TestSearcher_LatestSearchOwnsState(t *testing.T) {
	lister := &gatedLister{
		started: make(chan string),
		gates:   map[string]chan struct{}{"old": make(chan struct{}), "new": make(chan struct{})},
	}
	s := roster.NewSearcher(lister)

	run := func(query string) <-chan roster.Result {
		done := make(chan roster.Result, 1)
		go func() { done <- s.Search(context.Background(), query, 1, 25) }()
		return done
	}

	oldDone := run("old")
	require.Equal(t, "old", <-lister.started)
	assert.True(t, s.State().Loading, "in flight")

	newDone := run("new")
	require.Equal(t, "new", <-lister.started)
	assert.True(t, s.State().Loading)

	close(lister.gates["new"])
	newRes := <-newDone
	assert.Equal(t, "new", newRes.Query)

	close(lister.gates["old"])
	oldRes := <-oldDone
	assert.Equal(t, "old", oldRes.Query, "a late search still returns its own result")

	state := s.State()
	assert.False(t, state.Loading)
	assert.Equal(t, "new", state.Result.Query)
	assert.Equal(t, []string{"new"}, names(state.Result.Characters))
}

func TestSearcher_TotalPagesFollowsDisplayPageSize(t *testing.T) {
	lister := &fakeLister{page: &swapi.PeoplePage{Count: 82, Results: samplePeople()}}
	s := roster.NewSearcher(lister)

	for _, size := range pagination.PageSizeOptions() {
		res := s.Search(context.Background(), "", 1, size)
		assert.Equal(t, pagination.TotalPages(82, size), res.TotalPages, "size %d", size)
	}
}

func TestSearcher_EmptyResults(t *testing.T) {
	lister := &fakeLister{page: &swapi.PeoplePage{Count: 0, Results: []swapi.Character{}}}
	s := roster.NewSearcher(lister)

	res := s.Search(context.Background(), "zzz", 1, 25)

	require.True(t, res.Failed())
	assert.ErrorIs(t, res.Err, roster.ErrNoResults)
	assert.Equal(t, roster.MsgNoCharacters, res.Message)
	assert.Empty(t, res.Characters)
	assert.Equal(t, 1, res.TotalPages)
}

func TestSearcher_InvalidParamsSkipRequest(t *testing.T) {
	lister := &fakeLister{page: &swapi.PeoplePage{}}
	s := roster.NewSearcher(lister)

	res := s.Search(context.Background(), "luke", 1, 33)
	assert.ErrorIs(t, res.Err, pagination.ErrInvalidPageSize)
	assert.Equal(t, roster.MsgGeneric, res.Message)

	res = s.Search(context.Background(), "luke", 0, 25)
	assert.ErrorIs(t, res.Err, pagination.ErrInvalidPage)

	assert.Empty(t, lister.calls)
}

func TestSearcher_ErrorStatuses(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusNotFound, roster.MsgNoCharacters},
		{http.StatusInternalServerError, roster.MsgServerError},
		{http.StatusServiceUnavailable, roster.MsgUnexpected},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := swapi.NewClient(swapi.WithBaseURL(srv.URL), swapi.WithHTTPClient(srv.Client()))
			res := roster.NewSearcher(client).Search(context.Background(), "luke", 1, 25)

			assert.Equal(t, tt.want, res.Message)
			assert.Empty(t, res.Characters)
			assert.Equal(t, 1, res.TotalPages)
		})
	}
}

func TestSearcher_EndToEndAgainstHTTP(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = fmt.Fprint(w, `{"count":2,"results":[
			{"name":"Han Solo","birth_year":"29BBY","eye_color":"brown","created":"2014-12-10T16:49:14.582000Z"},
			{"name":"Luke Skywalker","birth_year":"19BBY","eye_color":"blue","created":"2014-12-09T13:50:51.644000Z"}
		]}`)
	}))
	defer srv.Close()

	client := swapi.NewClient(swapi.WithBaseURL(srv.URL), swapi.WithHTTPClient(srv.Client()))
	res := roster.NewSearcher(client).Search(context.Background(), "Luke", 1, 25)

	assert.Equal(t, "page=1&search=Luke", gotQuery)
	assert.Equal(t, []string{"Luke Skywalker", "Han Solo"}, names(res.Characters))
	assert.Equal(t, 1, res.TotalPages)
}

func TestResult_SummaryAndMeta(t *testing.T) {
	res := roster.Result{
		Page:       1,
		PageSize:   25,
		Count:      1024,
		TotalPages: 41,
		Characters: make([]swapi.Character, 10),
	}
	assert.Equal(t, "Showing 10 of 1,024 characters (page 1 / 41)", res.Summary())

	meta := res.Meta()
	assert.True(t, meta.HasNext)
	assert.False(t, meta.HasPrevious)
	assert.Equal(t, 41, meta.TotalPages)
}

func TestSearcher_InitialState(t *testing.T) {
	s := roster.NewSearcher(&fakeLister{})
	state := s.State()
	assert.False(t, state.Loading)
	assert.Empty(t, state.Result.Characters)
	assert.Equal(t, pagination.DefaultPageSize, state.Result.PageSize)
}
