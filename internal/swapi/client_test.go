package swapi_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rshade/holocron/internal/swapi"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const lukePage = `{
  "count": 1,
  "next": null,
  "previous": null,
  "results": [
    {
      "name": "Luke Skywalker",
      "birth_year": "19BBY",
      "eye_color": "blue",
      "created": "2014-12-09T13:50:51.644000Z"
    }
  ]
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *swapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return swapi.NewClient(
		swapi.WithBaseURL(srv.URL),
		swapi.WithHTTPClient(srv.Client()),
	)
}

func TestPeopleURL(t *testing.T) {
	c := swapi.NewClient()

	tests := []struct {
		name  string
		query string
		page  int
		want  string
	}{
		{"with query", "Luke", 1, "https://swapi.dev/api/people/?page=1&search=Luke"},
		{"empty query omits search", "", 3, "https://swapi.dev/api/people/?page=3"},
		{"query is encoded", "Obi-Wan Kenobi", 2, "https://swapi.dev/api/people/?page=2&search=Obi-Wan+Kenobi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.PeopleURL(tt.query, tt.page))
		})
	}
}

func TestWithBaseURLTrimsSlash(t *testing.T) {
	c := swapi.NewClient(swapi.WithBaseURL("http://example.test/api/"))
	assert.Equal(t, "http://example.test/api", c.BaseURL())
}

func TestListPeople_Success(t *testing.T) {
	var gotPath, gotSearch, gotPage, gotUA string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSearch = r.URL.Query().Get("search")
		gotPage = r.URL.Query().Get("page")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, lukePage)
	})

	page, err := c.ListPeople(context.Background(), "Luke", 1)
	require.NoError(t, err)

	assert.Equal(t, "/people/", gotPath)
	assert.Equal(t, "Luke", gotSearch)
	assert.Equal(t, "1", gotPage)
	assert.Equal(t, swapi.DefaultUserAgent, gotUA)

	assert.Equal(t, 1, page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Luke Skywalker", page.Results[0].Name)
	assert.Equal(t, "19BBY", page.Results[0].BirthYear)
	assert.Equal(t, "blue", page.Results[0].EyeColor)
	assert.Nil(t, page.Next)
}

func TestListPeople_NullResultsBecomeEmpty(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"count":0,"results":null}`)
	})

	page, err := c.ListPeople(context.Background(), "nobody", 1)
	require.NoError(t, err)
	assert.NotNil(t, page.Results)
	assert.Empty(t, page.Results)
}

func TestListPeople_StatusErrors(t *testing.T) {
	for _, code := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusTeapot} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, `{"detail":"nope"}`, code)
			})

			_, err := c.ListPeople(context.Background(), "x", 1)
			require.Error(t, err)

			var se *swapi.StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, code, se.StatusCode)
			assert.Equal(t, code, swapi.StatusCode(err))
			assert.False(t, errors.Is(err, swapi.ErrNetwork))
		})
	}
}

func TestListPeople_DecodeError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `<html>not json</html>`)
	})

	_, err := c.ListPeople(context.Background(), "", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, swapi.ErrDecode)
	assert.Equal(t, 0, swapi.StatusCode(err))
}

func TestListPeople_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := swapi.NewClient(swapi.WithBaseURL(base), swapi.WithTimeout(time.Second))
	_, err := c.ListPeople(context.Background(), "Luke", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, swapi.ErrNetwork)
}

func TestWithTimeout_AppliesToCopyInAnyOrder(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	shared := srv.Client()
	orders := map[string][]swapi.Option{
		"timeout last":  {swapi.WithHTTPClient(shared), swapi.WithTimeout(50 * time.Millisecond)},
		"timeout first": {swapi.WithTimeout(50 * time.Millisecond), swapi.WithHTTPClient(shared)},
	}
	for name, opts := range orders {
		t.Run(name, func(t *testing.T) {
			c := swapi.NewClient(append(opts, swapi.WithBaseURL(srv.URL))...)

			start := time.Now()
			_, err := c.ListPeople(context.Background(), "Luke", 1)
			require.ErrorIs(t, err, swapi.ErrNetwork)
			assert.Less(t, time.Since(start), 5*time.Second)
			assert.Zero(t, shared.Timeout, "caller's client is left untouched")
		})
	}
}

func TestListPeople_InvalidPage(t *testing.T) {
	called := false
	c := newTestServer(t, func(http.ResponseWriter, *http.Request) { called = true })

	_, err := c.ListPeople(context.Background(), "Luke", 0)
	require.ErrorIs(t, err, swapi.ErrInvalidPage)
	assert.False(t, called, "no request should be issued for an invalid page")
}

func TestListPeople_ContextCanceled(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, lukePage)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListPeople(ctx, "Luke", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
