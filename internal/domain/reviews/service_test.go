package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewhub/internal/api"
)

func TestService_GetReviews(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/reviews/", r.URL.Path)

		w.Write([]byte(`{"data":[
			{"id":2,"content":"nice","created_at":"2026-10-14T09:00:00Z","status":"allowed","risk_category":"appropriate","confidence":0.97,"moderated_at":"2026-10-14T09:00:01Z"},
			{"id":1,"content":"great","created_at":"2026-10-13T09:00:00Z","status":"allowed","risk_category":"appropriate","confidence":1,"moderated_at":null}
		]}`))
	}))
	defer server.Close()

	svc := NewService(api.New(api.Config{BaseURL: server.URL}))
	got, err := svc.GetReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, "nice", got[0].Content)
	assert.Equal(t, StatusAllowed, got[0].Status)
	assert.InDelta(t, 0.97, got[0].Confidence, 1e-9)
	assert.True(t, got[0].ModeratedAt.Valid)
	assert.Equal(t, time.Date(2026, 10, 14, 9, 0, 1, 0, time.UTC), got[0].ModeratedAt.Time)

	assert.Equal(t, int64(1), got[1].ID)
	assert.False(t, got[1].ModeratedAt.Valid)
}

func TestService_CreateReview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/reviews/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"content": "hello"}, body)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":7,"content":"hello","status":"pending","risk_category":"unknown","confidence":0}}`))
	}))
	defer server.Close()

	svc := NewService(api.New(api.Config{BaseURL: server.URL}))
	got, err := svc.CreateReview(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "hello", got.Content)
	assert.Equal(t, StatusPending, got.Status)
	assert.False(t, got.Published())
}

func TestService_AcceptsBareBodies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(` [{"id":2,"content":"nice","status":"allowed"},{"id":1,"content":"great"}]`))
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":3,"content":"hello","status":"pending"}`))
		}
	}))
	defer server.Close()

	svc := NewService(api.New(api.Config{BaseURL: server.URL}))

	list, err := svc.GetReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "nice", list[0].Content)
	assert.Equal(t, "great", list[1].Content)

	created, err := svc.CreateReview(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
	assert.Equal(t, StatusPending, created.Status)
}

func TestUnwrap(t *testing.T) {
	var list []Review
	require.NoError(t, unwrap(json.RawMessage(`{"data":null}`), &list))
	assert.Nil(t, list)

	err := unwrap(json.RawMessage(`{"detail":"not found"}`), &list)
	assert.ErrorContains(t, err, "decode response")

	var r Review
	err = unwrap(json.RawMessage(`{"data":`), &r)
	assert.ErrorContains(t, err, "decode response")
}

type failingRequester struct {
	err error
}

func (f failingRequester) Get(context.Context, string, any) error        { return f.err }
func (f failingRequester) Post(context.Context, string, any, any) error { return f.err }

func TestService_PropagatesErrorsUnmodified(t *testing.T) {
	boom := &api.HTTPError{Method: http.MethodGet, Path: "/reviews/", StatusCode: http.StatusServiceUnavailable}
	svc := NewService(failingRequester{err: boom})

	_, err := svc.GetReviews(context.Background())
	assert.Same(t, boom, err)

	_, err = svc.CreateReview(context.Background(), "hello")
	assert.Same(t, boom, err)

	transport := errors.New("connection refused")
	svc = NewService(failingRequester{err: transport})
	_, err = svc.GetReviews(context.Background())
	assert.Equal(t, transport, err)
}

func TestReview_Published(t *testing.T) {
	assert.True(t, Review{}.Published())
	assert.True(t, Review{Status: StatusAllowed}.Published())
	assert.False(t, Review{Status: StatusPending}.Published())
	assert.False(t, Review{Status: StatusToBeDeleted}.Published())
}
