package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	client := New(Config{BaseURL: "http://localhost:8000/api/"})

	assert.Equal(t, "http://localhost:8000/api", client.baseURL)
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
	assert.Equal(t, "application/json", client.headers.Get("Accept"))
}

func TestNew_CustomHeaders(t *testing.T) {
	client := New(Config{
		BaseURL: "http://localhost:8000",
		Timeout: 5 * time.Second,
		Headers: map[string]string{"Authorization": "Token abc"},
	})

	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	assert.Equal(t, "Token abc", client.headers.Get("Authorization"))
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/reviews/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		_, err := uuid.Parse(r.Header.Get(RequestIDHeader))
		assert.NoError(t, err, "request id should be a uuid")

		json.NewEncoder(w).Encode(map[string]any{"data": []string{"a", "b"}})
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL + "/api"})

	var out struct {
		Data []string `json:"data"`
	}
	require.NoError(t, client.Get(context.Background(), "/reviews/", &out))
	assert.Equal(t, []string{"a", "b"}, out.Data)
}

func TestClient_GetPropagatesInboundRequestID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "host/abc-000001", r.Header.Get(RequestIDHeader))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "host/abc-000001")
	client := New(Config{BaseURL: server.URL})
	require.NoError(t, client.Get(ctx, "/reviews/", nil))
}

func TestClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello", body["content"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": 9, "content": "hello"}})
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})

	var out struct {
		Data struct {
			ID      int64  `json:"id"`
			Content string `json:"content"`
		} `json:"data"`
	}
	require.NoError(t, client.Post(context.Background(), "/reviews/", map[string]string{"content": "hello"}, &out))
	assert.Equal(t, int64(9), out.Data.ID)
	assert.Equal(t, "hello", out.Data.Content)
}

func TestClient_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"content":["This field may not be blank."]}` + "\n"))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})
	err := client.Post(context.Background(), "/reviews/", map[string]string{"content": ""}, nil)
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, http.MethodPost, httpErr.Method)
	assert.Equal(t, "/reviews/", httpErr.Path)
	assert.Equal(t, `{"content":["This field may not be blank."]}`, httpErr.Body)
	assert.Contains(t, err.Error(), "status 400")
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := New(Config{BaseURL: url, Timeout: time.Second})
	err := client.Get(context.Background(), "/reviews/", nil)
	require.Error(t, err)

	var httpErr *HTTPError
	assert.False(t, errors.As(err, &httpErr))
	assert.Contains(t, err.Error(), "send request")
}

func TestClient_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})

	var out map[string]any
	err := client.Get(context.Background(), "/reviews/", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}
