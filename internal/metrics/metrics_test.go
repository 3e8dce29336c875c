package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(apiRequests.WithLabelValues("GET", "/reviews/", "200"))
	ObserveAPIRequest("GET", "/reviews/", 200, 10*time.Millisecond)
	after := testutil.ToFloat64(apiRequests.WithLabelValues("GET", "/reviews/", "200"))
	assert.Equal(t, before+1, after)

	beforeErr := testutil.ToFloat64(apiRequests.WithLabelValues("POST", "/reviews/", "error"))
	ObserveAPIRequest("POST", "/reviews/", 0, time.Millisecond)
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(apiRequests.WithLabelValues("POST", "/reviews/", "error")))
}

func TestObserveStoreLoad(t *testing.T) {
	before := testutil.ToFloat64(storeLoads.WithLabelValues(OutcomeStale))
	ObserveStoreLoad(OutcomeStale, time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(storeLoads.WithLabelValues(OutcomeStale)))
}

func TestHandler(t *testing.T) {
	SetCachedReviews(3)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "reviewhub_store_cached_reviews 3")
}
