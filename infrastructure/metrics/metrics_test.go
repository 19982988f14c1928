package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest("search", OutcomeOK)
	m.ObserveRequest("search", OutcomeOK)
	m.ObserveRequest("videos", OutcomeError)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.apiRequests.WithLabelValues("search", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.apiRequests.WithLabelValues("videos", OutcomeError)))
}

func TestObserveRefresh(t *testing.T) {
	m := New()

	m.ObserveRefresh(1500*time.Millisecond, 9)

	assert.Equal(t, 9.0, testutil.ToFloat64(m.feedVideos))
	assert.Equal(t, 1, testutil.CollectAndCount(m.refreshDuration))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveRequest("channels", OutcomeOK)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `socialite_youtube_requests_total{endpoint="channels",outcome="ok"} 1`)
}
