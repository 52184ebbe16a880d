package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSkipped(t *testing.T) {
	m := New()

	m.ObserveSkipped("totals", 2)
	m.ObserveSkipped("totals", 1)
	m.ObserveSkipped("profile", 0)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.malformedRecords.WithLabelValues("totals")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.malformedRecords.WithLabelValues("profile")))
}

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/v1/campaigns", http.StatusOK, 15*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/v1/campaigns", http.StatusOK, 5*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/v1/campaigns", http.StatusInternalServerError, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/v1/campaigns", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/v1/campaigns", "500")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.httpDuration))
}

func TestAddRetentionDeleted(t *testing.T) {
	m := New()

	m.AddRetentionDeleted(10)
	m.AddRetentionDeleted(-1)

	assert.Equal(t, 10.0, testutil.ToFloat64(m.retentionDeleted))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveSkipped("timeseries", 4)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `campaign_insights_malformed_records_total{operation="timeseries"} 4`)
}
