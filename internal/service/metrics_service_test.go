package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func scrapeMetrics(m *MetricsService) string {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	m.Handler().ServeHTTP(w, req)
	return w.Body.String()
}

func TestMetricsServiceExposesCollectors(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/api/students", http.StatusOK, 10*time.Millisecond)
	m.ObserveDBQuery("students.list", time.Millisecond)
	m.RecordSOAPOperation("GetEnrollments", OutcomeSuccess)
	m.RecordSOAPOperation("GetEnrollments", OutcomeSuccess)
	m.RecordSOAPOperation("Unknown", OutcomeClientError)

	body := scrapeMetrics(m)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/students",status="200"} 1`)
	assert.Contains(t, body, `db_query_duration_seconds_count{query="students.list"} 1`)
	assert.Contains(t, body, `soap_operations_total{operation="GetEnrollments",outcome="success"} 2`)
	assert.Contains(t, body, `soap_operations_total{operation="Unknown",outcome="client_error"} 1`)
	assert.Contains(t, body, "goroutines_total")
}

func TestMetricsServiceCacheHitRatio(t *testing.T) {
	m := NewMetricsService()
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordCacheOperation(false, time.Millisecond)

	body := scrapeMetrics(m)
	assert.Contains(t, body, "cache_hits_total 3")
	assert.Contains(t, body, "cache_misses_total 1")
	assert.Contains(t, body, "cache_hit_ratio 0.75")
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest(http.MethodPost, "/soap", http.StatusBadRequest, time.Millisecond)
		m.RecordCacheOperation(false, time.Millisecond)
		m.ObserveCacheWrite(time.Millisecond)
		m.ObserveDBQuery("grades.create", time.Millisecond)
		m.RecordSOAPOperation("CreateEnrollment", OutcomeServerError)
	})

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
