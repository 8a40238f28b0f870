package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue finds the counter in family name whose labels include all of want.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, want map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if labelsMatch(metric, want) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func labelsMatch(metric *dto.Metric, want map[string]string) bool {
	matched := 0
	for _, lp := range metric.GetLabel() {
		if v, ok := want[lp.GetName()]; ok && v == lp.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}

func TestMiddlewareLabelsByPattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/questions/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := m.Middleware(mux)

	for _, id := range []string{"1", "2"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/questions/"+id, nil))
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 2.0, counterValue(t, reg, "http_requests_total", map[string]string{
		"method": http.MethodDelete, "route": "DELETE /api/questions/{id}", "status": "404",
	}))
	assert.Equal(t, 1.0, counterValue(t, reg, "http_requests_total", map[string]string{
		"method": http.MethodGet, "route": "unmatched", "status": "404",
	}))
}

func TestObserveGeneration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveGeneration("fallback")
	m.ObserveGeneration("fallback")
	m.ObserveGeneration("gemini")

	assert.Equal(t, 2.0, counterValue(t, reg, "interview_generation_total", map[string]string{"source": "fallback"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "interview_generation_total", map[string]string{"source": "gemini"}))
}
