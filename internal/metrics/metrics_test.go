package metrics_test

import (
	"testing"

	"github.com/nearby-restaurants/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	m.Searches.WithLabelValues("success").Inc()
	m.Searches.WithLabelValues("failure").Inc()
	m.Searches.WithLabelValues("success").Inc()
	m.APIErrors.Inc()
	m.RequestSeconds.WithLabelValues("http").Observe(0.2)
	m.HTTPRequests.WithLabelValues("GET", "/restuarants", "200").Inc()

	assert.InDelta(t, 2, testutil.ToFloat64(m.Searches.WithLabelValues("success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Searches.WithLabelValues("failure")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.APIErrors), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestSeconds))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewMetrics(reg)

	assert.Panics(t, func() {
		metrics.NewMetrics(reg)
	})
}
