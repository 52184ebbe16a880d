package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "campaign_insights"

// Metrics agrupa os coletores expostos em /metrics. Cada instância tem o seu
// próprio registry, o que permite criar várias nos testes.
type Metrics struct {
	registry *prometheus.Registry

	malformedRecords *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	retentionDeleted prometheus.Counter
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		malformedRecords: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "malformed_records_total",
			Help:      "Registros de performance descartados por estarem malformados.",
		}, []string{"operation"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requisições HTTP atendidas.",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latência das requisições HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		retentionDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retention_deleted_records_total",
			Help:      "Registros removidos pela rotina de retenção.",
		}),
	}
}

// ObserveSkipped tem a mesma assinatura de aggregating.SkipObserver
func (m *Metrics) ObserveSkipped(operation string, skipped int) {
	if skipped <= 0 {
		return
	}
	m.malformedRecords.WithLabelValues(operation).Add(float64(skipped))
}

func (m *Metrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) AddRetentionDeleted(deleted int64) {
	if deleted <= 0 {
		return
	}
	m.retentionDeleted.Add(float64(deleted))
}

// Handler expõe o registry no formato de exposição do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
