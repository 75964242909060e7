package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa os contadores Prometheus do pipeline do dashboard
type Metrics struct {
	// Resultado de cada fetch: success | upstream_error | skipped
	Fetches *prometheus.CounterVec

	// Leituras de cache por desfecho: hit | stale_hit | miss
	CacheReads *prometheus.CounterVec

	// Respostas descartadas por terem sido superadas por um fetch mais novo
	StaleResponsesDropped prometheus.Counter

	// Mutações de status por desfecho: confirmed | rolled_back
	StatusToggles *prometheus.CounterVec

	// Duração da chamada à fonte de dados
	UpstreamLatency prometheus.Histogram
}

// CountFetch registra o desfecho de um fetch do dashboard
func (m *Metrics) CountFetch(result string) {
	if m == nil {
		return
	}
	m.Fetches.WithLabelValues(result).Inc()
}

// CountCacheRead registra o desfecho de uma leitura de cache
func (m *Metrics) CountCacheRead(outcome string) {
	if m == nil {
		return
	}
	m.CacheReads.WithLabelValues(outcome).Inc()
}

// CountStaleResponseDropped registra uma resposta descartada por obsolescência
func (m *Metrics) CountStaleResponseDropped() {
	if m == nil {
		return
	}
	m.StaleResponsesDropped.Inc()
}

// CountStatusToggle registra o desfecho de uma mutação otimista de status
func (m *Metrics) CountStatusToggle(outcome string) {
	if m == nil {
		return
	}
	m.StatusToggles.WithLabelValues(outcome).Inc()
}

// ObserveUpstreamLatency registra a duração de uma chamada à fonte de dados
func (m *Metrics) ObserveUpstreamLatency(d time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamLatency.Observe(d.Seconds())
}

// New cria e registra as métricas no registrador padrão
func New(namespace string) *Metrics {
	return &Metrics{
		Fetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetches_total",
				Help:      "Total de fetches do dashboard por resultado",
			},
			[]string{"result"},
		),
		CacheReads: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_reads_total",
				Help:      "Total de leituras do cache do dashboard por desfecho",
			},
			[]string{"outcome"},
		),
		StaleResponsesDropped: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stale_responses_dropped_total",
				Help:      "Respostas da fonte descartadas por não serem mais as mais recentes",
			},
		),
		StatusToggles: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "status_toggles_total",
				Help:      "Mutações otimistas de status por desfecho",
			},
			[]string{"outcome"},
		),
		UpstreamLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_latency_seconds",
				Help:      "Duração das chamadas à fonte de dados do Google Ads",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}
