package domain

import "time"

// DefaultCacheTTL é o tempo de vida padrão de uma entrada de cache do dashboard
const DefaultCacheTTL = time.Hour

// CacheEntry guarda o resultado do último fetch bem-sucedido do dashboard,
// junto com o instante e o rótulo de período para os quais foi calculado.
type CacheEntry struct {
	Campaigns       []Campaign         `json:"campaigns"`
	Metrics         *MetricsSnapshot   `json:"metrics"`
	PerformanceData []PerformancePoint `json:"performance_data"`
	Timestamp       time.Time          `json:"timestamp"`
	TimeRangeLabel  string             `json:"time_range_label"`
}

// IsEmpty indica se a entrada é estruturalmente vazia. Uma entrada sem
// campanhas equivale a ausência de cache.
func (e *CacheEntry) IsEmpty() bool {
	return e == nil || len(e.Campaigns) == 0
}

// IsValid indica se a entrada ainda pode ser usada sem revalidação:
// idade menor que o TTL e mesmo rótulo de período ativo.
func (e *CacheEntry) IsValid(now time.Time, activeLabel string, ttl time.Duration) bool {
	if e.IsEmpty() {
		return false
	}
	return now.Sub(e.Timestamp) < ttl && e.TimeRangeLabel == activeLabel
}
