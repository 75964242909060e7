package domain

// MetricsSnapshot agrega uma coleção de campanhas: somas brutas mais métricas
// derivadas. As razões valem 0 quando o denominador é 0 — nunca NaN/Inf.
type MetricsSnapshot struct {
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`
	Revenue     float64 `json:"revenue"`

	CTR               float64 `json:"ctr"`
	CPC               float64 `json:"cpc"`
	ROAS              float64 `json:"roas"`
	ConversionRate    float64 `json:"conversion_rate"`
	CostPerConversion float64 `json:"cost_per_conversion"`
}

// PerformancePoint é um ponto da série temporal de performance exibida nos gráficos
type PerformancePoint struct {
	Date        string  `json:"date"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`
}
