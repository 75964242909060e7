package domain

// AIInsight é um destaque textual gerado pela fonte de dados
type AIInsight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity,omitempty"`
}

// Recommendation é uma sugestão de otimização vinda da fonte de dados
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact,omitempty"`
}

// DashboardData é o resultado completo de um fetch bem-sucedido. É aplicado ao
// estado da sessão de forma atômica: ou tudo, ou nada.
type DashboardData struct {
	Campaigns       []Campaign         `json:"campaigns"`
	Metrics         *MetricsSnapshot   `json:"metrics"`
	PerformanceData []PerformancePoint `json:"performance_data"`
	AIInsights      []AIInsight        `json:"ai_insights,omitempty"`
	Recommendations []Recommendation   `json:"recommendations,omitempty"`
	Breakdowns      *BreakdownData     `json:"breakdowns,omitempty"`
	QualityScore    *float64           `json:"quality_score,omitempty"`
}

// DashboardView é a projeção do estado da sessão entregue à camada de
// apresentação: campanhas já filtradas, métricas agregadas conforme o seletor
// ativo e indicadores de frescor/carregamento.
type DashboardView struct {
	Campaigns       []Campaign         `json:"campaigns"`
	Metrics         MetricsSnapshot    `json:"metrics"`
	PerformanceData []PerformancePoint `json:"performance_data"`
	AIInsights      []AIInsight        `json:"ai_insights,omitempty"`
	Recommendations []Recommendation   `json:"recommendations,omitempty"`
	HealthScores    map[string]int     `json:"health_scores"`
	QualityScore    float64            `json:"quality_score"`
	DisplayCurrency string             `json:"display_currency"`
	TimeRangeLabel  string             `json:"time_range_label"`
	CampaignFilter  string             `json:"campaign_filter"`
	Cached          bool               `json:"cached"`
	Loading         bool               `json:"loading"`
	LastError       string             `json:"last_error,omitempty"`
}
