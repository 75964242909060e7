package domain

// BreakdownSource identifica a procedência de um recorte analítico: dado real
// vindo da fonte ou estimativa proporcional sintetizada localmente.
type BreakdownSource string

const (
	SourceAPI         BreakdownSource = "api"
	SourceSynthesized BreakdownSource = "synthesized"
)

// BreakdownDimension nomeia os recortes analíticos suportados
type BreakdownDimension string

const (
	DimensionDevice       BreakdownDimension = "device"
	DimensionAge          BreakdownDimension = "age"
	DimensionGender       BreakdownDimension = "gender"
	DimensionHourly       BreakdownDimension = "hourly"
	DimensionWeekly       BreakdownDimension = "weekly"
	DimensionKeywords     BreakdownDimension = "keywords"
	DimensionLocations    BreakdownDimension = "locations"
	DimensionLandingPages BreakdownDimension = "landing-pages"
	DimensionSearchTerms  BreakdownDimension = "search-terms"
)

// SegmentStat é uma fatia genérica de um recorte (dispositivo, faixa etária,
// gênero, hora do dia, dia da semana, localização...)
type SegmentStat struct {
	Segment     string  `json:"segment"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`
	Share       float64 `json:"share"`
}

// KeywordStat é uma linha do recorte de palavras-chave
type KeywordStat struct {
	Keyword      string  `json:"keyword"`
	MatchType    string  `json:"match_type,omitempty"`
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	Clicks       int64   `json:"clicks"`
	Impressions  int64   `json:"impressions"`
	Cost         float64 `json:"cost"`
	CPC          float64 `json:"cpc"`
	Conversions  float64 `json:"conversions"`
}

// PageStat é uma linha dos recortes de páginas de destino e termos de busca
type PageStat struct {
	Label       string  `json:"label"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	Conversions float64 `json:"conversions"`
}

// SegmentBreakdown é um recorte segmentado com sua procedência
type SegmentBreakdown struct {
	Source BreakdownSource `json:"source"`
	Items  []SegmentStat   `json:"items"`
}

// KeywordBreakdown é o recorte de palavras-chave com sua procedência
type KeywordBreakdown struct {
	Source BreakdownSource `json:"source"`
	Items  []KeywordStat   `json:"items"`
}

// PageBreakdown é um recorte de páginas/termos com sua procedência
type PageBreakdown struct {
	Source BreakdownSource `json:"source"`
	Items  []PageStat      `json:"items"`
}

// BreakdownData agrupa os recortes retornados pela fonte de dados. Qualquer
// fatia pode vir vazia ou ausente — o módulo de análise decide entre repassar,
// sintetizar ou devolver vazio.
type BreakdownData struct {
	Devices      []SegmentStat `json:"devices,omitempty"`
	AgeRanges    []SegmentStat `json:"age_ranges,omitempty"`
	Genders      []SegmentStat `json:"genders,omitempty"`
	Hourly       []SegmentStat `json:"hourly,omitempty"`
	Weekly       []SegmentStat `json:"weekly,omitempty"`
	Keywords     []KeywordStat `json:"keywords,omitempty"`
	Locations    []SegmentStat `json:"locations,omitempty"`
	LandingPages []PageStat    `json:"landing_pages,omitempty"`
	SearchTerms  []PageStat    `json:"search_terms,omitempty"`
}
