package domain

// DashboardRequest é o corpo enviado à fonte de dados do Google Ads
type DashboardRequest struct {
	TimeRangeBucket string `json:"timeRangeBucket"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Label           string `json:"label"`
	ForceRefresh    bool   `json:"forceRefresh"`
	CampaignID      string `json:"campaignId,omitempty"`
}

// DashboardResponse é o envelope de resposta da fonte de dados
type DashboardResponse struct {
	Success bool              `json:"success"`
	Data    *DashboardPayload `json:"data"`
	Meta    *ResponseMeta     `json:"meta,omitempty"`
	Error   string            `json:"error,omitempty"`
}

type ResponseMeta struct {
	RequestedAt string `json:"requestedAt,omitempty"`
	Source      string `json:"source,omitempty"`
}

// DashboardPayload é o conteúdo útil de uma resposta bem-sucedida
type DashboardPayload struct {
	Campaigns       []Campaign         `json:"campaigns"`
	Metrics         *Metrics           `json:"metrics,omitempty"`
	PerformanceData []PerformancePoint `json:"performanceData,omitempty"`
	AIInsights      []AIInsight        `json:"aiInsights,omitempty"`
	Recommendations []Recommendation   `json:"recommendations,omitempty"`
	Breakdowns      *Breakdowns        `json:"breakdowns,omitempty"`
}

type Campaign struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	Status            string  `json:"status"`
	Currency          string  `json:"currency,omitempty"`
	Cost              float64 `json:"cost"`
	Impressions       int64   `json:"impressions"`
	Clicks            int64   `json:"clicks"`
	CTR               float64 `json:"ctr"`
	Conversions       float64 `json:"conversions"`
	ConversionsValue  float64 `json:"conversionsValue"`
	AverageCPC        float64 `json:"averageCpc"`
	AverageCPM        float64 `json:"averageCpm"`
	CostPerConversion float64 `json:"costPerConversion"`
	ROAS              float64 `json:"roas"`
	CustomerID        string  `json:"customerId"`
	Budget            float64 `json:"budget"`
}

type Metrics struct {
	Clicks       int64    `json:"clicks"`
	Impressions  int64    `json:"impressions"`
	Cost         float64  `json:"cost"`
	Conversions  float64  `json:"conversions"`
	Revenue      float64  `json:"revenue"`
	QualityScore *float64 `json:"qualityScore,omitempty"`
}

type PerformancePoint struct {
	Date        string  `json:"date"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`
}

type AIInsight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity,omitempty"`
}

type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact,omitempty"`
}

type Segment struct {
	Segment     string  `json:"segment"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`
}

type Keyword struct {
	Keyword      string  `json:"keyword"`
	MatchType    string  `json:"matchType,omitempty"`
	CampaignID   string  `json:"campaignId"`
	CampaignName string  `json:"campaignName"`
	Clicks       int64   `json:"clicks"`
	Impressions  int64   `json:"impressions"`
	Cost         float64 `json:"cost"`
	Conversions  float64 `json:"conversions"`
}

type Page struct {
	Label       string  `json:"label"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	Conversions float64 `json:"conversions"`
}

type Breakdowns struct {
	Devices      []Segment `json:"devices,omitempty"`
	AgeRanges    []Segment `json:"ageRanges,omitempty"`
	Genders      []Segment `json:"genders,omitempty"`
	Hourly       []Segment `json:"hourly,omitempty"`
	Weekly       []Segment `json:"weekly,omitempty"`
	Keywords     []Keyword `json:"keywords,omitempty"`
	Locations    []Segment `json:"locations,omitempty"`
	LandingPages []Page    `json:"landingPages,omitempty"`
	SearchTerms  []Page    `json:"searchTerms,omitempty"`
}

// StatusUpdateRequest é o corpo da mutação de status de campanha
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// StatusUpdateResponse é o envelope de resposta da mutação de status
type StatusUpdateResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
