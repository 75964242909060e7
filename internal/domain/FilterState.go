package domain

// AllCampaigns é o valor do seletor de campanha ativa que representa "todas"
const AllCampaigns = "all"

// PerformanceFilters são pisos numéricos opcionais aplicados às campanhas.
// Um ponteiro nulo significa "não aplicar este piso".
type PerformanceFilters struct {
	MinROAS        *float64 `json:"min_roas,omitempty"`
	MinCTR         *float64 `json:"min_ctr,omitempty"`
	MinConversions *float64 `json:"min_conversions,omitempty"`
}

// FilterState é o conjunto declarativo de filtros do usuário. Não tem efeito
// sobre o cache nem sobre o fetch remoto — apenas restringe quais campanhas
// alimentam a agregação de métricas.
type FilterState struct {
	SelectedType       CampaignType       `json:"selected_type,omitempty"`
	CampaignTypes      []CampaignType     `json:"campaign_types,omitempty"`
	Statuses           []CampaignStatus   `json:"statuses,omitempty"`
	SearchQuery        string             `json:"search_query,omitempty"`
	PerformanceFilters PerformanceFilters `json:"performance_filters"`
}
