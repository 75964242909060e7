package domain

// CampaignType representa o tipo de campanha reportado pelo Google Ads
type CampaignType string

const (
	CampaignTypeSearch         CampaignType = "SEARCH"
	CampaignTypeVideo          CampaignType = "VIDEO"
	CampaignTypeShopping       CampaignType = "SHOPPING"
	CampaignTypeDisplay        CampaignType = "DISPLAY"
	CampaignTypePerformanceMax CampaignType = "PERFORMANCE_MAX"
)

// CampaignStatus representa o status operacional de uma campanha
type CampaignStatus string

const (
	CampaignStatusEnabled CampaignStatus = "ENABLED"
	CampaignStatusPaused  CampaignStatus = "PAUSED"
	CampaignStatusRemoved CampaignStatus = "REMOVED"
)

// Campaign representa uma campanha de anúncios como reportada pela fonte de dados.
// Campos numéricos são sempre não-negativos; Currency vazio implica USD.
type Campaign struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Type              CampaignType   `json:"type"`
	Status            CampaignStatus `json:"status"`
	Currency          string         `json:"currency,omitempty"`
	Cost              float64        `json:"cost"`
	Impressions       int64          `json:"impressions"`
	Clicks            int64          `json:"clicks"`
	CTR               float64        `json:"ctr"`
	Conversions       float64        `json:"conversions"`
	ConversionsValue  float64        `json:"conversions_value"`
	AverageCPC        float64        `json:"average_cpc"`
	AverageCPM        float64        `json:"average_cpm"`
	CostPerConversion float64        `json:"cost_per_conversion"`
	ROAS              float64        `json:"roas"`
	CustomerID        string         `json:"customer_id"`
	Budget            float64        `json:"budget"`
}

// CurrencyOrDefault retorna a moeda da campanha, assumindo USD quando ausente
func (c Campaign) CurrencyOrDefault() string {
	if c.Currency == "" {
		return "USD"
	}
	return c.Currency
}

// ToggledStatus retorna o status resultante de uma ação de alternância.
// REMOVED não participa da alternância e é devolvido inalterado.
func ToggledStatus(status CampaignStatus) CampaignStatus {
	switch status {
	case CampaignStatusEnabled:
		return CampaignStatusPaused
	case CampaignStatusPaused:
		return CampaignStatusEnabled
	}
	return status
}

// StatusTransitionState identifica o desfecho de uma atualização otimista de status
type StatusTransitionState string

const (
	TransitionConfirmed  StatusTransitionState = "confirmed"
	TransitionRolledBack StatusTransitionState = "rolled_back"
)

// StatusTransition descreve uma transição otimista de status de campanha:
// aplicada localmente de imediato e depois confirmada ou revertida conforme
// a resposta da fonte remota.
type StatusTransition struct {
	CampaignID string                `json:"campaign_id"`
	From       CampaignStatus        `json:"from"`
	To         CampaignStatus        `json:"to"`
	State      StatusTransitionState `json:"state"`
	Reason     string                `json:"reason,omitempty"`
}
