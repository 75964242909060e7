package aggregating

import (
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// Converter normaliza um valor monetário para USD
type Converter interface {
	ConvertToUSD(amount float64, sourceCurrency string) float64
}

// Service reduz uma coleção de campanhas a um MetricsSnapshot: somas brutas
// mais as métricas derivadas, com guarda de divisão por zero.
type Service struct {
	converter Converter
}

func NewService(converter Converter) *Service {
	return &Service{
		converter: converter,
	}
}

// Snapshot agrega a coleção recebida. Quando allCampaigns é verdadeiro as
// moedas heterogêneas são reconciliadas em USD antes da soma; com uma única
// campanha selecionada os valores ficam na moeda nativa.
func (s *Service) Snapshot(campaigns []domain.Campaign, allCampaigns bool) domain.MetricsSnapshot {
	snapshot := domain.MetricsSnapshot{}

	for _, c := range campaigns {
		snapshot.Clicks += c.Clicks
		snapshot.Impressions += c.Impressions
		snapshot.Conversions += c.Conversions

		cost := c.Cost
		revenue := c.ConversionsValue
		if allCampaigns && c.CurrencyOrDefault() != "USD" {
			cost = s.converter.ConvertToUSD(cost, c.Currency)
			revenue = s.converter.ConvertToUSD(revenue, c.Currency)
		}

		snapshot.Cost += cost
		snapshot.Revenue += revenue
	}

	deriveRatios(&snapshot)

	return snapshot
}

func deriveRatios(m *domain.MetricsSnapshot) {
	if m.Impressions > 0 {
		m.CTR = utils.RoundWithTwoDecimalPlace(float64(m.Clicks) / float64(m.Impressions) * 100)
	}
	if m.Clicks > 0 {
		m.CPC = utils.RoundWithTwoDecimalPlace(m.Cost / float64(m.Clicks))
		m.ConversionRate = utils.RoundWithTwoDecimalPlace(m.Conversions / float64(m.Clicks) * 100)
	}
	if m.Cost > 0 {
		m.ROAS = utils.RoundWithTwoDecimalPlace(m.Revenue / m.Cost)
	}
	if m.Conversions > 0 {
		m.CostPerConversion = utils.RoundWithTwoDecimalPlace(m.Cost / m.Conversions)
	}
}
