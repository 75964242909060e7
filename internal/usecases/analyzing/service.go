package analyzing

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// Converter normaliza um valor monetário para USD
type Converter interface {
	ConvertToUSD(amount float64, sourceCurrency string) float64
}

// Tabelas de pesos fixos usadas apenas quando a fonte de dados não devolve o
// recorte: estimativa proporcional para a UI nunca ficar vazia. Todo resultado
// sintetizado é marcado com Source=synthesized.
var (
	deviceWeights = []weightedSegment{
		{"Mobile", 0.55},
		{"Desktop", 0.35},
		{"Tablet", 0.10},
	}

	ageWeights = []weightedSegment{
		{"18-24", 0.12},
		{"25-34", 0.28},
		{"35-44", 0.24},
		{"45-54", 0.18},
		{"55-64", 0.11},
		{"65+", 0.07},
	}

	genderWeights = []weightedSegment{
		{"Female", 0.48},
		{"Male", 0.46},
		{"Unknown", 0.06},
	}

	weekdayWeights = []weightedSegment{
		{"Monday", 0.15},
		{"Tuesday", 0.15},
		{"Wednesday", 0.14},
		{"Thursday", 0.14},
		{"Friday", 0.15},
		{"Saturday", 0.14},
		{"Sunday", 0.13},
	}
)

type weightedSegment struct {
	segment string
	weight  float64
}

// Service produz os recortes analíticos derivados. Prefere sempre o dado real
// da fonte; sintetiza apenas quando a dimensão inteira está ausente.
type Service struct {
	converter Converter
}

func NewService(converter Converter) *Service {
	return &Service{
		converter: converter,
	}
}

// Keywords resolve o recorte de palavras-chave para o seletor de campanha
// ativo. Com uma campanha selecionada, filtra primeiro por id exato; sem
// resultado, tenta o nome exato (sem caixa, aparado); sem resultado de novo,
// devolve vazio — nunca inventa palavras-chave para uma campanha sem dados.
func (s *Service) Keywords(
	breakdowns *domain.BreakdownData,
	campaigns []domain.Campaign,
	campaignFilter string,
	allCampaigns bool,
) domain.KeywordBreakdown {
	out := domain.KeywordBreakdown{Source: domain.SourceAPI, Items: []domain.KeywordStat{}}

	if breakdowns == nil || len(breakdowns.Keywords) == 0 {
		return out
	}

	keywords := breakdowns.Keywords

	if campaignFilter != "" && campaignFilter != domain.AllCampaigns {
		selected := filtering.SelectActive(campaigns, campaignFilter)
		if len(selected) == 0 {
			return out
		}

		matched := filterKeywordsByID(keywords, selected[0].ID)
		if len(matched) == 0 {
			matched = filterKeywordsByName(keywords, selected[0].Name)
		}
		if len(matched) == 0 {
			logrus.WithField("campaign_id", selected[0].ID).
				Debug("Sem dados de palavras-chave para a campanha selecionada")
			return out
		}
		keywords = matched
	}

	currencyByID := make(map[string]string, len(campaigns))
	currencyByName := make(map[string]string, len(campaigns))
	for _, c := range campaigns {
		currencyByID[c.ID] = c.CurrencyOrDefault()
		currencyByName[normalizeName(c.Name)] = c.CurrencyOrDefault()
	}

	for _, k := range keywords {
		stat := k

		if stat.Clicks > 0 {
			stat.CPC = utils.RoundWithTwoDecimalPlace(stat.Cost / float64(stat.Clicks))
		}

		// Normaliza o CPC pela moeda da campanha dona, como nos custos de campanha
		if allCampaigns {
			cur, ok := currencyByID[k.CampaignID]
			if !ok {
				cur = currencyByName[normalizeName(k.CampaignName)]
			}
			if cur != "" && cur != "USD" {
				stat.Cost = s.converter.ConvertToUSD(stat.Cost, cur)
				stat.CPC = s.converter.ConvertToUSD(stat.CPC, cur)
			}
		}

		out.Items = append(out.Items, stat)
	}

	return out
}

// Segments resolve um recorte segmentado (dispositivo, idade, gênero, hora,
// dia da semana, localização). Dimensão presente na fonte é repassada com
// Source=api; dimensão inteiramente ausente é sintetizada quando há tabela de
// pesos para ela.
func (s *Service) Segments(
	dimension domain.BreakdownDimension,
	breakdowns *domain.BreakdownData,
	totals domain.MetricsSnapshot,
) (domain.SegmentBreakdown, error) {
	var fromAPI []domain.SegmentStat
	if breakdowns != nil {
		switch dimension {
		case domain.DimensionDevice:
			fromAPI = breakdowns.Devices
		case domain.DimensionAge:
			fromAPI = breakdowns.AgeRanges
		case domain.DimensionGender:
			fromAPI = breakdowns.Genders
		case domain.DimensionHourly:
			fromAPI = breakdowns.Hourly
		case domain.DimensionWeekly:
			fromAPI = breakdowns.Weekly
		case domain.DimensionLocations:
			fromAPI = breakdowns.Locations
		default:
			return domain.SegmentBreakdown{}, fmt.Errorf("analytics: dimensão desconhecida: %s", dimension)
		}
	}

	if len(fromAPI) > 0 {
		return domain.SegmentBreakdown{
			Source: domain.SourceAPI,
			Items:  withShares(fromAPI),
		}, nil
	}

	weights := synthesisWeights(dimension)
	if weights == nil {
		// Sem tabela de pesos não há estimativa honesta: devolve vazio
		return domain.SegmentBreakdown{Source: domain.SourceAPI, Items: []domain.SegmentStat{}}, nil
	}

	return domain.SegmentBreakdown{
		Source: domain.SourceSynthesized,
		Items:  synthesize(weights, totals),
	}, nil
}

// Pages resolve os recortes de páginas de destino e termos de busca. Não há
// síntese: entidades não podem ser estimadas a partir de totais.
func (s *Service) Pages(
	dimension domain.BreakdownDimension,
	breakdowns *domain.BreakdownData,
) (domain.PageBreakdown, error) {
	out := domain.PageBreakdown{Source: domain.SourceAPI, Items: []domain.PageStat{}}

	if breakdowns == nil {
		return out, nil
	}

	switch dimension {
	case domain.DimensionLandingPages:
		out.Items = append(out.Items, breakdowns.LandingPages...)
	case domain.DimensionSearchTerms:
		out.Items = append(out.Items, breakdowns.SearchTerms...)
	default:
		return out, fmt.Errorf("analytics: dimensão desconhecida: %s", dimension)
	}

	return out, nil
}

func filterKeywordsByID(keywords []domain.KeywordStat, campaignID string) []domain.KeywordStat {
	var out []domain.KeywordStat
	for _, k := range keywords {
		if k.CampaignID == campaignID {
			out = append(out, k)
		}
	}
	return out
}

func filterKeywordsByName(keywords []domain.KeywordStat, campaignName string) []domain.KeywordStat {
	wanted := normalizeName(campaignName)

	var out []domain.KeywordStat
	for _, k := range keywords {
		if normalizeName(k.CampaignName) == wanted {
			out = append(out, k)
		}
	}
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func synthesisWeights(dimension domain.BreakdownDimension) []weightedSegment {
	switch dimension {
	case domain.DimensionDevice:
		return deviceWeights
	case domain.DimensionAge:
		return ageWeights
	case domain.DimensionGender:
		return genderWeights
	case domain.DimensionWeekly:
		return weekdayWeights
	case domain.DimensionHourly:
		return hourlyWeights()
	}
	return nil
}

func hourlyWeights() []weightedSegment {
	out := make([]weightedSegment, 0, 24)
	for h := 0; h < 24; h++ {
		out = append(out, weightedSegment{fmt.Sprintf("%02d:00", h), 1.0 / 24})
	}
	return out
}

func synthesize(weights []weightedSegment, totals domain.MetricsSnapshot) []domain.SegmentStat {
	out := make([]domain.SegmentStat, 0, len(weights))
	for _, w := range weights {
		out = append(out, domain.SegmentStat{
			Segment:     w.segment,
			Clicks:      int64(float64(totals.Clicks) * w.weight),
			Impressions: int64(float64(totals.Impressions) * w.weight),
			Cost:        utils.RoundWithTwoDecimalPlace(totals.Cost * w.weight),
			Conversions: utils.RoundWithTwoDecimalPlace(totals.Conversions * w.weight),
			Share:       w.weight,
		})
	}
	return out
}

func withShares(items []domain.SegmentStat) []domain.SegmentStat {
	var totalClicks int64
	for _, i := range items {
		totalClicks += i.Clicks
	}

	out := make([]domain.SegmentStat, 0, len(items))
	for _, i := range items {
		if totalClicks > 0 {
			i.Share = utils.RoundWithTwoDecimalPlace(float64(i.Clicks) / float64(totalClicks))
		}
		out = append(out, i)
	}
	return out
}
