package scoring

import (
	"math"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// HealthScore calcula a pontuação heurística de saúde de uma campanha.
// Cinco bandas independentes de até 20 pontos cada (status, impressões, CTR,
// cliques e conversões-ou-ROAS), com o total grampeado em [10, 100].
func HealthScore(c domain.Campaign) int {
	score := statusBand(c.Status) +
		impressionsBand(c.Impressions) +
		ctrBand(c.CTR) +
		clicksBand(c.Clicks) +
		conversionsBand(c.Conversions, c.ROAS)

	if score < 10 {
		return 10
	}
	if score > 100 {
		return 100
	}
	return score
}

// HealthScores calcula a pontuação de cada campanha da coleção, indexada por id
func HealthScores(campaigns []domain.Campaign) map[string]int {
	scores := make(map[string]int, len(campaigns))
	for _, c := range campaigns {
		scores[c.ID] = HealthScore(c)
	}
	return scores
}

func statusBand(status domain.CampaignStatus) int {
	switch status {
	case domain.CampaignStatusEnabled:
		return 20
	case domain.CampaignStatusPaused:
		return 10
	}
	return 0
}

func impressionsBand(impressions int64) int {
	switch {
	case impressions > 1000:
		return 20
	case impressions > 500:
		return 15
	case impressions > 100:
		return 10
	case impressions > 10:
		return 5
	}
	return 0
}

func ctrBand(ctr float64) int {
	switch {
	case ctr > 5:
		return 20
	case ctr > 3:
		return 15
	case ctr > 1:
		return 10
	case ctr > 0.5:
		return 5
	}
	return 0
}

func clicksBand(clicks int64) int {
	switch {
	case clicks > 50:
		return 20
	case clicks > 20:
		return 15
	case clicks > 5:
		return 10
	case clicks > 0:
		return 5
	}
	return 0
}

// conversionsBand pontua pelo que for mais favorável entre conversões e ROAS
func conversionsBand(conversions, roas float64) int {
	switch {
	case conversions > 10 || roas > 4:
		return 20
	case conversions > 5 || roas > 2:
		return 15
	case conversions > 1 || roas > 1:
		return 10
	case conversions > 0 || roas > 0:
		return 5
	}
	return 0
}

// PortfolioQuality estima a qualidade do portfólio (0–10). A pontuação da
// fonte de dados tem precedência; na ausência dela combinamos engajamento,
// eficiência de conversão e eficiência de custo como fallback visual.
func PortfolioQuality(snapshot domain.MetricsSnapshot, upstream *float64) float64 {
	if upstream != nil {
		return *upstream
	}

	costEfficiency := 10 - math.Min(10, snapshot.CPC/2)
	quality := snapshot.CTR*0.3 + snapshot.ConversionRate*0.4 + costEfficiency*0.3

	return utils.RoundWithTwoDecimalPlace(math.Min(10, math.Max(0, quality)))
}
