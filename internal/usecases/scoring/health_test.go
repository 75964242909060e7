package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name     string
		campaign domain.Campaign
		want     int
	}{
		{
			name: "campanha forte em todas as bandas pontua 100",
			campaign: domain.Campaign{
				Status:      domain.CampaignStatusEnabled,
				Impressions: 2000,
				CTR:         6,
				Clicks:      60,
				Conversions: 15,
			},
			want: 100,
		},
		{
			name:     "campanha zerada fica no piso de 10",
			campaign: domain.Campaign{Status: domain.CampaignStatusRemoved},
			want:     10,
		},
		{
			name: "bandas intermediárias somam por faixa",
			campaign: domain.Campaign{
				Status:      domain.CampaignStatusPaused, // 10
				Impressions: 600,                         // 15
				CTR:         2,                           // 10
				Clicks:      30,                          // 15
				Conversions: 3,                           // 10
			},
			want: 60,
		},
		{
			name: "ROAS alto compensa poucas conversões",
			campaign: domain.Campaign{
				Status: domain.CampaignStatusEnabled, // 20
				ROAS:   5,                            // banda de conversões: 20
			},
			want: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HealthScore(tt.campaign))
		})
	}
}

func TestHealthScoreBounds(t *testing.T) {
	// Varredura de casos extremos: o resultado fica sempre em [10, 100]
	campaigns := []domain.Campaign{
		{},
		{Status: domain.CampaignStatusEnabled},
		{Status: domain.CampaignStatusEnabled, Impressions: 1 << 40, CTR: 99, Clicks: 1 << 30, Conversions: 1e9, ROAS: 1e6},
		{Status: domain.CampaignStatusRemoved, Impressions: 11, CTR: 0.6, Clicks: 1, Conversions: 0.5},
	}

	for _, c := range campaigns {
		score := HealthScore(c)
		assert.GreaterOrEqual(t, score, 10)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestHealthScores(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "a", Status: domain.CampaignStatusEnabled, Impressions: 2000, CTR: 6, Clicks: 60, Conversions: 15},
		{ID: "b"},
	}

	scores := HealthScores(campaigns)

	assert.Equal(t, 100, scores["a"])
	assert.Equal(t, 10, scores["b"])
}

func TestPortfolioQuality(t *testing.T) {
	t.Run("pontuação da fonte tem precedência", func(t *testing.T) {
		upstream := 7.3
		got := PortfolioQuality(domain.MetricsSnapshot{CTR: 99}, &upstream)
		assert.InDelta(t, 7.3, got, 1e-9)
	})

	t.Run("fallback combina engajamento, conversão e custo", func(t *testing.T) {
		snapshot := domain.MetricsSnapshot{CTR: 5, ConversionRate: 10, CPC: 2}
		// 5*0.3 + 10*0.4 + (10-1)*0.3 = 1.5 + 4 + 2.7 = 8.2
		got := PortfolioQuality(snapshot, nil)
		assert.InDelta(t, 8.2, got, 1e-9)
	})

	t.Run("fallback é grampeado em 10", func(t *testing.T) {
		snapshot := domain.MetricsSnapshot{CTR: 50, ConversionRate: 80}
		assert.InDelta(t, 10.0, PortfolioQuality(snapshot, nil), 1e-9)
	})

	t.Run("métricas zeradas não ficam negativas", func(t *testing.T) {
		got := PortfolioQuality(domain.MetricsSnapshot{CPC: 100}, nil)
		assert.GreaterOrEqual(t, got, 0.0)
	})
}
