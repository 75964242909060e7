package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/currency"
)

func testCampaigns() []domain.Campaign {
	return []domain.Campaign{
		{ID: "c1", Name: "Busca Verão", Currency: "BRL"},
		{ID: "c2", Name: "Campanha Gulf", Currency: "SAR"},
	}
}

func testKeywords() []domain.KeywordStat {
	return []domain.KeywordStat{
		{Keyword: "óculos de sol", CampaignID: "c1", CampaignName: "Busca Verão", Clicks: 100, Cost: 50.4},
		{Keyword: "sunglasses", CampaignID: "other", CampaignName: "Campanha Gulf", Clicks: 10, Cost: 37.5},
	}
}

func TestKeywordsFallbackChain(t *testing.T) {
	service := NewService(currency.NewService(nil))
	campaigns := testCampaigns()

	t.Run("correspondência por id devolve só as palavras daquela campanha", func(t *testing.T) {
		got := service.Keywords(&domain.BreakdownData{Keywords: testKeywords()}, campaigns, "c1", false)

		assert.Equal(t, domain.SourceAPI, got.Source)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "óculos de sol", got.Items[0].Keyword)
	})

	t.Run("sem id casado cai para o nome exato", func(t *testing.T) {
		// As palavras de c2 vêm com campaignId divergente ("other"), mas o
		// nome bate com a campanha selecionada
		got := service.Keywords(&domain.BreakdownData{Keywords: testKeywords()}, campaigns, "c2", false)

		require.Len(t, got.Items, 1)
		assert.Equal(t, "sunglasses", got.Items[0].Keyword)
	})

	t.Run("sem id nem nome devolve vazio, nunca a lista inteira", func(t *testing.T) {
		keywords := []domain.KeywordStat{
			{Keyword: "alheia", CampaignID: "zz", CampaignName: "Outra Campanha"},
		}
		got := service.Keywords(&domain.BreakdownData{Keywords: keywords}, campaigns, "c1", false)

		assert.Empty(t, got.Items)
	})

	t.Run("dimensão ausente devolve vazio", func(t *testing.T) {
		got := service.Keywords(nil, campaigns, "c1", false)
		assert.Empty(t, got.Items)
	})
}

func TestKeywordsCurrencyNormalization(t *testing.T) {
	service := NewService(currency.NewService(nil))
	campaigns := testCampaigns()

	t.Run("modo todas as campanhas converte custo e CPC para USD", func(t *testing.T) {
		keywords := []domain.KeywordStat{
			{Keyword: "kw", CampaignID: "c2", CampaignName: "Campanha Gulf", Clicks: 10, Cost: 375},
		}
		got := service.Keywords(&domain.BreakdownData{Keywords: keywords}, campaigns, domain.AllCampaigns, true)

		require.Len(t, got.Items, 1)
		assert.InDelta(t, 100.0, got.Items[0].Cost, 1e-9) // 375 SAR → 100 USD
		assert.InDelta(t, 10.0, got.Items[0].CPC, 1e-9)   // 37.5 SAR → 10 USD
	})

	t.Run("campanha única mantém a moeda nativa", func(t *testing.T) {
		keywords := []domain.KeywordStat{
			{Keyword: "kw", CampaignID: "c2", CampaignName: "Campanha Gulf", Clicks: 10, Cost: 375},
		}
		got := service.Keywords(&domain.BreakdownData{Keywords: keywords}, campaigns, "c2", false)

		require.Len(t, got.Items, 1)
		assert.InDelta(t, 375.0, got.Items[0].Cost, 1e-9)
		assert.InDelta(t, 37.5, got.Items[0].CPC, 1e-9)
	})
}

func TestSegments(t *testing.T) {
	service := NewService(currency.NewService(nil))
	totals := domain.MetricsSnapshot{Clicks: 1000, Impressions: 20000, Cost: 500, Conversions: 100}

	t.Run("dado real da fonte é repassado com procedência api", func(t *testing.T) {
		breakdowns := &domain.BreakdownData{
			Devices: []domain.SegmentStat{
				{Segment: "Mobile", Clicks: 75},
				{Segment: "Desktop", Clicks: 25},
			},
		}

		got, err := service.Segments(domain.DimensionDevice, breakdowns, totals)

		require.NoError(t, err)
		assert.Equal(t, domain.SourceAPI, got.Source)
		require.Len(t, got.Items, 2)
		assert.InDelta(t, 0.75, got.Items[0].Share, 1e-9)
	})

	t.Run("dimensão ausente é sintetizada com pesos fixos e marcada", func(t *testing.T) {
		got, err := service.Segments(domain.DimensionDevice, &domain.BreakdownData{}, totals)

		require.NoError(t, err)
		assert.Equal(t, domain.SourceSynthesized, got.Source)
		require.Len(t, got.Items, 3)
		assert.Equal(t, "Mobile", got.Items[0].Segment)
		assert.Equal(t, int64(550), got.Items[0].Clicks) // 55% de 1000
		assert.InDelta(t, 0.55, got.Items[0].Share, 1e-9)
	})

	t.Run("síntese horária cobre as 24 horas", func(t *testing.T) {
		got, err := service.Segments(domain.DimensionHourly, nil, totals)

		require.NoError(t, err)
		assert.Equal(t, domain.SourceSynthesized, got.Source)
		assert.Len(t, got.Items, 24)
	})

	t.Run("localização sem dado real não é sintetizada", func(t *testing.T) {
		got, err := service.Segments(domain.DimensionLocations, nil, totals)

		require.NoError(t, err)
		assert.Equal(t, domain.SourceAPI, got.Source)
		assert.Empty(t, got.Items)
	})

	t.Run("dimensão desconhecida é erro", func(t *testing.T) {
		_, err := service.Segments("bogus", &domain.BreakdownData{}, totals)
		assert.Error(t, err)
	})
}

func TestPages(t *testing.T) {
	service := NewService(currency.NewService(nil))

	t.Run("páginas de destino vêm da fonte", func(t *testing.T) {
		breakdowns := &domain.BreakdownData{
			LandingPages: []domain.PageStat{{Label: "/promo", Clicks: 10}},
		}
		got, err := service.Pages(domain.DimensionLandingPages, breakdowns)

		require.NoError(t, err)
		assert.Equal(t, domain.SourceAPI, got.Source)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "/promo", got.Items[0].Label)
	})

	t.Run("termos de busca ausentes devolvem vazio", func(t *testing.T) {
		got, err := service.Pages(domain.DimensionSearchTerms, nil)

		require.NoError(t, err)
		assert.Empty(t, got.Items)
	})
}
