package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }

func sampleCampaigns() []domain.Campaign {
	return []domain.Campaign{
		{ID: "c1", Name: "Busca Verão", Type: domain.CampaignTypeSearch, Status: domain.CampaignStatusEnabled, ROAS: 4.5, CTR: 3.2, Conversions: 12},
		{ID: "c2", Name: "Video Institucional", Type: domain.CampaignTypeVideo, Status: domain.CampaignStatusPaused, ROAS: 1.1, CTR: 0.8, Conversions: 2},
		{ID: "c3", Name: "Shopping Black Friday", Type: domain.CampaignTypeShopping, Status: domain.CampaignStatusEnabled, ROAS: 6.0, CTR: 2.1, Conversions: 40},
		{ID: "c4", Name: "Display Remarketing", Type: domain.CampaignTypeDisplay, Status: domain.CampaignStatusRemoved, ROAS: 0.4, CTR: 0.3, Conversions: 0},
	}
}

func TestApply(t *testing.T) {
	campaigns := sampleCampaigns()

	tests := []struct {
		name    string
		state   domain.FilterState
		wantIDs []string
	}{
		{
			name:    "sem filtros devolve tudo",
			state:   domain.FilterState{},
			wantIDs: []string{"c1", "c2", "c3", "c4"},
		},
		{
			name:    "tipo único seleciona por igualdade exata",
			state:   domain.FilterState{SelectedType: domain.CampaignTypeSearch},
			wantIDs: []string{"c1"},
		},
		{
			name:    "conjunto de tipos dos filtros avançados",
			state:   domain.FilterState{CampaignTypes: []domain.CampaignType{domain.CampaignTypeVideo, domain.CampaignTypeShopping}},
			wantIDs: []string{"c2", "c3"},
		},
		{
			name:    "conjunto de status",
			state:   domain.FilterState{Statuses: []domain.CampaignStatus{domain.CampaignStatusEnabled}},
			wantIDs: []string{"c1", "c3"},
		},
		{
			name:    "busca textual sem distinção de caixa no nome",
			state:   domain.FilterState{SearchQuery: "  BLACK "},
			wantIDs: []string{"c3"},
		},
		{
			name:    "busca textual casa com o id",
			state:   domain.FilterState{SearchQuery: "c2"},
			wantIDs: []string{"c2"},
		},
		{
			name:    "piso de ROAS",
			state:   domain.FilterState{PerformanceFilters: domain.PerformanceFilters{MinROAS: floatPtr(4.0)}},
			wantIDs: []string{"c1", "c3"},
		},
		{
			name: "pisos combinados",
			state: domain.FilterState{PerformanceFilters: domain.PerformanceFilters{
				MinROAS:        floatPtr(1.0),
				MinCTR:         floatPtr(2.0),
				MinConversions: floatPtr(20),
			}},
			wantIDs: []string{"c3"},
		},
		{
			name: "estágios compõem: tipos + status + busca",
			state: domain.FilterState{
				CampaignTypes: []domain.CampaignType{domain.CampaignTypeSearch, domain.CampaignTypeShopping},
				Statuses:      []domain.CampaignStatus{domain.CampaignStatusEnabled},
				SearchQuery:   "verão",
			},
			wantIDs: []string{"c1"},
		},
		{
			name:    "filtros que nada casam devolvem coleção vazia",
			state:   domain.FilterState{SearchQuery: "inexistente"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(campaigns, tt.state)

			gotIDs := make([]string, 0, len(got))
			for _, c := range got {
				gotIDs = append(gotIDs, c.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestApplyFilterComposition(t *testing.T) {
	// Cenário de referência: dois tipos distintos, filtro por um deles
	campaigns := []domain.Campaign{
		{ID: "a", Type: domain.CampaignTypeSearch, Status: domain.CampaignStatusEnabled},
		{ID: "b", Type: domain.CampaignTypeVideo, Status: domain.CampaignStatusPaused},
	}

	got := Apply(campaigns, domain.FilterState{CampaignTypes: []domain.CampaignType{domain.CampaignTypeSearch}})

	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestSelectActive(t *testing.T) {
	campaigns := sampleCampaigns()

	t.Run("all devolve a coleção inteira", func(t *testing.T) {
		assert.Len(t, SelectActive(campaigns, domain.AllCampaigns), 4)
	})

	t.Run("seleção por id", func(t *testing.T) {
		got := SelectActive(campaigns, "c2")
		assert.Len(t, got, 1)
		assert.Equal(t, "c2", got[0].ID)
	})

	t.Run("fallback por nome exato sem caixa", func(t *testing.T) {
		got := SelectActive(campaigns, "  busca verão ")
		assert.Len(t, got, 1)
		assert.Equal(t, "c1", got[0].ID)
	})

	t.Run("sem correspondência devolve vazio", func(t *testing.T) {
		assert.Empty(t, SelectActive(campaigns, "nada"))
	})
}

func TestSelectByIDs(t *testing.T) {
	campaigns := sampleCampaigns()

	t.Run("seleção manual preserva a ordem da coleção", func(t *testing.T) {
		got := SelectByIDs(campaigns, []string{"c3", "c1"})
		assert.Len(t, got, 2)
		assert.Equal(t, "c1", got[0].ID)
		assert.Equal(t, "c3", got[1].ID)
	})

	t.Run("seleção vazia devolve nil", func(t *testing.T) {
		assert.Nil(t, SelectByIDs(campaigns, nil))
	})
}
