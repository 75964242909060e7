package currency

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

type fakeRateFetcher struct {
	rates map[string]float64
	err   error
}

func (f *fakeRateFetcher) FetchRates() (map[string]float64, error) {
	return f.rates, f.err
}

func TestConvertToUSD(t *testing.T) {
	service := NewService(nil)

	tests := []struct {
		name     string
		amount   float64
		currency string
		want     float64
	}{
		{name: "USD é idempotente", amount: 123.45, currency: "USD", want: 123.45},
		{name: "moeda vazia assume USD", amount: 50, currency: "", want: 50},
		{name: "SAR converte pela cotação", amount: 375, currency: "SAR", want: 100},
		{name: "BRL converte pela cotação", amount: 504, currency: "BRL", want: 100},
		{name: "código desconhecido passa sem conversão", amount: 77, currency: "XYZ", want: 77},
		{name: "código em minúsculas é normalizado", amount: 375, currency: "sar", want: 100},
		{name: "zero permanece zero", amount: 0, currency: "EUR", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, service.ConvertToUSD(tt.amount, tt.currency), 1e-9)
		})
	}
}

func TestDisplayCurrency(t *testing.T) {
	service := NewService(nil)

	campaigns := []domain.Campaign{
		{ID: "c1", Name: "Campanha BR", Currency: "BRL"},
		{ID: "c2", Name: "Campanha Gulf", Currency: "SAR"},
		{ID: "c3", Name: "Campanha US"},
	}

	tests := []struct {
		name   string
		filter string
		want   string
	}{
		{name: "todas as campanhas exibem em USD", filter: domain.AllCampaigns, want: "USD"},
		{name: "filtro vazio exibe em USD", filter: "", want: "USD"},
		{name: "campanha única exibe moeda nativa", filter: "c1", want: "BRL"},
		{name: "campanha sem moeda assume USD", filter: "c3", want: "USD"},
		{name: "seletor por nome resolve a moeda", filter: "campanha gulf", want: "SAR"},
		{name: "seletor sem correspondência cai para USD", filter: "inexistente", want: "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.DisplayCurrency(tt.filter, campaigns))
		})
	}
}

func TestRefreshRates(t *testing.T) {
	t.Run("falha do provedor mantém a tabela estática", func(t *testing.T) {
		service := NewService(&fakeRateFetcher{err: fmt.Errorf("provedor indisponível")})

		service.RefreshRates()

		assert.InDelta(t, 100.0, service.ConvertToUSD(375, "SAR"), 1e-9)
	})

	t.Run("cotações ao vivo sobrepõem os padrões", func(t *testing.T) {
		service := NewService(&fakeRateFetcher{rates: map[string]float64{"SAR": 4.0}})

		service.RefreshRates()

		assert.InDelta(t, 100.0, service.ConvertToUSD(400, "SAR"), 1e-9)
	})

	t.Run("cotação inválida é ignorada", func(t *testing.T) {
		service := NewService(&fakeRateFetcher{rates: map[string]float64{"SAR": 0}})

		service.RefreshRates()

		assert.InDelta(t, 100.0, service.ConvertToUSD(375, "SAR"), 1e-9)
	})
}
