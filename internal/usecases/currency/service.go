package currency

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/exchange"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// Tabela estática de cotações relativas ao USD, usada na partida e sempre que
// o provedor ao vivo não responde
var defaultRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.79,
	"BRL": 5.04,
	"SAR": 3.75,
	"AED": 3.67,
	"EGP": 47.60,
	"JPY": 149.50,
	"CAD": 1.36,
	"AUD": 1.52,
	"INR": 83.10,
	"MXN": 17.10,
}

// Service normaliza valores monetários para USD a partir de uma tabela de
// cotações. Códigos desconhecidos passam sem conversão (fail-open) para não
// corromper totais.
type Service struct {
	mu      sync.RWMutex
	rates   map[string]float64
	fetcher exchange.RateFetcher
}

func NewService(fetcher exchange.RateFetcher) *Service {
	rates := make(map[string]float64, len(defaultRates))
	for code, rate := range defaultRates {
		rates[code] = rate
	}

	return &Service{
		rates:   rates,
		fetcher: fetcher,
	}
}

// ConvertToUSD converte um valor na moeda de origem para USD. USD e moedas
// fora da tabela retornam o valor inalterado.
func (s *Service) ConvertToUSD(amount float64, sourceCurrency string) float64 {
	code := strings.ToUpper(strings.TrimSpace(sourceCurrency))
	if code == "" || code == "USD" {
		return amount
	}

	s.mu.RLock()
	rate, ok := s.rates[code]
	s.mu.RUnlock()

	if !ok || rate == 0 {
		return amount
	}

	return amount / rate
}

// Rate expõe a cotação corrente de um código, quando conhecida
func (s *Service) Rate(code string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rate, ok := s.rates[strings.ToUpper(code)]
	return rate, ok
}

// DisplayCurrency resolve a moeda de exibição da visão corrente: USD quando
// todas as campanhas estão em jogo (moedas heterogêneas precisam ser
// reconciliadas) e a moeda nativa da campanha quando uma única está
// selecionada.
func (s *Service) DisplayCurrency(campaignFilter string, campaigns []domain.Campaign) string {
	if campaignFilter == "" || campaignFilter == domain.AllCampaigns {
		return "USD"
	}

	for _, c := range campaigns {
		if c.ID == campaignFilter {
			return c.CurrencyOrDefault()
		}
	}
	for _, c := range campaigns {
		if strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(campaignFilter)) {
			return c.CurrencyOrDefault()
		}
	}

	return "USD"
}

// RefreshRates tenta atualizar a tabela a partir do provedor ao vivo. Qualquer
// falha mantém a tabela vigente — os valores padrão são a fonte da verdade.
func (s *Service) RefreshRates() {
	if s.fetcher == nil {
		return
	}

	live, err := s.fetcher.FetchRates()
	if err != nil {
		logrus.WithError(err).Warn("currency: falha ao buscar cotações ao vivo, mantendo tabela estática")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for code, rate := range live {
		if rate > 0 {
			s.rates[strings.ToUpper(code)] = rate
		}
	}

	logrus.WithField("rates", len(live)).Info("currency: tabela de cotações atualizada a partir do provedor")
}
