package exchange

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// RatesResponse é o formato esperado de um provedor de cotações
type RatesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// RateFetcher define a busca de cotações ao vivo. A tabela estática permanece
// autoritativa: qualquer falha aqui é absorvida silenciosamente pelo chamador.
type RateFetcher interface {
	FetchRates() (map[string]float64, error)
}

type Client struct {
	cfg *config.Config
}

func NewClient(cfg *config.Config) RateFetcher {
	return &Client{cfg: cfg}
}

// FetchRates consulta o provedor configurado. Sem provedor configurado a
// chamada falha de imediato e o chamador segue com os valores padrão.
func (c *Client) FetchRates() (map[string]float64, error) {
	if c.cfg.Exchange.ProviderURL == "" {
		return nil, fmt.Errorf("exchange: nenhum provedor de cotações configurado")
	}

	data, err := utils.MakeRequest(fmt.Sprintf("%s/latest?base=USD", c.cfg.Exchange.ProviderURL))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar o provedor de cotações")
	}

	var response RatesResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do provedor de cotações")
	}

	if len(response.Rates) == 0 {
		return nil, fmt.Errorf("exchange: provedor retornou tabela de cotações vazia")
	}

	return response.Rates, nil
}
