package adsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// Client define a comunicação crua com a fonte de dados do Google Ads
type Client interface {
	FetchDashboard(ctx context.Context, request *adsdomain.DashboardRequest) (*adsdomain.DashboardPayload, error)
	UpdateCampaignStatus(ctx context.Context, campaignID string, status string) error
}

type AdsClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AdsClient{
		Cfg: cfg,
		// Sem timeout próprio: a falha da chamada remota fica a cargo do transporte
		httpClient: &http.Client{},
	}
}

// FetchDashboard busca o dashboard completo na fonte de dados. Uma resposta
// com success=false é tratada como falha, idêntica a um erro de transporte.
func (c *AdsClient) FetchDashboard(ctx context.Context, request *adsdomain.DashboardRequest) (*adsdomain.DashboardPayload, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a requisição do dashboard")
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug("googleads: dashboard request payload\n", utils.PrettyJson(body))
	}

	url := fmt.Sprintf("%s/dashboard", c.Cfg.GoogleAds.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição do dashboard")
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("googleads: erro ao fazer a requisição do dashboard")
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta do dashboard")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("googleads: resposta inesperada da fonte de dados: %s", resp.Status)
	}

	var response adsdomain.DashboardResponse
	if err := json.Unmarshal(data, &response); err != nil {
		logrus.WithError(err).Error("googleads: erro ao decodificar JSON do dashboard")
		return nil, err
	}

	if !response.Success || response.Data == nil {
		return nil, fmt.Errorf("googleads: fonte de dados retornou falha: %s", response.Error)
	}

	return response.Data, nil
}

// setHeaders aplica os cabeçalhos comuns, incluindo um id curto de rastreio
// para correlacionar a chamada nos logs da fonte de dados
func (c *AdsClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Cfg.GoogleAds.AccessToken)

	if traceID, err := utils.GenerateID(); err == nil {
		req.Header.Set("X-Request-ID", traceID)
	}
}

// UpdateCampaignStatus envia a mutação de status de uma campanha. Qualquer
// resposta não-OK é devolvida como erro para que o chamador reverta a
// atualização otimista.
func (c *AdsClient) UpdateCampaignStatus(ctx context.Context, campaignID string, status string) error {
	body, err := json.Marshal(adsdomain.StatusUpdateRequest{Status: status})
	if err != nil {
		return errors.Wrap(err, "erro ao serializar a mutação de status")
	}

	url := fmt.Sprintf("%s/campaigns/%s/status", c.Cfg.GoogleAds.BaseURL, campaignID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição de status")
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("googleads: erro ao enviar mutação de status")
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler a resposta da mutação de status")
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("googleads: mutação de status rejeitada: %s", resp.Status)
	}

	var response adsdomain.StatusUpdateResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta da mutação de status")
	}

	if !response.Success {
		return fmt.Errorf("googleads: mutação de status não confirmada: %s", response.Error)
	}

	return nil
}
