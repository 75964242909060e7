package googleads

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// FetchParams descreve uma consulta de dashboard à fonte de dados
type FetchParams struct {
	DateRange    domain.DateRange
	Label        string
	Bucket       string
	ForceRefresh bool
	CampaignID   string // vazio busca todas as campanhas
}

// Integrator define a interface de alto nível sobre a fonte de dados do
// Google Ads, já traduzida para o domínio interno
type Integrator interface {
	// FetchDashboard busca campanhas, métricas, série de performance e
	// recortes analíticos para o período informado
	FetchDashboard(ctx context.Context, params FetchParams) (*domain.DashboardData, error)

	// UpdateCampaignStatus envia a mutação de status de uma campanha
	UpdateCampaignStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error
}

type Service struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) *Service {
	return &Service{
		cfg:    cfg,
		Client: client,
	}
}

func (s *Service) FetchDashboard(ctx context.Context, params FetchParams) (*domain.DashboardData, error) {
	request := &adsdomain.DashboardRequest{
		TimeRangeBucket: params.Bucket,
		StartDate:       params.DateRange.StartDate.Format(time.DateOnly),
		EndDate:         params.DateRange.EndDate.Format(time.DateOnly),
		Label:           params.Label,
		ForceRefresh:    params.ForceRefresh,
		CampaignID:      params.CampaignID,
	}

	payload, err := s.Client.FetchDashboard(ctx, request)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"label":       params.Label,
			"campaign_id": params.CampaignID,
			"error":       err.Error(),
		}).Error("googleads: failed to fetch dashboard from data source")
		return nil, err
	}

	data := FactoryDashboardData(payload)

	logrus.WithFields(logrus.Fields{
		"label":     params.Label,
		"campaigns": len(data.Campaigns),
	}).Debug("googleads: successfully fetched dashboard data")

	return data, nil
}

func (s *Service) UpdateCampaignStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error {
	return s.Client.UpdateCampaignStatus(ctx, campaignID, string(status))
}

// FactoryDashboardData converte o payload da fonte de dados para o domínio
// interno. A conversão é total: uma resposta parcial nunca é aplicada pela
// sessão, então aqui só traduzimos formas.
func FactoryDashboardData(payload *adsdomain.DashboardPayload) *domain.DashboardData {
	data := &domain.DashboardData{
		Campaigns:       make([]domain.Campaign, 0, len(payload.Campaigns)),
		PerformanceData: make([]domain.PerformancePoint, 0, len(payload.PerformanceData)),
	}

	for _, c := range payload.Campaigns {
		data.Campaigns = append(data.Campaigns, domain.Campaign{
			ID:                c.ID,
			Name:              c.Name,
			Type:              domain.CampaignType(c.Type),
			Status:            domain.CampaignStatus(c.Status),
			Currency:          c.Currency,
			Cost:              c.Cost,
			Impressions:       c.Impressions,
			Clicks:            c.Clicks,
			CTR:               c.CTR,
			Conversions:       c.Conversions,
			ConversionsValue:  c.ConversionsValue,
			AverageCPC:        c.AverageCPC,
			AverageCPM:        c.AverageCPM,
			CostPerConversion: c.CostPerConversion,
			ROAS:              c.ROAS,
			CustomerID:        c.CustomerID,
			Budget:            c.Budget,
		})
	}

	if payload.Metrics != nil {
		data.Metrics = &domain.MetricsSnapshot{
			Clicks:      payload.Metrics.Clicks,
			Impressions: payload.Metrics.Impressions,
			Cost:        payload.Metrics.Cost,
			Conversions: payload.Metrics.Conversions,
			Revenue:     payload.Metrics.Revenue,
		}
		data.QualityScore = payload.Metrics.QualityScore
	}

	for _, p := range payload.PerformanceData {
		data.PerformanceData = append(data.PerformanceData, domain.PerformancePoint{
			Date:        p.Date,
			Clicks:      p.Clicks,
			Impressions: p.Impressions,
			Cost:        p.Cost,
			Conversions: p.Conversions,
		})
	}

	for _, i := range payload.AIInsights {
		data.AIInsights = append(data.AIInsights, domain.AIInsight{
			Title:       i.Title,
			Description: i.Description,
			Severity:    i.Severity,
		})
	}

	for _, r := range payload.Recommendations {
		data.Recommendations = append(data.Recommendations, domain.Recommendation{
			Title:       r.Title,
			Description: r.Description,
			Impact:      r.Impact,
		})
	}

	if payload.Breakdowns != nil {
		data.Breakdowns = factoryBreakdowns(payload.Breakdowns)
	}

	return data
}

func factoryBreakdowns(b *adsdomain.Breakdowns) *domain.BreakdownData {
	out := &domain.BreakdownData{
		Devices:   factorySegments(b.Devices),
		AgeRanges: factorySegments(b.AgeRanges),
		Genders:   factorySegments(b.Genders),
		Hourly:    factorySegments(b.Hourly),
		Weekly:    factorySegments(b.Weekly),
		Locations: factorySegments(b.Locations),
	}

	for _, k := range b.Keywords {
		out.Keywords = append(out.Keywords, domain.KeywordStat{
			Keyword:      k.Keyword,
			MatchType:    k.MatchType,
			CampaignID:   k.CampaignID,
			CampaignName: k.CampaignName,
			Clicks:       k.Clicks,
			Impressions:  k.Impressions,
			Cost:         k.Cost,
			Conversions:  k.Conversions,
		})
	}

	for _, p := range b.LandingPages {
		out.LandingPages = append(out.LandingPages, factoryPage(p))
	}
	for _, p := range b.SearchTerms {
		out.SearchTerms = append(out.SearchTerms, factoryPage(p))
	}

	return out
}

func factorySegments(segments []adsdomain.Segment) []domain.SegmentStat {
	if len(segments) == 0 {
		return nil
	}

	out := make([]domain.SegmentStat, 0, len(segments))
	for _, s := range segments {
		out = append(out, domain.SegmentStat{
			Segment:     s.Segment,
			Clicks:      s.Clicks,
			Impressions: s.Impressions,
			Cost:        s.Cost,
			Conversions: s.Conversions,
		})
	}
	return out
}

func factoryPage(p adsdomain.Page) domain.PageStat {
	return domain.PageStat{
		Label:       p.Label,
		Clicks:      p.Clicks,
		Impressions: p.Impressions,
		Conversions: p.Conversions,
	}
}
