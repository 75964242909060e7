package dashboarding

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/metrics"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/currency"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/scoring"
)

// ErrCampaignNotFound indica uma mutação de status sobre campanha desconhecida
var ErrCampaignNotFound = errors.New("dashboard: campanha não encontrada na sessão")

// FetchOptions controla um ciclo do orquestrador de fetch
type FetchOptions struct {
	// ShowLoading liga o indicador de carregamento durante o ciclo
	ShowLoading bool

	// ForceRefresh ignora a guarda de idempotência e pede dado fresco à fonte
	ForceRefresh bool

	// RangeLabel, quando não vazio, passa a ser o rótulo de período ativo
	RangeLabel string

	// Bucket, quando não vazio, substitui o bucket derivado do rótulo
	Bucket string
}

// requestKey é a tupla de parâmetros que identifica um fetch já pedido.
// Repetir a mesma tupla sem forçar não gera nova chamada remota.
type requestKey struct {
	campaignFilter string
	rangeLabel     string
}

// Dashboarder é a interface da sessão de dashboard consumida pela camada HTTP
type Dashboarder interface {
	Start(ctx context.Context) error
	FetchAll(ctx context.Context, opts FetchOptions) error
	ManualRefresh(ctx context.Context) error
	View() domain.DashboardView
	Breakdown(dimension domain.BreakdownDimension) (any, error)
	SetRangeLabel(ctx context.Context, label string) error
	SetCampaignFilter(ctx context.Context, campaignFilter string) error
	SetFilters(state domain.FilterState)
	SetSelection(ids []string)
	SetAutoRefresh(enabled bool)
	AutoRefreshEnabled() bool
	ToggleCampaignStatus(ctx context.Context, campaignID string) (domain.StatusTransition, error)
}

// Session é o dono do estado do dashboard: dados do último fetch, filtros,
// seleção e indicadores de frescor. Todo caminho de atualização (inicial,
// manual, automático, troca de período ou de campanha) passa pelo mesmo
// FetchAll, então nunca há duas rotas concorrentes gravando o cache.
type Session struct {
	cfg        *config.Config
	integrator googleads.Integrator
	cache      repository.DashboardCacheRepository
	currencies *currency.Service
	aggregator *aggregating.Service
	analytics  *analyzing.Service
	metrics    *metrics.Metrics

	ttl time.Duration
	now func() time.Time

	mu             sync.Mutex
	data           *domain.DashboardData
	filters        domain.FilterState
	selection      []string
	campaignFilter string
	rangeLabel     string
	loading        bool
	cached         bool
	autoRefresh    bool
	lastError      string

	// Guarda de idempotência: última tupla efetivamente pedida à fonte
	lastRequested *requestKey

	// Só a resposta do pedido mais recente pode ser aplicada ao estado
	latestRequestID string

	// Acompanha a revalidação em segundo plano disparada pelo Start
	revalidation sync.WaitGroup
}

func NewSession(
	cfg *config.Config,
	integrator googleads.Integrator,
	cache repository.DashboardCacheRepository,
	currencies *currency.Service,
	aggregator *aggregating.Service,
	analytics *analyzing.Service,
	m *metrics.Metrics,
) *Session {
	ttl := domain.DefaultCacheTTL
	if cfg != nil && cfg.Cache.TTLMinutes > 0 {
		ttl = time.Duration(cfg.Cache.TTLMinutes) * time.Minute
	}

	autoRefresh := false
	if cfg != nil {
		autoRefresh = cfg.AutoRefresh.Enabled
	}

	return &Session{
		cfg:            cfg,
		integrator:     integrator,
		cache:          cache,
		currencies:     currencies,
		aggregator:     aggregator,
		analytics:      analytics,
		metrics:        m,
		ttl:            ttl,
		now:            time.Now,
		campaignFilter: domain.AllCampaigns,
		rangeLabel:     domain.RangeLast30Days,
		autoRefresh:    autoRefresh,
	}
}

// Start faz a carga inicial da sessão. Cache presente rende a tela de imediato
// e dispara uma revalidação forçada em segundo plano; cache ausente busca de
// forma síncrona com indicador de carregamento.
func (s *Session) Start(ctx context.Context) error {
	entry, err := s.cache.Read()
	if err != nil {
		logrus.WithError(err).Warn("dashboard: falha ao ler o cache na partida, seguindo sem cache")
	}

	if entry.IsEmpty() {
		s.metrics.CountCacheRead("miss")
		return s.FetchAll(ctx, FetchOptions{ShowLoading: true})
	}

	s.mu.Lock()
	label := s.rangeLabel
	s.mu.Unlock()

	if entry.IsValid(s.now(), label, s.ttl) {
		s.metrics.CountCacheRead("hit")
	} else {
		s.metrics.CountCacheRead("stale_hit")
	}

	s.applyCacheEntry(entry)

	s.revalidation.Add(1)
	go func() {
		defer s.revalidation.Done()
		if err := s.FetchAll(context.Background(), FetchOptions{ForceRefresh: true}); err != nil {
			logrus.WithError(err).Warn("dashboard: revalidação em segundo plano falhou")
		}
	}()

	return nil
}

// FetchAll é o único caminho de busca remota. Resolve o período ativo, aplica
// a guarda de idempotência sobre a tupla (campanha, período), marca o pedido
// com um id e só aplica ao estado a resposta do pedido mais recente. Falha da
// fonte não derruba o chamador: o estado anterior é mantido e o erro fica
// exposto na view.
func (s *Session) FetchAll(ctx context.Context, opts FetchOptions) error {
	s.mu.Lock()

	if opts.RangeLabel != "" {
		s.rangeLabel = opts.RangeLabel
	}
	label := s.rangeLabel

	key := requestKey{campaignFilter: s.campaignFilter, rangeLabel: label}
	if !opts.ForceRefresh && s.data != nil && s.lastRequested != nil && *s.lastRequested == key {
		s.mu.Unlock()
		s.metrics.CountFetch("skipped")
		logrus.WithFields(logrus.Fields{
			"campaign_filter": key.campaignFilter,
			"label":           key.rangeLabel,
		}).Debug("dashboard: fetch repetido para a mesma tupla, ignorando")
		return nil
	}

	requestID := uuid.NewString()
	s.latestRequestID = requestID
	s.lastRequested = &key

	if opts.ShowLoading {
		s.loading = true
	}

	campaignID := s.remoteCampaignIDLocked()
	s.mu.Unlock()

	bucket := opts.Bucket
	if bucket == "" {
		bucket = domain.TimeRangeBucket(label)
	}

	params := googleads.FetchParams{
		DateRange:    domain.ResolveDateRange(label, s.now()),
		Label:        label,
		Bucket:       bucket,
		ForceRefresh: opts.ForceRefresh,
		CampaignID:   campaignID,
	}

	started := time.Now()
	data, err := s.integrator.FetchDashboard(ctx, params)
	s.metrics.ObserveUpstreamLatency(time.Since(started))

	s.mu.Lock()
	defer s.mu.Unlock()

	if requestID != s.latestRequestID {
		// Um pedido mais novo já foi disparado; esta resposta perdeu a vez
		s.metrics.CountStaleResponseDropped()
		logrus.WithField("label", label).
			Debug("dashboard: resposta obsoleta descartada")
		return nil
	}

	// O pedido mais recente terminou: o indicador nunca fica preso em loading
	defer func() { s.loading = false }()

	if err != nil {
		s.lastError = err.Error()
		s.metrics.CountFetch("upstream_error")
		logrus.WithError(err).Error("dashboard: fetch falhou, mantendo estado anterior")
		return nil
	}

	if data == nil {
		s.lastError = "resposta vazia da fonte de dados"
		s.metrics.CountFetch("upstream_error")
		return nil
	}

	// Substituição atômica: ou a resposta inteira, ou nada
	s.data = data
	s.cached = false
	s.lastError = ""
	s.metrics.CountFetch("success")

	entry := &domain.CacheEntry{
		Campaigns:       data.Campaigns,
		Metrics:         data.Metrics,
		PerformanceData: data.PerformanceData,
		Timestamp:       s.now(),
		TimeRangeLabel:  label,
	}
	if err := s.cache.Write(entry); err != nil {
		logrus.WithError(err).Warn("dashboard: falha ao gravar o cache, seguindo sem persistir")
	}

	return nil
}

// ManualRefresh é a ação explícita do usuário: remove o cache e força o fetch
func (s *Session) ManualRefresh(ctx context.Context) error {
	if err := s.cache.Evict(); err != nil {
		logrus.WithError(err).Warn("dashboard: falha ao remover o cache antes do refresh manual")
	}

	return s.FetchAll(ctx, FetchOptions{ShowLoading: true, ForceRefresh: true})
}

// SetRangeLabel troca o período ativo. A guarda de idempotência do FetchAll
// evita refetch quando o rótulo não mudou de fato.
func (s *Session) SetRangeLabel(ctx context.Context, label string) error {
	s.mu.Lock()
	s.rangeLabel = label
	s.mu.Unlock()

	return s.FetchAll(ctx, FetchOptions{ShowLoading: true})
}

// SetCampaignFilter troca o seletor de campanha ativa ("all" ou uma campanha)
func (s *Session) SetCampaignFilter(ctx context.Context, campaignFilter string) error {
	if campaignFilter == "" {
		campaignFilter = domain.AllCampaigns
	}

	s.mu.Lock()
	s.campaignFilter = campaignFilter
	s.mu.Unlock()

	return s.FetchAll(ctx, FetchOptions{ShowLoading: true})
}

// SetFilters substitui o estado declarativo de filtros. Filtros são locais:
// não invalidam cache nem disparam fetch.
func (s *Session) SetFilters(state domain.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = state
}

// SetSelection substitui a seleção manual de campanhas (checkboxes)
func (s *Session) SetSelection(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = ids
}

// SetAutoRefresh liga ou desliga o timer de atualização automática
func (s *Session) SetAutoRefresh(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.autoRefresh = enabled
}

func (s *Session) AutoRefreshEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.autoRefresh
}

// ToggleCampaignStatus alterna ENABLED/PAUSED de forma otimista: aplica
// localmente, envia a mutação e reverte se a fonte rejeitar. REMOVED não
// participa da alternância.
func (s *Session) ToggleCampaignStatus(ctx context.Context, campaignID string) (domain.StatusTransition, error) {
	s.mu.Lock()

	idx := s.campaignIndexLocked(campaignID)
	if idx < 0 {
		s.mu.Unlock()
		return domain.StatusTransition{}, ErrCampaignNotFound
	}

	from := s.data.Campaigns[idx].Status
	to := domain.ToggledStatus(from)
	if to == from {
		s.mu.Unlock()
		return domain.StatusTransition{}, errors.Errorf("dashboard: status %s não é alternável", from)
	}

	// Aplicação otimista: a UI reflete a mudança antes da confirmação remota
	s.data.Campaigns[idx].Status = to
	s.mu.Unlock()

	err := s.integrator.UpdateCampaignStatus(ctx, campaignID, to)

	s.mu.Lock()
	defer s.mu.Unlock()

	transition := domain.StatusTransition{
		CampaignID: campaignID,
		From:       from,
		To:         to,
	}

	if err != nil {
		if idx := s.campaignIndexLocked(campaignID); idx >= 0 {
			s.data.Campaigns[idx].Status = from
		}

		transition.State = domain.TransitionRolledBack
		transition.Reason = err.Error()
		s.metrics.CountStatusToggle(string(domain.TransitionRolledBack))

		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("dashboard: mutação de status rejeitada, revertendo")

		return transition, err
	}

	transition.State = domain.TransitionConfirmed
	s.metrics.CountStatusToggle(string(domain.TransitionConfirmed))

	return transition, nil
}

// View projeta o estado corrente: campanhas filtradas, métricas agregadas
// conforme o seletor ativo (seleção manual tem precedência sobre o filtro),
// pontuações e indicadores de frescor.
func (s *Session) View() domain.DashboardView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := domain.DashboardView{
		Campaigns:       []domain.Campaign{},
		HealthScores:    map[string]int{},
		DisplayCurrency: "USD",
		TimeRangeLabel:  s.rangeLabel,
		CampaignFilter:  s.campaignFilter,
		Cached:          s.cached,
		Loading:         s.loading,
		LastError:       s.lastError,
	}

	if s.data == nil {
		return view
	}

	visible := filtering.Apply(s.data.Campaigns, s.filters)
	allMode := s.campaignFilter == "" || s.campaignFilter == domain.AllCampaigns

	basis := filtering.SelectActive(visible, s.campaignFilter)
	if allMode && len(s.selection) > 0 {
		if picked := filtering.SelectByIDs(visible, s.selection); len(picked) > 0 {
			basis = picked
		}
	}

	snapshot := s.aggregator.Snapshot(basis, allMode)

	view.Campaigns = visible
	view.Metrics = snapshot
	view.PerformanceData = s.data.PerformanceData
	view.AIInsights = s.data.AIInsights
	view.Recommendations = s.data.Recommendations
	view.HealthScores = scoring.HealthScores(visible)
	view.QualityScore = scoring.PortfolioQuality(snapshot, s.data.QualityScore)
	view.DisplayCurrency = s.currencies.DisplayCurrency(s.campaignFilter, s.data.Campaigns)

	return view
}

// Breakdown resolve um recorte analítico para o seletor de campanha corrente.
// O tipo concreto do retorno varia por dimensão (segmentos, palavras-chave ou
// páginas), todos carregando a procedência do dado.
func (s *Session) Breakdown(dimension domain.BreakdownDimension) (any, error) {
	s.mu.Lock()
	data := s.data
	campaignFilter := s.campaignFilter
	filters := s.filters
	s.mu.Unlock()

	allMode := campaignFilter == "" || campaignFilter == domain.AllCampaigns

	var breakdowns *domain.BreakdownData
	var campaigns []domain.Campaign
	if data != nil {
		breakdowns = data.Breakdowns
		campaigns = data.Campaigns
	}

	switch dimension {
	case domain.DimensionKeywords:
		return s.analytics.Keywords(breakdowns, campaigns, campaignFilter, allMode), nil
	case domain.DimensionLandingPages, domain.DimensionSearchTerms:
		return s.analytics.Pages(dimension, breakdowns)
	default:
		basis := filtering.SelectActive(filtering.Apply(campaigns, filters), campaignFilter)
		totals := s.aggregator.Snapshot(basis, allMode)
		return s.analytics.Segments(dimension, breakdowns, totals)
	}
}

// applyCacheEntry restaura o estado a partir do cache, marcando a view como
// servida de cache até o próximo fetch bem-sucedido
func (s *Session) applyCacheEntry(entry *domain.CacheEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = &domain.DashboardData{
		Campaigns:       entry.Campaigns,
		Metrics:         entry.Metrics,
		PerformanceData: entry.PerformanceData,
	}
	s.cached = true
	s.lastError = ""

	logrus.WithFields(logrus.Fields{
		"campaigns": len(entry.Campaigns),
		"cached_at": entry.Timestamp,
		"label":     entry.TimeRangeLabel,
	}).Info("dashboard: estado restaurado do cache")
}

// remoteCampaignIDLocked resolve o id enviado à fonte quando há uma única
// campanha selecionada. Sem dado local ainda, o próprio valor do seletor segue
// na requisição.
func (s *Session) remoteCampaignIDLocked() string {
	if s.campaignFilter == "" || s.campaignFilter == domain.AllCampaigns {
		return ""
	}

	if s.data != nil {
		if selected := filtering.SelectActive(s.data.Campaigns, s.campaignFilter); len(selected) > 0 {
			return selected[0].ID
		}
	}

	return s.campaignFilter
}

func (s *Session) campaignIndexLocked(campaignID string) int {
	if s.data == nil {
		return -1
	}

	for i, c := range s.data.Campaigns {
		if c.ID == campaignID {
			return i
		}
	}
	return -1
}
