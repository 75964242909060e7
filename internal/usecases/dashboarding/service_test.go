package dashboarding

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads"
	adsmocks "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/mocks"
	repomocks "github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/currency"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTestSession(integrator googleads.Integrator, cache *repomocks.MockDashboardCacheRepository) *Session {
	currencies := currency.NewService(nil)

	session := NewSession(
		nil,
		integrator,
		cache,
		currencies,
		aggregating.NewService(currencies),
		analyzing.NewService(currencies),
		nil,
	)
	session.now = func() time.Time { return testNow }

	return session
}

func freshData() *domain.DashboardData {
	return &domain.DashboardData{
		Campaigns: []domain.Campaign{
			{ID: "c1", Name: "Busca Verão", Type: domain.CampaignTypeSearch, Status: domain.CampaignStatusEnabled, Clicks: 60, Impressions: 2000, CTR: 6, Conversions: 15, Cost: 120},
			{ID: "c2", Name: "Vídeo Inverno", Type: domain.CampaignTypeVideo, Status: domain.CampaignStatusPaused, Clicks: 10, Impressions: 500, Cost: 30},
		},
		Metrics:         &domain.MetricsSnapshot{Clicks: 70, Impressions: 2500, Cost: 150},
		PerformanceData: []domain.PerformancePoint{{Date: "2024-03-14", Clicks: 70}},
	}
}

func TestFetchAllEndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := adsmocks.NewMockIntegrator(ctrl)
	cache := repomocks.NewMockDashboardCacheRepository(ctrl)
	session := newTestSession(integrator, cache)

	cache.EXPECT().Read().Return(nil, nil)

	// Exatamente uma chamada remota para todo o cenário
	integrator.EXPECT().
		FetchDashboard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params googleads.FetchParams) (*domain.DashboardData, error) {
			assert.Equal(t, domain.RangeLast30Days, params.Label)
			assert.Equal(t, "LAST_30_DAYS", params.Bucket)
			assert.False(t, params.ForceRefresh)
			assert.Empty(t, params.CampaignID)
			return freshData(), nil
		}).
		Times(1)

	cache.EXPECT().
		Write(gomock.Any()).
		DoAndReturn(func(entry *domain.CacheEntry) error {
			assert.Equal(t, domain.RangeLast30Days, entry.TimeRangeLabel)
			assert.Equal(t, testNow, entry.Timestamp)
			assert.Len(t, entry.Campaigns, 2)
			return nil
		}).
		Times(1)

	require.NoError(t, session.Start(context.Background()))

	// Repetir a mesma tupla (campanha, período) não gera nova chamada remota
	require.NoError(t, session.FetchAll(context.Background(), FetchOptions{ShowLoading: true}))

	view := session.View()
	assert.False(t, view.Loading)
	assert.False(t, view.Cached)
	assert.Empty(t, view.LastError)
	assert.Len(t, view.Campaigns, 2)
	assert.Equal(t, "USD", view.DisplayCurrency)
	assert.Equal(t, 100, view.HealthScores["c1"])
}

func TestStartWithCacheRendersAndRevalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := adsmocks.NewMockIntegrator(ctrl)
	cache := repomocks.NewMockDashboardCacheRepository(ctrl)
	session := newTestSession(integrator, cache)

	cached := &domain.CacheEntry{
		Campaigns:      []domain.Campaign{{ID: "old", Name: "Entrada Antiga", Status: domain.CampaignStatusEnabled}},
		Timestamp:      testNow.Add(-10 * time.Minute),
		TimeRangeLabel: domain.RangeLast30Days,
	}
	cache.EXPECT().Read().Return(cached, nil)

	release := make(chan struct{})
	integrator.EXPECT().
		FetchDashboard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params googleads.FetchParams) (*domain.DashboardData, error) {
			<-release
			assert.True(t, params.ForceRefresh)
			return freshData(), nil
		}).
		Times(1)
	cache.EXPECT().Write(gomock.Any()).Return(nil).Times(1)

	require.NoError(t, session.Start(context.Background()))

	// Com a revalidação ainda em voo, a view serve o conteúdo do cache
	view := session.View()
	assert.True(t, view.Cached)
	require.Len(t, view.Campaigns, 1)
	assert.Equal(t, "old", view.Campaigns[0].ID)

	close(release)
	session.revalidation.Wait()

	view = session.View()
	assert.False(t, view.Cached)
	assert.Len(t, view.Campaigns, 2)
}

func TestFetchAllUpstreamFailureKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := adsmocks.NewMockIntegrator(ctrl)
	cache := repomocks.NewMockDashboardCacheRepository(ctrl)
	session := newTestSession(integrator, cache)

	integrator.EXPECT().FetchDashboard(gomock.Any(), gomock.Any()).Return(freshData(), nil)
	cache.EXPECT().Write(gomock.Any()).Return(nil)
	require.NoError(t, session.FetchAll(context.Background(), FetchOptions{ShowLoading: true}))

	integrator.EXPECT().
		FetchDashboard(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("fonte indisponível"))

	// Falha remota não propaga nem derruba o estado anterior
	require.NoError(t, session.FetchAll(context.Background(), FetchOptions{ShowLoading: true, ForceRefresh: true}))

	view := session.View()
	assert.False(t, view.Loading)
	assert.Len(t, view.Campaigns, 2)
	assert.Contains(t, view.LastError, "fonte indisponível")
}

func TestStaleResponseDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := adsmocks.NewMockIntegrator(ctrl)
	cache := repomocks.NewMockDashboardCacheRepository(ctrl)
	session := newTestSession(integrator, cache)

	slowStarted := make(chan struct{})
	release := make(chan struct{})

	slowData := &domain.DashboardData{Campaigns: []domain.Campaign{{ID: "slow"}}}

	integrator.EXPECT().
		FetchDashboard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params googleads.FetchParams) (*domain.DashboardData, error) {
			if params.Label == domain.RangeLast7Days {
				close(slowStarted)
				<-release
				return slowData, nil
			}
			return freshData(), nil
		}).
		Times(2)

	// Só a resposta vencedora chega ao cache
	cache.EXPECT().
		Write(gomock.Any()).
		DoAndReturn(func(entry *domain.CacheEntry) error {
			assert.Equal(t, domain.RangeToday, entry.TimeRangeLabel)
			return nil
		}).
		Times(1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = session.FetchAll(context.Background(), FetchOptions{ForceRefresh: true, RangeLabel: domain.RangeLast7Days})
	}()

	<-slowStarted

	// Um pedido mais novo completa antes da resposta lenta chegar
	require.NoError(t, session.FetchAll(context.Background(), FetchOptions{ForceRefresh: true, RangeLabel: domain.RangeToday}))

	close(release)
	<-done

	view := session.View()
	assert.Equal(t, domain.RangeToday, view.TimeRangeLabel)
	require.Len(t, view.Campaigns, 2)
	assert.NotEqual(t, "slow", view.Campaigns[0].ID)
}

func TestToggleCampaignStatus(t *testing.T) {
	t.Run("confirmada pela fonte permanece aplicada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrator := adsmocks.NewMockIntegrator(ctrl)
		cache := repomocks.NewMockDashboardCacheRepository(ctrl)
		session := newTestSession(integrator, cache)
		session.data = freshData()

		integrator.EXPECT().
			UpdateCampaignStatus(gomock.Any(), "c1", domain.CampaignStatusPaused).
			Return(nil)

		transition, err := session.ToggleCampaignStatus(context.Background(), "c1")

		require.NoError(t, err)
		assert.Equal(t, domain.TransitionConfirmed, transition.State)
		assert.Equal(t, domain.CampaignStatusEnabled, transition.From)
		assert.Equal(t, domain.CampaignStatusPaused, transition.To)
		assert.Equal(t, domain.CampaignStatusPaused, session.View().Campaigns[0].Status)
	})

	t.Run("rejeitada pela fonte é revertida com motivo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrator := adsmocks.NewMockIntegrator(ctrl)
		cache := repomocks.NewMockDashboardCacheRepository(ctrl)
		session := newTestSession(integrator, cache)
		session.data = freshData()

		integrator.EXPECT().
			UpdateCampaignStatus(gomock.Any(), "c1", domain.CampaignStatusPaused).
			Return(errors.New("mutação rejeitada"))

		transition, err := session.ToggleCampaignStatus(context.Background(), "c1")

		require.Error(t, err)
		assert.Equal(t, domain.TransitionRolledBack, transition.State)
		assert.Contains(t, transition.Reason, "mutação rejeitada")
		assert.Equal(t, domain.CampaignStatusEnabled, session.View().Campaigns[0].Status)
	})

	t.Run("campanha desconhecida é erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		session := newTestSession(adsmocks.NewMockIntegrator(ctrl), repomocks.NewMockDashboardCacheRepository(ctrl))
		session.data = freshData()

		_, err := session.ToggleCampaignStatus(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})
}

func TestManualRefreshEvictsAndForces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := adsmocks.NewMockIntegrator(ctrl)
	cache := repomocks.NewMockDashboardCacheRepository(ctrl)
	session := newTestSession(integrator, cache)

	cache.EXPECT().Evict().Return(nil)
	integrator.EXPECT().
		FetchDashboard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params googleads.FetchParams) (*domain.DashboardData, error) {
			assert.True(t, params.ForceRefresh)
			return freshData(), nil
		})
	cache.EXPECT().Write(gomock.Any()).Return(nil)

	require.NoError(t, session.ManualRefresh(context.Background()))
}

func TestSetCampaignFilterNarrowsRemoteQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := adsmocks.NewMockIntegrator(ctrl)
	cache := repomocks.NewMockDashboardCacheRepository(ctrl)
	session := newTestSession(integrator, cache)
	session.data = freshData()

	integrator.EXPECT().
		FetchDashboard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params googleads.FetchParams) (*domain.DashboardData, error) {
			assert.Equal(t, "c2", params.CampaignID)
			return freshData(), nil
		})
	cache.EXPECT().Write(gomock.Any()).Return(nil)

	// Seleção por nome resolve para o id da campanha na requisição remota
	require.NoError(t, session.SetCampaignFilter(context.Background(), "vídeo inverno"))

	view := session.View()
	assert.Equal(t, "vídeo inverno", view.CampaignFilter)
	assert.Equal(t, "USD", view.DisplayCurrency) // campanha sem moeda assume USD
}

func TestViewSelectionSupersedesFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := newTestSession(adsmocks.NewMockIntegrator(ctrl), repomocks.NewMockDashboardCacheRepository(ctrl))
	session.data = freshData()

	session.SetSelection([]string{"c2"})

	view := session.View()

	// A lista exibida segue os filtros; as métricas seguem a seleção manual
	assert.Len(t, view.Campaigns, 2)
	assert.Equal(t, int64(10), view.Metrics.Clicks)
	assert.Equal(t, int64(500), view.Metrics.Impressions)
}
