package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

func serveDashboard(service dashboarding.Dashboarder, r *http.Request) *httptest.ResponseRecorder {
	rt := router.New(
		router.WithRoutes(Dashboard(service)...),
		router.WithRoutes(Campaigns(service)...),
	)

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, r)
	return recorder
}

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().
		FetchAll(gomock.Any(), dashboarding.FetchOptions{ShowLoading: true, ForceRefresh: true, RangeLabel: domain.RangeLast7Days}).
		Return(nil)
	service.EXPECT().View().Return(domain.DashboardView{
		Campaigns:       []domain.Campaign{{ID: "c1", Name: "Busca Verão"}},
		TimeRangeLabel:  domain.RangeLast7Days,
		DisplayCurrency: "USD",
	})

	request := httptest.NewRequest(http.MethodGet, "/v1/dashboard?range=Last+7+days&force=true", nil)
	recorder := serveDashboard(service, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var view domain.DashboardView
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &view))
	assert.Equal(t, domain.RangeLast7Days, view.TimeRangeLabel)
	require.Len(t, view.Campaigns, 1)
	assert.Equal(t, "c1", view.Campaigns[0].ID)
}

func TestGetBreakdownUnknownDimension(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().
		Breakdown(domain.BreakdownDimension("bogus")).
		Return(nil, errors.New("dimensão desconhecida"))

	request := httptest.NewRequest(http.MethodGet, "/v1/dashboard/breakdowns/bogus", nil)
	recorder := serveDashboard(service, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_004")
}

func TestGetBreakdownCarriesProvenance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().
		Breakdown(domain.DimensionDevice).
		Return(domain.SegmentBreakdown{
			Source: domain.SourceSynthesized,
			Items:  []domain.SegmentStat{{Segment: "Mobile", Share: 0.55}},
		}, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/dashboard/breakdowns/device", nil)
	recorder := serveDashboard(service, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"source":"synthesized"`)
}

func TestToggleCampaignStatusHandler(t *testing.T) {
	t.Run("transição confirmada responde 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockDashboarder(ctrl)
		service.EXPECT().
			ToggleCampaignStatus(gomock.Any(), "c1").
			Return(domain.StatusTransition{
				CampaignID: "c1",
				From:       domain.CampaignStatusEnabled,
				To:         domain.CampaignStatusPaused,
				State:      domain.TransitionConfirmed,
			}, nil)

		request := httptest.NewRequest(http.MethodPut, "/v1/campaigns/c1/status", nil)
		recorder := serveDashboard(service, request)

		require.Equal(t, http.StatusOK, recorder.Code)

		var transition domain.StatusTransition
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &transition))
		assert.Equal(t, domain.TransitionConfirmed, transition.State)
	})

	t.Run("mutação rejeitada responde 502 com a transição revertida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockDashboarder(ctrl)
		service.EXPECT().
			ToggleCampaignStatus(gomock.Any(), "c1").
			Return(domain.StatusTransition{
				CampaignID: "c1",
				From:       domain.CampaignStatusEnabled,
				To:         domain.CampaignStatusPaused,
				State:      domain.TransitionRolledBack,
				Reason:     "mutação rejeitada",
			}, errors.New("mutação rejeitada"))

		request := httptest.NewRequest(http.MethodPut, "/v1/campaigns/c1/status", nil)
		recorder := serveDashboard(service, request)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "rolled_back")
	})

	t.Run("campanha desconhecida responde 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockDashboarder(ctrl)
		service.EXPECT().
			ToggleCampaignStatus(gomock.Any(), "nope").
			Return(domain.StatusTransition{}, dashboarding.ErrCampaignNotFound)

		request := httptest.NewRequest(http.MethodPut, "/v1/campaigns/nope/status", nil)
		recorder := serveDashboard(service, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestUpdateFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().SetFilters(gomock.Any()).Do(func(state domain.FilterState) {
		assert.Equal(t, domain.CampaignTypeSearch, state.SelectedType)
		assert.Equal(t, "verão", state.SearchQuery)
	})
	service.EXPECT().View().Return(domain.DashboardView{})

	body := strings.NewReader(`{"selected_type":"SEARCH","search_query":"verão"}`)
	request := httptest.NewRequest(http.MethodPut, "/v1/dashboard/filters", body)
	recorder := serveDashboard(service, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestUpdateAutoRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().SetAutoRefresh(true)
	service.EXPECT().AutoRefreshEnabled().Return(true)

	body := strings.NewReader(`{"enabled":true}`)
	request := httptest.NewRequest(http.MethodPut, "/v1/dashboard/auto-refresh", body)
	recorder := serveDashboard(service, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"enabled":true`)
}
