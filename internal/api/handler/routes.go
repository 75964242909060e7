package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDashboard(service),
		},
		{
			Path:    "/v1/dashboard/filters",
			Method:  http.MethodPut,
			Handler: UpdateFilters(service),
		},
		{
			Path:    "/v1/dashboard/campaign-filter",
			Method:  http.MethodPut,
			Handler: UpdateCampaignFilter(service),
		},
		{
			Path:    "/v1/dashboard/selection",
			Method:  http.MethodPut,
			Handler: UpdateSelection(service),
		},
		{
			Path:    "/v1/dashboard/auto-refresh",
			Method:  http.MethodPut,
			Handler: UpdateAutoRefresh(service),
		},
		{
			Path:    "/v1/dashboard/breakdowns/:dimension",
			Method:  http.MethodGet,
			Handler: GetBreakdown(service),
		},
	}
}

func Campaigns(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns/:id/status",
			Method:  http.MethodPut,
			Handler: ToggleCampaignStatus(service),
		},
	}
}

func Cron(service *scheduler.AutoRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/auto-refresh/run",
			Method:  http.MethodPost,
			Handler: RunAutoRefresh(service),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(service),
		},
	}
}
