package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

type campaignFilterRequest struct {
	CampaignFilter string `json:"campaign_filter"`
}

type selectionRequest struct {
	CampaignIDs []string `json:"campaign_ids"`
}

type autoRefreshRequest struct {
	Enabled bool `json:"enabled"`
}

// GetDashboard entrega a visão corrente do dashboard. Os parâmetros opcionais
// range e force passam pelo orquestrador, que decide se uma chamada remota é
// necessária (tupla repetida sem force não gera fetch).
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		force, _ := strconv.ParseBool(r.URL.Query().Get("force"))
		rangeLabel := r.URL.Query().Get("range")

		logger.WithFields(log.Fields{
			"range": rangeLabel,
			"force": force,
		}).Info("dashboard: fetching dashboard view")

		if err := service.FetchAll(r.Context(), dashboarding.FetchOptions{
			ShowLoading:  true,
			ForceRefresh: force,
			RangeLabel:   rangeLabel,
		}); err != nil {
			logger.WithError(err).Error("dashboard: failed to fetch dashboard")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, logger, service.View())
	})
}

// RefreshDashboard é a ação explícita de atualização: remove o cache e força o fetch
func RefreshDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dashboard: manual refresh requested")

		if err := service.ManualRefresh(r.Context()); err != nil {
			logger.WithError(err).Error("dashboard: manual refresh failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, logger, service.View())
	})
}

// UpdateFilters substitui o estado declarativo de filtros da sessão
func UpdateFilters(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var state domain.FilterState
		if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
			logger.WithError(err).Warn("dashboard: invalid filter state payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		service.SetFilters(state)

		writeJSON(w, logger, service.View())
	})
}

// UpdateCampaignFilter troca o seletor de campanha ativa ("all" ou uma campanha)
func UpdateCampaignFilter(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request campaignFilterRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("dashboard: invalid campaign filter payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		logger.WithField("campaign_filter", request.CampaignFilter).
			Info("dashboard: updating campaign filter")

		if err := service.SetCampaignFilter(r.Context(), request.CampaignFilter); err != nil {
			logger.WithError(err).Error("dashboard: failed to update campaign filter")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, logger, service.View())
	})
}

// UpdateSelection substitui a seleção manual de campanhas
func UpdateSelection(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request selectionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("dashboard: invalid selection payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		service.SetSelection(request.CampaignIDs)

		writeJSON(w, logger, service.View())
	})
}

// UpdateAutoRefresh liga ou desliga a atualização automática da sessão
func UpdateAutoRefresh(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request autoRefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("dashboard: invalid auto refresh payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		service.SetAutoRefresh(request.Enabled)
		logger.WithField("enabled", request.Enabled).Info("dashboard: auto refresh toggled")

		writeJSON(w, logger, map[string]bool{"enabled": service.AutoRefreshEnabled()})
	})
}

// GetBreakdown entrega um recorte analítico com sua procedência
func GetBreakdown(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dimension := paramFromContext(r, "dimension")
		logger.WithField("dimension", dimension).Info("dashboard: fetching breakdown")

		result, err := service.Breakdown(domain.BreakdownDimension(dimension))
		if err != nil {
			logger.WithFields(log.Fields{
				"dimension": dimension,
				"error":     err.Error(),
			}).Warn("dashboard: unknown breakdown dimension")

			apiErrors.WriteError(w, apiErrors.ErrUnknownDimension, err.Error(), nil)
			return
		}

		writeJSON(w, logger, result)
	})
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("dashboard: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
