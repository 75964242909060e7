package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

// ToggleCampaignStatus alterna ENABLED/PAUSED de uma campanha. A sessão aplica
// a mudança de forma otimista e reverte se a fonte rejeitar; a transição
// devolvida carrega o desfecho (confirmed ou rolled_back) para o cliente.
func ToggleCampaignStatus(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := paramFromContext(r, "id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "id da campanha é obrigatório", nil)
			return
		}

		logger.WithField("campaign_id", campaignID).Info("campaigns: toggling campaign status")

		transition, err := service.ToggleCampaignStatus(r.Context(), campaignID)
		if err != nil {
			if errors.Is(err, dashboarding.ErrCampaignNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, err.Error(), nil)
				return
			}

			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("campaigns: status toggle rejected by data source")

			// A transição revertida segue nos detalhes para o cliente explicar o rollback
			apiErrors.WriteError(w, apiErrors.ErrUpstreamRejection, err.Error(), transition)
			return
		}

		writeJSON(w, logger, transition)
	})
}

func paramFromContext(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}
