package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

// RunAutoRefresh dispara manualmente um ciclo do agendador de atualização
func RunAutoRefresh(service *scheduler.AutoRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("cron: manual auto refresh run requested")

		service.TriggerManualRun(r.Context())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{"status": "ciclo de atualização disparado"}); err != nil {
			logger.WithError(err).Error("cron: failed to encode response")
		}
	})
}

// GetCronStatus retorna o estado corrente do agendador
func GetCronStatus(service *scheduler.AutoRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		writeJSON(w, logger, service.GetStatus())
	})
}
