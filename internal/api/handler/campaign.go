package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/store"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/influencer-analytics-api/pkg/apiErrors"
)

// GetCampaignMetrics retorna as métricas agregadas da campanha sobre o
// snapshot ativo
func GetCampaignMetrics(sessions *store.SessionStore, service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics := service.CampaignMetrics(sessions.Snapshot())

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(metrics)
		if err != nil {
			logrus.Error("Erro ao enviar resposta das métricas de campanha:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
