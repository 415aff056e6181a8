package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/store"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/influencer-analytics-api/pkg/apiErrors"
)

// GetBestPersonas retorna os agregados por categoria de conteúdo em ordem
// decrescente de ROI médio
func GetBestPersonas(
	sessions *store.SessionStore,
	analyzer analyzing.Analyzer,
	ranker ranking.Ranker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		performances := analyzer.InfluencerPerformances(sessions.Snapshot())
		personas := ranker.BestPersonas(performances)

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(personas)
		if err != nil {
			logrus.Error("Erro ao enviar resposta das personas:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
