package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/repository"
	"github.com/vfg2006/influencer-analytics-api/pkg/apiErrors"
)

// GetRankingSnapshot retorna o ranking mensal materializado de influenciadores
// por receita atribuída
func GetRankingSnapshot(repo repository.RankingSnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranking, err := repo.GetRanking()
		if err != nil {
			logrus.Error("Erro ao buscar ranking de influenciadores:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de influenciadores", nil)
			return
		}

		if ranking == nil {
			apiErrors.WriteError(w, apiErrors.ErrEmptyDataset, "Nenhum ranking encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(ranking)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do ranking:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
