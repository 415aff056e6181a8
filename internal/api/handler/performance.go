package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/store"
	"github.com/vfg2006/influencer-analytics-api/internal/domain"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/influencer-analytics-api/pkg/apiErrors"
)

// GetInfluencerPerformances retorna a performance de cada influenciador do
// snapshot ativo, na ordem da coleção
func GetInfluencerPerformances(sessions *store.SessionStore, service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		performances := service.InfluencerPerformances(sessions.Snapshot())

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(performances)
		if err != nil {
			logrus.Error("Erro ao enviar resposta de performances:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetTopPerformers retorna os melhores influenciadores pela métrica informada
// no query param `metric` (revenue por padrão), limitados por `limit`
func GetTopPerformers(
	sessions *store.SessionStore,
	analyzer analyzing.Analyzer,
	ranker ranking.Ranker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metric, ok := domain.ParsePerformanceMetric(r.URL.Query().Get("metric"))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Métrica de ranking inválida. Valores aceitos: revenue, roi, reach, orders", nil)
			return
		}

		limit, err := parseLimit(r.URL.Query().Get("limit"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido", nil)
			return
		}

		performances := analyzer.InfluencerPerformances(sessions.Snapshot())
		top := ranker.TopPerformers(performances, metric, limit)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(top); err != nil {
			logrus.Error("Erro ao enviar resposta do ranking:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetPoorPerformers retorna os influenciadores de pior ROI, limitados por
// `limit`, para sinalizar investimentos de baixo retorno
func GetPoorPerformers(
	sessions *store.SessionStore,
	analyzer analyzing.Analyzer,
	ranker ranking.Ranker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r.URL.Query().Get("limit"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido", nil)
			return
		}

		performances := analyzer.InfluencerPerformances(sessions.Snapshot())
		poor := ranker.PoorPerformers(performances, limit)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(poor); err != nil {
			logrus.Error("Erro ao enviar resposta do ranking:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// parseLimit converte o query param de limite. Ausente retorna 0, deixando o
// serviço de ranking aplicar o padrão
func parseLimit(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
