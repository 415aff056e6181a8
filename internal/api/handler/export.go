package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/store"
	"github.com/vfg2006/influencer-analytics-api/internal/domain"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/influencer-analytics-api/pkg/apiErrors"
)

// Tipos de exportação disponíveis em /v1/export/:report
const (
	ExportReportPerformance = "performance"
	ExportReportCampaign    = "campaign"
)

// ExportReport exporta um relatório CSV do snapshot ativo para download
func ExportReport(
	sessions *store.SessionStore,
	analyzer analyzing.Analyzer,
	reporter reporting.Reporter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportReport")

		snapshot := sessions.Snapshot()
		if len(snapshot.Influencers) == 0 && len(snapshot.Tracking) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrEmptyDataset, "Nenhum dado carregado na sessão", nil)
			return
		}

		reportType := httprouter.ParamsFromContext(r.Context()).ByName("report")

		var content []byte
		var err error

		switch reportType {
		case ExportReportPerformance:
			content, err = reporter.PerformanceCSV(analyzer.InfluencerPerformances(snapshot))

		case ExportReportCampaign:
			content, err = reporter.CampaignSummaryCSV(analyzer.CampaignMetrics(snapshot))

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Relatório inválido. Valores aceitos: performance, campaign", nil)
			return
		}

		if err != nil {
			logrus.Error("Erro ao gerar relatório CSV:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
			return
		}

		filename := fmt.Sprintf("%s-%s.csv", reportType, time.Now().Format("2006-01-02"))

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := w.Write(content); err != nil {
			logrus.Error("Erro ao enviar relatório CSV:", err)
		}
	}
}

// GetTextReport monta o relatório textual da campanha com os destaques do
// ranking e das personas
func GetTextReport(
	sessions *store.SessionStore,
	analyzer analyzing.Analyzer,
	ranker ranking.Ranker,
	reporter reporting.Reporter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := sessions.Snapshot()
		if len(snapshot.Influencers) == 0 && len(snapshot.Tracking) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrEmptyDataset, "Nenhum dado carregado na sessão", nil)
			return
		}

		metrics := analyzer.CampaignMetrics(snapshot)
		performances := analyzer.InfluencerPerformances(snapshot)
		topPerformers := ranker.TopPerformers(performances, domain.MetricRevenue, ranking.DefaultLimit)
		personas := ranker.BestPersonas(performances)

		report := reporter.TextReport(metrics, topPerformers, personas)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(report)); err != nil {
			logrus.Error("Erro ao enviar relatório textual:", err)
		}
	}
}
