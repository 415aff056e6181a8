// Package reporting gera as saídas de exportação (CSV e relatório em texto) a
// partir dos valores derivados pela análise. Consumidor somente-leitura do
// núcleo; nenhum cálculo novo acontece aqui
package reporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/influencer-analytics-api/internal/domain"
	"github.com/vfg2006/influencer-analytics-api/pkg/utils"
)

type Reporter interface {
	// PerformanceCSV exporta a tabela de performances por influenciador
	PerformanceCSV(performances []*domain.InfluencerPerformance) ([]byte, error)

	// CampaignSummaryCSV exporta as métricas agregadas da campanha
	CampaignSummaryCSV(metrics *domain.CampaignMetrics) ([]byte, error)

	// TextReport monta o relatório textual da campanha com os destaques do
	// ranking e das personas
	TextReport(
		metrics *domain.CampaignMetrics,
		topPerformers []*domain.InfluencerPerformance,
		personas []*domain.PersonaAggregate,
	) string
}

type Service struct{}

func NewService() Reporter {
	return &Service{}
}

func (s *Service) PerformanceCSV(performances []*domain.InfluencerPerformance) ([]byte, error) {
	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)

	header := []string{
		"influencer_id", "name", "category", "platform",
		"revenue", "orders", "reach", "engagements", "payout", "roi", "posts",
	}
	if err := writer.Write(header); err != nil {
		return nil, errors.Wrap(err, "erro ao escrever o cabeçalho do CSV")
	}

	for _, performance := range performances {
		record := []string{
			performance.Influencer.ID,
			performance.Influencer.Name,
			string(performance.Influencer.Category),
			string(performance.Influencer.Platform),
			formatDecimal(performance.Revenue),
			strconv.Itoa(performance.Orders),
			strconv.Itoa(performance.Reach),
			strconv.Itoa(performance.Engagements),
			formatDecimal(performance.Payout),
			formatDecimal(performance.ROI),
			strconv.Itoa(performance.Posts),
		}
		if err := writer.Write(record); err != nil {
			return nil, errors.Wrap(err, "erro ao escrever linha do CSV")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "erro ao finalizar o CSV")
	}

	return buffer.Bytes(), nil
}

func (s *Service) CampaignSummaryCSV(metrics *domain.CampaignMetrics) ([]byte, error) {
	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)

	rows := [][]string{
		{"metric", "value"},
		{"total_revenue", formatDecimal(metrics.TotalRevenue)},
		{"total_spend", formatDecimal(metrics.TotalSpend)},
		{"roas", formatDecimal(metrics.ROAS)},
		{"incremental_roas", formatDecimal(metrics.IncrementalROAS)},
		{"total_orders", strconv.Itoa(metrics.TotalOrders)},
		{"average_order_value", formatDecimal(metrics.AverageOrderValue)},
	}

	for _, record := range rows {
		if err := writer.Write(record); err != nil {
			return nil, errors.Wrap(err, "erro ao escrever linha do CSV")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "erro ao finalizar o CSV")
	}

	return buffer.Bytes(), nil
}

func (s *Service) TextReport(
	metrics *domain.CampaignMetrics,
	topPerformers []*domain.InfluencerPerformance,
	personas []*domain.PersonaAggregate,
) string {
	report := &bytes.Buffer{}

	fmt.Fprintf(report, "Campaign Analytics Report\n")
	fmt.Fprintf(report, "Generated on: %s\n\n", time.Now().Format("2006-01-02"))

	fmt.Fprintf(report, "Campaign Overview\n")
	fmt.Fprintf(report, "  Total Revenue: %.2f\n", metrics.TotalRevenue)
	fmt.Fprintf(report, "  Total Spend: %.2f\n", metrics.TotalSpend)
	fmt.Fprintf(report, "  ROAS: %.2fx\n", utils.RoundWithTwoDecimalPlace(metrics.ROAS))
	fmt.Fprintf(report, "  Incremental ROAS: %.2fx\n", utils.RoundWithTwoDecimalPlace(metrics.IncrementalROAS))
	fmt.Fprintf(report, "  Total Orders: %d\n", metrics.TotalOrders)
	fmt.Fprintf(report, "  Average Order Value: %.2f\n\n", metrics.AverageOrderValue)

	fmt.Fprintf(report, "Top Performers\n")
	for position, performance := range topPerformers {
		fmt.Fprintf(
			report,
			"  %d. %s - revenue %.2f, ROI %.1f%%\n",
			position+1,
			performance.Influencer.Name,
			performance.Revenue,
			performance.ROI,
		)
	}

	fmt.Fprintf(report, "\nBest Personas\n")
	for _, persona := range personas {
		fmt.Fprintf(
			report,
			"  %s - avg ROI %.1f%%, avg reach %.0f (%d influencers)\n",
			persona.Category,
			persona.AvgROI,
			persona.AvgReach,
			persona.Count,
		)
	}

	return report.String()
}

func formatDecimal(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
