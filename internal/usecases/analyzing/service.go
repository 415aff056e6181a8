package analyzing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-analytics-api/internal/config"
	"github.com/vfg2006/influencer-analytics-api/internal/domain"
)

// Analyzer expõe os cálculos de métricas sobre o snapshot ativo da sessão
type Analyzer interface {
	// CampaignMetrics agrega receita, investimento e pedidos de toda a campanha
	CampaignMetrics(dataset *domain.Dataset) *domain.CampaignMetrics

	// InfluencerPerformances calcula uma performance por influenciador, na
	// ordem da coleção de entrada
	InfluencerPerformances(dataset *domain.Dataset) []*domain.InfluencerPerformance

	// DatasetSummary descreve o snapshot ativo, incluindo o diagnóstico de
	// registros órfãos
	DatasetSummary(dataset *domain.Dataset) *domain.DatasetSummary
}

type Service struct {
	incrementalityFactor float64
}

func NewService(cfg *config.Config) Analyzer {
	return &Service{
		incrementalityFactor: cfg.Analytics.IncrementalityFactor,
	}
}

func (s *Service) CampaignMetrics(dataset *domain.Dataset) *domain.CampaignMetrics {
	return CalculateCampaignMetrics(dataset.Tracking, dataset.Payouts, s.incrementalityFactor)
}

func (s *Service) InfluencerPerformances(dataset *domain.Dataset) []*domain.InfluencerPerformance {
	return CalculateInfluencerPerformances(dataset.Influencers, NewIndex(dataset))
}

func (s *Service) DatasetSummary(dataset *domain.Dataset) *domain.DatasetSummary {
	orphans := NewIndex(dataset).Orphans()
	if orphans.Total() > 0 {
		logrus.WithFields(logrus.Fields{
			"orphan_posts":    orphans.Posts,
			"orphan_tracking": orphans.Tracking,
			"orphan_payouts":  orphans.Payouts,
		}).Warn("Snapshot contém registros sem influenciador correspondente")
	}

	return &domain.DatasetSummary{
		Source:      dataset.Source,
		Influencers: len(dataset.Influencers),
		Posts:       len(dataset.Posts),
		Tracking:    len(dataset.Tracking),
		Payouts:     len(dataset.Payouts),
		Orphans:     orphans,
	}
}

// CalculateCampaignMetrics soma receita, investimento e pedidos sobre todos os
// registros da sessão. Razões usam a política de zero-guard: sem denominador
// positivo a métrica é 0, nunca NaN ou infinito.
//
// TotalReach e TotalEngagements pertencem ao cálculo por influenciador, que
// considera os posts; aqui ficam zerados
func CalculateCampaignMetrics(
	tracking []*domain.TrackingData,
	payouts []*domain.Payout,
	incrementalityFactor float64,
) *domain.CampaignMetrics {
	metrics := &domain.CampaignMetrics{}

	for _, data := range tracking {
		metrics.TotalRevenue += data.Revenue
		metrics.TotalOrders += data.Orders
	}

	for _, payout := range payouts {
		metrics.TotalSpend += payout.TotalPayout
	}

	if metrics.TotalSpend > 0 {
		metrics.ROAS = metrics.TotalRevenue / metrics.TotalSpend
	}
	metrics.IncrementalROAS = metrics.ROAS * incrementalityFactor

	if metrics.TotalOrders > 0 {
		metrics.AverageOrderValue = metrics.TotalRevenue / float64(metrics.TotalOrders)
	}

	return metrics
}

// CalculateInfluencerPerformances soma, para cada influenciador, apenas os
// registros cuja chave estrangeira bate com o seu ID. É uma função total:
// influenciador sem nenhum registro produz uma performance toda zerada
// (ROI = 0, não indefinido)
func CalculateInfluencerPerformances(
	influencers []*domain.Influencer,
	index *Index,
) []*domain.InfluencerPerformance {
	performances := make([]*domain.InfluencerPerformance, 0, len(influencers))

	for _, influencer := range influencers {
		performance := &domain.InfluencerPerformance{
			Influencer: influencer,
		}

		for _, data := range index.Tracking(influencer.ID) {
			performance.Revenue += data.Revenue
			performance.Orders += data.Orders
		}

		posts := index.Posts(influencer.ID)
		for _, post := range posts {
			performance.Reach += post.Reach
			performance.Engagements += post.Engagements()
		}
		performance.Posts = len(posts)

		for _, payout := range index.Payouts(influencer.ID) {
			performance.Payout += payout.TotalPayout
		}

		performance.ROI = ReturnOnInvestment(performance.Revenue, performance.Payout)

		performances = append(performances, performance)
	}

	return performances
}

// ReturnOnInvestment calcula o ROI percentual de uma receita sobre um payout,
// com zero-guard quando não houve payout
func ReturnOnInvestment(revenue, payout float64) float64 {
	if payout <= 0 {
		return 0
	}
	return ((revenue - payout) / payout) * 100
}
