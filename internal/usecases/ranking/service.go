// Package ranking ordena e segmenta as performances calculadas pela camada de
// análise: melhores/piores influenciadores e agregados por persona
package ranking

import (
	"sort"

	"github.com/vfg2006/influencer-analytics-api/internal/domain"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/analyzing"
)

// DefaultLimit é o tamanho padrão dos rankings de influenciadores
const DefaultLimit = 5

type Ranker interface {
	// TopPerformers retorna as performances em ordem decrescente pela métrica
	// selecionada, truncadas ao limite
	TopPerformers(
		performances []*domain.InfluencerPerformance,
		metric domain.PerformanceMetric,
		limit int,
	) []*domain.InfluencerPerformance

	// PoorPerformers retorna as performances em ordem crescente de ROI,
	// truncadas ao limite, para sinalizar investimentos de baixo retorno
	PoorPerformers(
		performances []*domain.InfluencerPerformance,
		limit int,
	) []*domain.InfluencerPerformance

	// BestPersonas agrega as performances por categoria de conteúdo e retorna
	// as personas em ordem decrescente de ROI médio
	BestPersonas(performances []*domain.InfluencerPerformance) []*domain.PersonaAggregate
}

type Service struct{}

func NewService() Ranker {
	return &Service{}
}

func (s *Service) TopPerformers(
	performances []*domain.InfluencerPerformance,
	metric domain.PerformanceMetric,
	limit int,
) []*domain.InfluencerPerformance {
	ranked := sortPerformances(performances, func(a, b *domain.InfluencerPerformance) bool {
		return a.MetricValue(metric) > b.MetricValue(metric)
	})
	return truncate(ranked, limit)
}

func (s *Service) PoorPerformers(
	performances []*domain.InfluencerPerformance,
	limit int,
) []*domain.InfluencerPerformance {
	ranked := sortPerformances(performances, func(a, b *domain.InfluencerPerformance) bool {
		return a.ROI < b.ROI
	})
	return truncate(ranked, limit)
}

func (s *Service) BestPersonas(performances []*domain.InfluencerPerformance) []*domain.PersonaAggregate {
	byCategory := make(map[domain.Category]*domain.PersonaAggregate)

	for _, performance := range performances {
		category := performance.Influencer.Category

		aggregate, ok := byCategory[category]
		if !ok {
			aggregate = &domain.PersonaAggregate{Category: category}
			byCategory[category] = aggregate
		}

		aggregate.TotalRevenue += performance.Revenue
		aggregate.TotalPayout += performance.Payout
		aggregate.TotalReach += performance.Reach
		aggregate.Count++
	}

	personas := make([]*domain.PersonaAggregate, 0, len(byCategory))
	for _, aggregate := range byCategory {
		aggregate.AvgROI = analyzing.ReturnOnInvestment(aggregate.TotalRevenue, aggregate.TotalPayout)
		// Count é sempre >= 1 para qualquer categoria presente
		aggregate.AvgReach = float64(aggregate.TotalReach) / float64(aggregate.Count)
		personas = append(personas, aggregate)
	}

	sort.SliceStable(personas, func(i, j int) bool {
		if personas[i].AvgROI != personas[j].AvgROI {
			return personas[i].AvgROI > personas[j].AvgROI
		}
		return personas[i].Category < personas[j].Category
	})

	return personas
}

// sortPerformances ordena uma cópia das performances. Empates na métrica são
// desfeitos pelo ID do influenciador em ordem crescente, para que o ranking
// seja determinístico entre execuções
func sortPerformances(
	performances []*domain.InfluencerPerformance,
	less func(a, b *domain.InfluencerPerformance) bool,
) []*domain.InfluencerPerformance {
	ranked := make([]*domain.InfluencerPerformance, len(performances))
	copy(ranked, performances)

	sort.SliceStable(ranked, func(i, j int) bool {
		if less(ranked[i], ranked[j]) {
			return true
		}
		if less(ranked[j], ranked[i]) {
			return false
		}
		return ranked[i].Influencer.ID < ranked[j].Influencer.ID
	})

	return ranked
}

func truncate(
	performances []*domain.InfluencerPerformance,
	limit int,
) []*domain.InfluencerPerformance {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(performances) > limit {
		return performances[:limit]
	}
	return performances
}
