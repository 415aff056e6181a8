// Package analyzing implementa a camada de agregação: junção das coleções por
// identidade do influenciador e cálculo das métricas derivadas. Todas as
// funções são puras sobre o snapshot imutável da sessão
package analyzing

import (
	"github.com/vfg2006/influencer-analytics-api/internal/domain"
)

// Index relaciona posts, registros de tracking e payouts ao influenciador
// dono, por igualdade exata de influencer_id. A construção custa O(n) sobre o
// total de registros e a consulta por influenciador é O(1), preservando a
// ordem de entrada dentro de cada lista
type Index struct {
	posts    map[string][]*domain.Post
	tracking map[string][]*domain.TrackingData
	payouts  map[string][]*domain.Payout
	orphans  domain.OrphanStats
}

// NewIndex constrói o índice de junção a partir do snapshot. Registros cuja
// chave estrangeira não corresponde a nenhum influenciador conhecido não
// entram no índice; eles são apenas contabilizados como órfãos
func NewIndex(dataset *domain.Dataset) *Index {
	known := make(map[string]struct{}, len(dataset.Influencers))
	for _, influencer := range dataset.Influencers {
		known[influencer.ID] = struct{}{}
	}

	index := &Index{
		posts:    make(map[string][]*domain.Post),
		tracking: make(map[string][]*domain.TrackingData),
		payouts:  make(map[string][]*domain.Payout),
	}

	for _, post := range dataset.Posts {
		if _, ok := known[post.InfluencerID]; !ok {
			index.orphans.Posts++
			continue
		}
		index.posts[post.InfluencerID] = append(index.posts[post.InfluencerID], post)
	}

	for _, tracking := range dataset.Tracking {
		if _, ok := known[tracking.InfluencerID]; !ok {
			index.orphans.Tracking++
			continue
		}
		index.tracking[tracking.InfluencerID] = append(index.tracking[tracking.InfluencerID], tracking)
	}

	for _, payout := range dataset.Payouts {
		if _, ok := known[payout.InfluencerID]; !ok {
			index.orphans.Payouts++
			continue
		}
		index.payouts[payout.InfluencerID] = append(index.payouts[payout.InfluencerID], payout)
	}

	return index
}

// Posts retorna os posts do influenciador, na ordem de entrada. Influenciador
// sem registros retorna lista vazia, nunca erro
func (ix *Index) Posts(influencerID string) []*domain.Post {
	return ix.posts[influencerID]
}

// Tracking retorna os registros de venda atribuídos ao influenciador
func (ix *Index) Tracking(influencerID string) []*domain.TrackingData {
	return ix.tracking[influencerID]
}

// Payouts retorna os registros de remuneração do influenciador
func (ix *Index) Payouts(influencerID string) []*domain.Payout {
	return ix.payouts[influencerID]
}

// Orphans retorna o diagnóstico de registros com chave estrangeira sem dono
func (ix *Index) Orphans() domain.OrphanStats {
	return ix.orphans
}
