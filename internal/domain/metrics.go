package domain

// CampaignMetrics agrega as métricas da campanha sobre todos os registros de
// tracking e payout da sessão. Recalculado por completo a cada chamada
type CampaignMetrics struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalSpend        float64 `json:"total_spend"`
	ROAS              float64 `json:"roas"`
	IncrementalROAS   float64 `json:"incremental_roas"`
	TotalOrders       int     `json:"total_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
	TotalReach        int     `json:"total_reach"`
	TotalEngagements  int     `json:"total_engagements"`
}

// InfluencerPerformance consolida, para um influenciador, tudo que foi somado
// dos registros cuja chave estrangeira bate com o seu ID
type InfluencerPerformance struct {
	Influencer  *Influencer `json:"influencer"`
	Revenue     float64     `json:"revenue"`
	Orders      int         `json:"orders"`
	Reach       int         `json:"reach"`
	Engagements int         `json:"engagements"`
	Payout      float64     `json:"payout"`
	ROI         float64     `json:"roi"`
	Posts       int         `json:"posts"`
}

// PersonaAggregate agrega as performances dos influenciadores de uma mesma
// categoria de conteúdo
type PersonaAggregate struct {
	Category     Category `json:"category"`
	TotalRevenue float64  `json:"total_revenue"`
	TotalPayout  float64  `json:"total_payout"`
	TotalReach   int      `json:"total_reach"`
	Count        int      `json:"count"`
	AvgROI       float64  `json:"avg_roi"`
	AvgReach     float64  `json:"avg_reach"`
}

// PerformanceMetric seleciona por qual métrica o ranking de performances é
// ordenado
type PerformanceMetric string

const (
	MetricRevenue PerformanceMetric = "revenue"
	MetricROI     PerformanceMetric = "roi"
	MetricReach   PerformanceMetric = "reach"
	MetricOrders  PerformanceMetric = "orders"
)

// ParsePerformanceMetric valida a métrica de ranking vinda da API. String
// vazia assume receita como padrão
func ParsePerformanceMetric(value string) (PerformanceMetric, bool) {
	if value == "" {
		return MetricRevenue, true
	}

	switch PerformanceMetric(value) {
	case MetricRevenue, MetricROI, MetricReach, MetricOrders:
		return PerformanceMetric(value), true
	default:
		return "", false
	}
}

// MetricValue retorna o valor da métrica selecionada para uma performance
func (p *InfluencerPerformance) MetricValue(metric PerformanceMetric) float64 {
	switch metric {
	case MetricROI:
		return p.ROI
	case MetricReach:
		return float64(p.Reach)
	case MetricOrders:
		return float64(p.Orders)
	default:
		return p.Revenue
	}
}
